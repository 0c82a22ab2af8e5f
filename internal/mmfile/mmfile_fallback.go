//go:build !unix

package mmfile

import "os"

// Map reads the whole file where mmap is unavailable.
func Map(path string, limit int64) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if err := checkSize(path, info.Size(), limit); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &File{Data: data}, nil
}
