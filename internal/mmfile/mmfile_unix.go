//go:build unix

package mmfile

import (
	"os"

	"golang.org/x/sys/unix"
)

// Map maps the file at path. Files larger than limit bytes are rejected
// before mapping; a limit of zero disables the check.
func Map(path string, limit int64) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() // the mapping outlives the descriptor

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := info.Size()
	if err := checkSize(path, size, limit); err != nil {
		return nil, err
	}
	if size == 0 {
		return &File{Data: []byte{}}, nil
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, err
	}
	return &File{Data: data, close: func() error { return unix.Munmap(data) }}, nil
}
