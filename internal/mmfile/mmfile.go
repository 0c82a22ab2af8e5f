// Package mmfile maps snapshot files into memory for read-only decoding.
package mmfile

import (
	"errors"
	"fmt"
)

// ErrTooLarge is returned when a file exceeds the size limit passed to Map.
var ErrTooLarge = errors.New("mmfile: file exceeds size limit")

// File is a read-only view of a file. Data is valid until Close.
type File struct {
	Data  []byte
	close func() error
}

// Close releases the view. Calling it twice is a no-op.
func (f *File) Close() error {
	if f == nil || f.close == nil {
		return nil
	}
	c := f.close
	f.close = nil
	f.Data = nil
	return c()
}

func checkSize(path string, size, limit int64) error {
	if limit > 0 && size > limit {
		return fmt.Errorf("%s: %d bytes, limit %d: %w", path, size, limit, ErrTooLarge)
	}
	if size > int64(^uint(0)>>1) {
		return fmt.Errorf("%s: %d bytes: %w", path, size, ErrTooLarge)
	}
	return nil
}
