// Package writer exposes sinks for encoded snapshots.
package writer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Sink receives one encoded snapshot.
type Sink interface {
	WriteSnapshot(b []byte) error
}

// For returns a FileWriter for path, or a StreamWriter on stdout when path
// is "-".
func For(path string, stdout io.Writer) Sink {
	if path == "-" {
		return &StreamWriter{W: stdout}
	}
	return &FileWriter{Path: path}
}

// FileWriter writes snapshots to a filesystem path atomically.
type FileWriter struct {
	Path string
	// Perm is the mode of a newly created file; zero means 0o644.
	Perm os.FileMode
}

// WriteSnapshot replaces the file at Path with b via temp file + rename.
func (w *FileWriter) WriteSnapshot(b []byte) error {
	// Temp file in the same directory so the rename stays on one filesystem
	dir := filepath.Dir(w.Path)
	tmpFile, err := os.CreateTemp(dir, ".axkit-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, writeErr := tmpFile.Write(b); writeErr != nil {
		return fmt.Errorf("write temp file: %w", writeErr)
	}
	perm := w.Perm
	if perm == 0 {
		perm = 0o644
	}
	if chmodErr := tmpFile.Chmod(perm); chmodErr != nil {
		return fmt.Errorf("chmod temp file: %w", chmodErr)
	}
	if syncErr := tmpFile.Sync(); syncErr != nil {
		return fmt.Errorf("sync temp file: %w", syncErr)
	}
	if closeErr := tmpFile.Close(); closeErr != nil {
		return fmt.Errorf("close temp file: %w", closeErr)
	}
	tmpFile = nil

	if renameErr := os.Rename(tmpPath, w.Path); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", renameErr)
	}
	return nil
}

// StreamWriter writes snapshots to an io.Writer such as stdout.
type StreamWriter struct {
	W io.Writer
}

// WriteSnapshot writes b in full.
func (w *StreamWriter) WriteSnapshot(b []byte) error {
	if _, err := w.W.Write(b); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
