package writer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestFileWriter_ReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tree.axt")
	if err := os.WriteFile(path, []byte("old contents"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	w := &FileWriter{Path: path}
	if err := w.WriteSnapshot([]byte("axt1")); err != nil {
		t.Fatalf("WriteSnapshot: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "axt1" {
		t.Fatalf("contents = %q", got)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("temp files left behind: %v", entries)
	}
}

func TestFileWriter_MissingDir(t *testing.T) {
	w := &FileWriter{Path: filepath.Join(t.TempDir(), "missing", "tree.axt")}
	if err := w.WriteSnapshot([]byte("x")); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}

func TestFor(t *testing.T) {
	var out bytes.Buffer
	s := For("-", &out)
	if err := s.WriteSnapshot([]byte("abc")); err != nil {
		t.Fatalf("WriteSnapshot: %v", err)
	}
	if out.String() != "abc" {
		t.Fatalf("stdout = %q", out.String())
	}
	if _, ok := For("tree.axt", &out).(*FileWriter); !ok {
		t.Fatalf("expected FileWriter for a path")
	}
}

func TestMemWriter(t *testing.T) {
	var w MemWriter
	_ = w.WriteSnapshot([]byte("first"))
	_ = w.WriteSnapshot([]byte("2nd"))
	if string(w.Buf) != "2nd" || w.Writes != 2 {
		t.Fatalf("Buf = %q, Writes = %d", w.Buf, w.Writes)
	}
}
