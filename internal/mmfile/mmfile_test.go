package mmfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.axt")
	want := []byte{'a', 'x', 't', '1', 0x42}
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	f, err := Map(path, 0)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if string(f.Data) != string(want) {
		t.Fatalf("data = %x, want %x", f.Data, want)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if f.Data != nil {
		t.Fatalf("Data should be cleared after Close")
	}
}

func TestMap_ZeroLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.axt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	f, err := Map(path, 0)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if len(f.Data) != 0 {
		t.Fatalf("expected zero-length data, got %d", len(f.Data))
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestMap_Limit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.axt")
	if err := os.WriteFile(path, make([]byte, 64), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Map(path, 63); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("err = %v, want ErrTooLarge", err)
	}
	if _, err := Map(filepath.Join(t.TempDir(), "missing.axt"), 0); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want ErrNotExist", err)
	}
}
