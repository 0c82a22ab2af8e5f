package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_DisabledDiscards(t *testing.T) {
	t.Cleanup(func() { L = discard() })
	require.NoError(t, Init(Options{Enabled: false}))
	assert.False(t, L.Enabled(t.Context(), slog.LevelError))
}

func TestInit_Handler(t *testing.T) {
	t.Cleanup(func() { L = discard() })
	var out bytes.Buffer
	require.NoError(t, Init(Options{Enabled: true, Handler: slog.NewTextHandler(&out, nil)}))
	Info("hello", "k", "v")
	assert.Contains(t, out.String(), "msg=hello")
	assert.Contains(t, out.String(), "k=v")
}

func TestInit_LogDir(t *testing.T) {
	t.Cleanup(func() { L = discard() })
	dir := t.TempDir()
	stale := filepath.Join(dir, "axkit-2000-01-01.log")
	require.NoError(t, os.WriteFile(stale, nil, 0o644))
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(other, nil, 0o644))

	require.NoError(t, Init(Options{Enabled: true, LogDir: dir, Level: slog.LevelDebug}))
	Debug("written")

	_, err := os.Stat(stale)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(other)
	assert.NoError(t, err)

	today := filepath.Join(dir, "axkit-"+time.Now().Format("2006-01-02")+".log")
	data, err := os.ReadFile(today)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"written"`)
}

func TestOr(t *testing.T) {
	own := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	assert.Same(t, own, Or(own))
	assert.Same(t, L, Or(nil))
}
