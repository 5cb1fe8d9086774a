package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDisabled(t *testing.T) {
	require.NoError(t, Init(Options{Enabled: false}))
	assert.False(t, L.Enabled(t.Context(), slog.LevelError), "disabled logger discards everything")
}

func TestInitWritesJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(Options{Enabled: true, LogDir: dir, Level: slog.LevelDebug}))
	t.Cleanup(func() { _ = Close() })

	Debug("dispatch", "command", "LIST")
	Info("boot", "capacity", 16)

	name := fileName(dir, time.Now())
	assert.Equal(t, name, Path())
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"dispatch"`)
	assert.Contains(t, string(data), `"command":"LIST"`)
	assert.Equal(t, 2, strings.Count(string(data), "\n"))
}

func TestCleanOldLogs(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	old := filepath.Join(dir, "pagectl-2024-01-01.log")
	recent := filepath.Join(dir, "pagectl-2024-02-25.log")
	other := filepath.Join(dir, "notes-2020-01-01.log")
	for _, p := range []string{old, recent, other} {
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
	}

	cleanOldLogs(dir, now)

	assert.NoFileExists(t, old)
	assert.FileExists(t, recent)
	assert.FileExists(t, other, "foreign files are left alone")
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"":      slog.LevelInfo,
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestClose(t *testing.T) {
	require.NoError(t, Init(Options{Enabled: true, LogDir: t.TempDir()}))
	require.NotEmpty(t, Path())

	require.NoError(t, Close())
	assert.Empty(t, Path())
	assert.False(t, L.Enabled(t.Context(), slog.LevelError))
	assert.NoError(t, Close(), "closing twice is a no-op")
}

func TestLogDate(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"pagectl-2024-01-05.log", true},
		{"pagectl-2024-01-05.txt", false},
		{"other-2024-01-05.log", false},
		{"pagectl-yesterday.log", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, ok := logDate(tt.name)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), day)
			}
		})
	}
}
