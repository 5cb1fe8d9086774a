// Package logger holds the process-wide diagnostic logger of the pagectl
// tool. Operator-facing responses never go through it; it records what the
// shell dispatched for later troubleshooting.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// L is the global logger. It discards everything until Init enables a file.
var L = discard()

const (
	logPrefix     = "pagectl-"
	logSuffix     = ".log"
	dateLayout    = "2006-01-02"
	retentionDays = 30
)

// Options configures the logger initialization.
type Options struct {
	Enabled bool       // If false, all logging is discarded
	LogDir  string     // Directory for log files. Default: ~/.pagefs/logs
	Level   slog.Level // Minimum log level
}

var (
	file *os.File
	path string
)

// Init points L at a dated JSON log file under opts.LogDir, replacing any
// file opened by an earlier call. Files past the retention window are
// pruned on the way.
func Init(opts Options) error {
	if err := Close(); err != nil {
		return err
	}
	if !opts.Enabled {
		return nil
	}

	dir, err := logDir(opts.LogDir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	now := time.Now()
	cleanOldLogs(dir, now)

	name := fileName(dir, now)
	f, err := os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	file, path = f, name
	L = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: opts.Level}))
	return nil
}

// Close flushes and closes the current log file and reverts L to
// discarding. It is a no-op when logging is disabled.
func Close() error {
	L = discard()
	if file == nil {
		return nil
	}
	err := file.Close()
	file, path = nil, ""
	return err
}

// Path returns the file L writes to, or "" when logging is disabled.
func Path() string {
	return path
}

// ParseLevel maps a configuration spelling (debug, info, warn, error) to a
// slog level. The empty string is info.
func ParseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	var lvl slog.Level
	err := lvl.UnmarshalText([]byte(s))
	return lvl, err
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func logDir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".pagefs", "logs"), nil
}

// fileName is dir/pagectl-YYYY-MM-DD.log for the day of t.
func fileName(dir string, t time.Time) string {
	return filepath.Join(dir, logPrefix+t.Format(dateLayout)+logSuffix)
}

// logDate extracts the day from a file name written by fileName.
func logDate(name string) (time.Time, bool) {
	stem, ok := strings.CutPrefix(name, logPrefix)
	if !ok {
		return time.Time{}, false
	}
	stem, ok = strings.CutSuffix(stem, logSuffix)
	if !ok {
		return time.Time{}, false
	}
	day, err := time.Parse(dateLayout, stem)
	return day, err == nil
}

// cleanOldLogs removes our log files dated before the retention window.
// Failures are ignored; pruning is best effort.
func cleanOldLogs(dir string, now time.Time) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	cutoff := now.AddDate(0, 0, -retentionDays)
	for _, e := range entries {
		if day, ok := logDate(e.Name()); ok && day.Before(cutoff) {
			_ = os.Remove(filepath.Join(dir, e.Name()))
		}
	}
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) { L.Error(msg, args...) }
