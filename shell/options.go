package shell

import (
	"io"
	"log/slog"
)

// Options configures a Shell.
type Options struct {
	// Logger receives one record per dispatched command. The response
	// text written to the output is unaffected.
	// Default: discard
	Logger *slog.Logger

	// StopOnError makes Run return the first command error instead of
	// reporting it and reading the next line.
	// Default: false
	StopOnError bool
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() *Options {
	return &Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
