package memfs

import "github.com/joshuapare/pagefs/internal/format"

// Options configures a Table.
type Options struct {
	// Capacity is the fixed number of slots.
	// Default: 16
	Capacity int
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() *Options {
	return &Options{
		Capacity: format.DefaultCapacity,
	}
}
