package alloc

import "github.com/joshuapare/pagefs/internal/format"

// ArenaKind selects where the arena memory comes from.
type ArenaKind int

const (
	// ArenaHeap carves the arena from the Go heap. Addresses are fully
	// simulated, which keeps output deterministic.
	ArenaHeap ArenaKind = iota

	// ArenaMmap maps anonymous memory from the operating system.
	ArenaMmap
)

const (
	// defaultArenaShift is the bit shift for the default arena size (1 << 24 = 16MB).
	defaultArenaShift = 24
)

// String returns the configuration spelling of the kind.
func (k ArenaKind) String() string {
	switch k {
	case ArenaHeap:
		return "heap"
	case ArenaMmap:
		return "mmap"
	default:
		return "unknown"
	}
}

// ParseArenaKind maps a configuration spelling to an ArenaKind.
func ParseArenaKind(s string) (ArenaKind, bool) {
	switch s {
	case "heap", "":
		return ArenaHeap, true
	case "mmap":
		return ArenaMmap, true
	default:
		return 0, false
	}
}

// Options configures a BumpAllocator.
type Options struct {
	// Size is the arena size in bytes.
	// Default: 16MB
	Size int

	// Kind selects the arena source.
	// Default: ArenaHeap
	Kind ArenaKind

	// VirtBase is the virtual address reported for arena offset 0.
	// Zero means DefaultBase for heap arenas and the real mapping address
	// for mmap arenas.
	VirtBase uint64

	// PhysBase is the physical address reported for arena offset 0.
	// Default: 0x10000
	PhysBase uint64
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() *Options {
	return &Options{
		Size:     1 << defaultArenaShift,
		Kind:     ArenaHeap,
		PhysBase: format.DefaultBase,
	}
}
