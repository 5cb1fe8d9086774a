package alloc

import (
	"fmt"

	"github.com/joshuapare/pagefs/internal/format"
	"github.com/joshuapare/pagefs/internal/mmfile"
)

// BumpAllocator is an append-only page allocator. It keeps a single bump
// pointer into its arena:
//   - O(1) allocation: align the pointer up to a page, hand out size bytes
//   - No free lists, no indexes, no maps
//   - No Free(): handed out bytes become dead space forever once their
//     owner drops them, so they are never given out twice
//
// This mirrors the placement allocator of a small kernel, which is exactly
// what the directory table expects from its Allocator Adapter.
type BumpAllocator struct {
	arena []byte

	// next is the bump pointer, the arena offset of the first byte after
	// the most recent allocation. It is aligned up before every allocation.
	next int

	virtBase uint64
	physBase uint64

	// release returns the arena to the operating system (mmap arenas only).
	release func() error
	closed  bool
}

// NewBump creates a BumpAllocator over a freshly obtained arena.
// A nil opts uses DefaultOptions().
func NewBump(opts *Options) (*BumpAllocator, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Size <= 0 {
		return nil, fmt.Errorf("alloc: invalid arena size %d: %w", opts.Size, ErrBadSize)
	}

	switch opts.Kind {
	case ArenaHeap:
		virt := opts.VirtBase
		if virt == 0 {
			virt = format.DefaultBase
		}
		ba := NewBumpOver(mmfile.Heap(opts.Size), virt, opts.PhysBase)
		return ba, nil

	case ArenaMmap:
		arena, release, err := mmfile.Anon(opts.Size)
		if err != nil {
			return nil, fmt.Errorf("alloc: map arena: %w", err)
		}
		virt := opts.VirtBase
		if virt == 0 {
			virt = mmfile.Addr(arena)
		}
		ba := NewBumpOver(arena, virt, opts.PhysBase)
		ba.release = release
		return ba, nil

	default:
		return nil, fmt.Errorf("alloc: unknown arena kind %d", opts.Kind)
	}
}

// NewBumpOver creates a BumpAllocator over a caller-supplied arena. The
// arena must be zero-filled if callers rely on unrequested zeroing, and its
// reported addresses are virtBase/physBase plus the arena offset.
func NewBumpOver(arena []byte, virtBase, physBase uint64) *BumpAllocator {
	return &BumpAllocator{
		arena:    arena,
		virtBase: virtBase,
		physBase: physBase,
	}
}

// Alloc hands out size bytes starting at the next page boundary.
func (ba *BumpAllocator) Alloc(size int, zero bool) (Region, error) {
	if ba.closed {
		return Region{}, ErrClosed
	}
	if size <= 0 {
		return Region{}, ErrBadSize
	}

	start := format.AlignPageInt(ba.next)
	if start > len(ba.arena) || size > len(ba.arena)-start {
		return Region{}, fmt.Errorf("%w (requested=%d, free=%d)", ErrNoSpace, size, ba.free())
	}

	data := ba.arena[start : start+size : start+size]
	if zero {
		clear(data)
	}
	ba.next = start + size

	return Region{
		Virt: ba.virtBase + uint64(start),
		Phys: ba.physBase + uint64(start),
		Data: data,
	}, nil
}

// Used returns the arena bytes consumed so far, including alignment padding.
func (ba *BumpAllocator) Used() int {
	return ba.next
}

// Cap returns the arena size in bytes.
func (ba *BumpAllocator) Cap() int {
	return len(ba.arena)
}

// free returns the bytes left after aligning the bump pointer.
func (ba *BumpAllocator) free() int {
	start := format.AlignPageInt(ba.next)
	if start >= len(ba.arena) {
		return 0
	}
	return len(ba.arena) - start
}

// Close releases the arena. Regions handed out earlier must not be used
// afterwards. Closing twice is a no-op.
func (ba *BumpAllocator) Close() error {
	if ba.closed {
		return nil
	}
	ba.closed = true
	if ba.release != nil {
		return ba.release()
	}
	return nil
}

// Compile-time interface checks
var (
	_ Allocator = (*BumpAllocator)(nil)
	_ Meter     = (*BumpAllocator)(nil)
)
