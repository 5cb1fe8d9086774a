// Package alloc provides the page allocator behind the directory table.
//
// # Overview
//
// Regions are carved from a single contiguous arena by a bump pointer, the
// way a kernel placement allocator hands out memory before a real heap
// exists. Every region starts on a 4KB page boundary and is zero-filled on
// request.
//
// # Allocator Interface
//
// The core abstraction is the Allocator interface:
//
//   - Alloc(size, zero): Allocate size bytes starting on a page boundary
//
// There is deliberately no Free. Memory handed out stays owned by the caller
// until the arena itself is released, so the same bytes are never given to
// two different regions.
//
// # Usage Example
//
//	ba, err := alloc.NewBump(alloc.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	defer ba.Close()
//
//	r, err := ba.Alloc(8192, true)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("v@%#x p@%#x\n", r.Virt, r.Phys)
//
// # Addresses
//
// A region reports a virtual and a physical address. Both are the arena
// offset plus a configurable base. With the default heap arena the two bases
// are equal (identity mapping starting at 0x10000). With an mmap arena the
// virtual base defaults to the real mapping address.
//
// # Thread Safety
//
// Allocator instances are not thread-safe. Callers must synchronize access
// externally.
package alloc
