package alloc

// Region is one allocation handed out by an Allocator.
type Region struct {
	// Virt is the virtual address of the first byte.
	Virt uint64
	// Phys is the physical address of the first byte.
	Phys uint64
	// Data is the region's memory, exactly as long as the request.
	Data []byte
}

// Allocator defines the one-way allocation contract consumed by the
// directory table and the PAGE diagnostic.
//
// Implementations:
//   - BumpAllocator: placement allocator over a heap or mmap arena
type Allocator interface {
	// Alloc returns size bytes starting on a page boundary. When zero is
	// true the bytes are cleared before they are returned. Failure never
	// leaves a partially handed out region behind.
	Alloc(size int, zero bool) (Region, error)
}

// Meter is implemented by allocators that can report their usage.
type Meter interface {
	// Used returns the number of arena bytes consumed, including alignment
	// padding between regions.
	Used() int
	// Cap returns the total arena size in bytes.
	Cap() int
}
