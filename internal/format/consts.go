// Package format holds the low-level layout of the directory table: page and
// name constants, page rounding, the fixed-size descriptor record stored in
// the table's backing memory, and the number formatting used by the shell.
// It is kept allocation-free where possible and independent from the public
// API so higher-level packages can present the data in a friendlier form.
package format

const (
	// PageSize is the allocation granularity. Requested region sizes are
	// rounded up to a multiple of it and every region starts on a page
	// boundary.
	PageSize = 0x1000

	// PageMask is the bitmask used for aligning to page boundaries (PageSize - 1).
	PageMask = PageSize - 1

	// PageShift converts between byte addresses and page frame numbers.
	PageShift = 12

	// NameMax is the capacity of the name field, including the terminating
	// NUL. Usable names are strictly shorter than NameMax bytes.
	NameMax = 16

	// DefaultCapacity is the number of slots in a directory table when no
	// capacity is configured.
	DefaultCapacity = 16

	// DefaultBase is the first address handed out by the placement allocator,
	// matching the kernel's free memory start.
	DefaultBase = 0x10000

	// PageProbeSize is the request size used by the PAGE diagnostic.
	PageProbeSize = 1000
)

// Descriptor record layout (little-endian), one per directory slot:
//
//	0x00  name   [16]byte, NUL padded
//	0x10  size   uint32, requested bytes
//	0x14  used   uint8, 1 = in use
//	0x15  pad    [3]byte
//	0x18  alloc  uint64, page-rounded bytes
//	0x20  virt   uint64
//	0x28  phys   uint64
const (
	DescNameOffset  = 0x00
	DescSizeOffset  = 0x10
	DescUsedOffset  = 0x14
	DescAllocOffset = 0x18
	DescVirtOffset  = 0x20
	DescPhysOffset  = 0x28

	// DescriptorSize is the size of one descriptor record in bytes.
	DescriptorSize = 0x30
)
