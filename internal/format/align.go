package format

// Page alignment utilities. Sizes handed to the allocator and region start
// addresses are always multiples of PageSize.

// AlignPage returns n aligned up to the next page (4096-byte) boundary.
// Zero stays zero.
//
// Example:
//
//	AlignPage(1)    = 4096
//	AlignPage(4096) = 4096
//	AlignPage(4097) = 8192
func AlignPage(n uint64) uint64 {
	return (n + PageMask) &^ PageMask
}

// AlignPageInt is the int version of AlignPage, used for slice offsets.
func AlignPageInt(n int) int {
	return (n + PageMask) &^ PageMask
}

// IsPageAligned reports whether n sits on a page boundary.
func IsPageAligned(n uint64) bool {
	return n&PageMask == 0
}

// PageFrame returns the page frame number containing addr.
func PageFrame(addr uint64) uint64 {
	return addr >> PageShift
}
