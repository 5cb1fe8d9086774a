// Package mmfile provides platform-specific helpers for obtaining
// page-aligned, zero-filled memory arenas.
package mmfile

import "unsafe"

const pageSize = 0x1000

// Heap returns a zero-filled, page-aligned arena of size bytes from the Go
// heap. It backs allocators in tests and on platforms without mmap.
func Heap(size int) []byte {
	raw := make([]byte, size+pageSize)
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(raw)))
	skip := int((pageSize - addr%pageSize) % pageSize)
	return raw[skip : skip+size : skip+size]
}

// Addr returns the address of the first byte of b, or 0 for an empty slice.
func Addr(b []byte) uint64 {
	if len(b) == 0 {
		return 0
	}
	return uint64(uintptr(unsafe.Pointer(unsafe.SliceData(b))))
}
