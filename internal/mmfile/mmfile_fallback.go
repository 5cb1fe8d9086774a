//go:build !unix && !windows

package mmfile

import "fmt"

// Anon allocates the arena on the Go heap when no mapping primitive is
// available. The slice is over-allocated so the returned window starts on a
// page boundary.
func Anon(size int) ([]byte, func() error, error) {
	if size <= 0 {
		return nil, nil, fmt.Errorf("mmfile: invalid arena size %d", size)
	}
	return Heap(size), func() error { return nil }, nil
}
