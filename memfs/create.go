package memfs

import (
	"fmt"

	"github.com/joshuapare/pagefs/internal/format"
)

// Create claims the lowest vacant slot for name and backs it with a fresh,
// zero-filled region of size bytes rounded up to the page size.
//
// Checks run in this order: empty name (ErrUsage), name length
// (ErrNameTooLong), embedded NUL (ErrBadName), duplicate (ErrExists), zero size (ErrBadSize), no vacant
// slot (ErrFull), allocator failure (ErrAllocFailed). A failed Create leaves
// the table unchanged.
func (t *Table) Create(name string, size uint32) (Descriptor, error) {
	if name == "" {
		return Descriptor{}, ErrUsage
	}
	if len(name) >= format.NameMax {
		return Descriptor{}, ErrNameTooLong
	}
	if !format.ValidName(name) {
		return Descriptor{}, ErrBadName
	}
	if _, ok := t.Find(name); ok {
		return Descriptor{}, ErrExists
	}
	if size == 0 {
		return Descriptor{}, ErrBadSize
	}
	slot := t.vacant()
	if slot < 0 {
		return Descriptor{}, ErrFull
	}

	allocSize := format.AlignPage(uint64(size))
	r, err := t.a.Alloc(int(allocSize), true)
	if err != nil {
		return Descriptor{}, fmt.Errorf("%w: %w", ErrAllocFailed, err)
	}
	if r.Virt == 0 || r.Phys == 0 {
		return Descriptor{}, fmt.Errorf("%w: allocator returned a null address", ErrAllocFailed)
	}

	rec := format.Record{
		Name:  name,
		Size:  size,
		Alloc: allocSize,
		Virt:  r.Virt,
		Phys:  r.Phys,
		Used:  true,
	}
	if err := format.EncodeRecord(t.record(slot), rec); err != nil {
		return Descriptor{}, fmt.Errorf("memfs: write slot %d: %w", slot, err)
	}
	t.inUse++

	return descriptorFromRecord(slot, rec), nil
}
