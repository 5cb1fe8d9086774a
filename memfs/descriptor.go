package memfs

import "github.com/joshuapare/pagefs/internal/format"

// Descriptor is a snapshot of one directory slot.
type Descriptor struct {
	// Slot is the index of the descriptor in the table.
	Slot int
	// Name is unique among in-use descriptors.
	Name string
	// Size is the number of bytes requested at creation.
	Size uint32
	// Alloc is Size rounded up to the page size.
	Alloc uint64
	// Virt and Phys address the region's first byte.
	Virt uint64
	Phys uint64
	InUse bool
}

func descriptorFromRecord(slot int, r format.Record) Descriptor {
	return Descriptor{
		Slot:  slot,
		Name:  r.Name,
		Size:  r.Size,
		Alloc: r.Alloc,
		Virt:  r.Virt,
		Phys:  r.Phys,
		InUse: r.Used,
	}
}
