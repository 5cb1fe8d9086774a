package memfs

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/joshuapare/pagefs/internal/format"
	"github.com/joshuapare/pagefs/memfs/alloc"
)

// Table is the directory: a fixed number of descriptor records stored in
// memory the table obtained from its allocator at construction.
type Table struct {
	a alloc.Allocator

	// buf holds capacity records of format.DescriptorSize bytes each.
	buf      []byte
	capacity int
	inUse    int

	// virt and phys address the table's own storage, for diagnostics.
	virt uint64
	phys uint64

	// abandoned holds the page frames of deleted regions. The frames are
	// never reused; the bitmap only feeds Stats.
	abandoned *roaring64.Bitmap
}

// New allocates the table's storage from a and marks every slot vacant.
// A nil opts uses DefaultOptions(). Any failure wraps ErrInit; there is no
// fallback storage, so callers should treat it as fatal.
func New(a alloc.Allocator, opts *Options) (*Table, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Capacity <= 0 {
		return nil, fmt.Errorf("%w: invalid capacity %d", ErrInit, opts.Capacity)
	}

	r, err := a.Alloc(opts.Capacity*format.DescriptorSize, true)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInit, err)
	}

	t := &Table{
		a:         a,
		buf:       r.Data,
		capacity:  opts.Capacity,
		virt:      r.Virt,
		phys:      r.Phys,
		abandoned: roaring64.New(),
	}
	for i := range t.capacity {
		format.ClearRecord(t.record(i))
	}
	return t, nil
}

// record returns the raw record of slot i. Slots are always in range for
// internal callers.
func (t *Table) record(i int) []byte {
	off := i * format.DescriptorSize
	return t.buf[off : off+format.DescriptorSize]
}

// Find returns the first in-use slot whose name equals name. Absence is a
// normal outcome and reported through ok.
func (t *Table) Find(name string) (slot int, ok bool) {
	for i := range t.capacity {
		rec := t.record(i)
		if format.RecordUsed(rec) && format.NameEquals(rec, name) {
			return i, true
		}
	}
	return -1, false
}

// vacant returns the lowest vacant slot, or -1 when the table is full.
func (t *Table) vacant() int {
	for i := range t.capacity {
		if !format.RecordUsed(t.record(i)) {
			return i
		}
	}
	return -1
}

// Entry returns a snapshot of slot i.
func (t *Table) Entry(i int) (Descriptor, bool) {
	if i < 0 || i >= t.capacity {
		return Descriptor{}, false
	}
	r, err := format.DecodeRecord(t.record(i))
	if err != nil {
		return Descriptor{}, false
	}
	return descriptorFromRecord(i, r), true
}

// Capacity returns the fixed number of slots.
func (t *Table) Capacity() int {
	return t.capacity
}

// Len returns the number of in-use slots.
func (t *Table) Len() int {
	return t.inUse
}

// Addr returns the virtual and physical address of the table's storage.
func (t *Table) Addr() (virt, phys uint64) {
	return t.virt, t.phys
}
