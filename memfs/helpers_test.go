package memfs

import (
	"testing"

	"github.com/joshuapare/pagefs/internal/format"
	"github.com/joshuapare/pagefs/memfs/alloc"
	"github.com/stretchr/testify/require"
)

// newTestTable returns a table over a heap arena of the given pages.
func newTestTable(t *testing.T, capacity, pages int) (*Table, *alloc.BumpAllocator) {
	t.Helper()
	ba, err := alloc.NewBump(&alloc.Options{Size: pages * format.PageSize, PhysBase: format.DefaultBase})
	require.NoError(t, err)
	t.Cleanup(func() { _ = ba.Close() })

	tbl, err := New(ba, &Options{Capacity: capacity})
	require.NoError(t, err)
	return tbl, ba
}

// failingAllocator fails every request after the first n.
type failingAllocator struct {
	inner alloc.Allocator
	n     int
}

func (f *failingAllocator) Alloc(size int, zero bool) (alloc.Region, error) {
	if f.n <= 0 {
		return alloc.Region{}, alloc.ErrNoSpace
	}
	f.n--
	return f.inner.Alloc(size, zero)
}

// nullAllocator returns regions at address zero.
type nullAllocator struct{}

func (nullAllocator) Alloc(size int, _ bool) (alloc.Region, error) {
	return alloc.Region{Data: make([]byte, size)}, nil
}

// snapshot returns every slot, vacant ones included.
func snapshot(t *testing.T, tbl *Table) []Descriptor {
	t.Helper()
	out := make([]Descriptor, 0, tbl.Capacity())
	for i := range tbl.Capacity() {
		d, ok := tbl.Entry(i)
		require.True(t, ok)
		out = append(out, d)
	}
	return out
}

// checkInvariants asserts the directory invariants over every slot.
func checkInvariants(t *testing.T, tbl *Table) {
	t.Helper()
	names := make(map[string]int)
	inUse := 0
	for _, d := range snapshot(t, tbl) {
		if !d.InUse {
			require.Equal(t, Descriptor{Slot: d.Slot}, d, "vacant slot %d must be cleared", d.Slot)
			continue
		}
		inUse++
		if prev, dup := names[d.Name]; dup {
			t.Fatalf("name %q in slots %d and %d", d.Name, prev, d.Slot)
		}
		names[d.Name] = d.Slot
		require.NotZero(t, d.Size, "slot %d size", d.Slot)
		require.Equal(t, format.AlignPage(uint64(d.Size)), d.Alloc, "slot %d alloc", d.Slot)
		require.NotZero(t, d.Virt, "slot %d virt", d.Slot)
		require.NotZero(t, d.Phys, "slot %d phys", d.Slot)
	}
	require.Equal(t, inUse, tbl.Len())
	require.LessOrEqual(t, inUse, tbl.Capacity())
}
