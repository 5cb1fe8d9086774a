package memfs

import "github.com/joshuapare/pagefs/internal/format"

// Delete clears the slot holding name and marks it vacant. The region's
// memory is abandoned rather than returned: the allocator offers no free,
// and a later Create always obtains new memory.
func (t *Table) Delete(name string) error {
	if name == "" {
		return ErrUsage
	}
	slot, ok := t.Find(name)
	if !ok {
		return ErrNotFound
	}

	rec := t.record(slot)
	phys := format.ReadU64(rec, format.DescPhysOffset)
	size := format.ReadU64(rec, format.DescAllocOffset)
	if size > 0 {
		t.abandoned.AddRange(format.PageFrame(phys), format.PageFrame(phys+size))
	}

	format.ClearRecord(rec)
	t.inUse--
	return nil
}
