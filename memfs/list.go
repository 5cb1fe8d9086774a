package memfs

import "github.com/joshuapare/pagefs/internal/format"

// Entries returns the in-use descriptors in ascending slot order.
func (t *Table) Entries() []Descriptor {
	out := make([]Descriptor, 0, t.inUse)
	for i := range t.capacity {
		rec := t.record(i)
		if !format.RecordUsed(rec) {
			continue
		}
		r, err := format.DecodeRecord(rec)
		if err != nil {
			continue
		}
		out = append(out, descriptorFromRecord(i, r))
	}
	return out
}
