package memfs

import "github.com/joshuapare/pagefs/internal/format"

// Stats summarizes table occupancy and abandoned memory.
type Stats struct {
	Capacity int
	InUse    int

	// LiveBytes is the sum of Alloc over in-use slots.
	LiveBytes uint64

	// AbandonedPages counts distinct page frames left behind by Delete.
	AbandonedPages uint64
	AbandonedBytes uint64

	// TableVirt and TablePhys address the table's own storage.
	TableVirt uint64
	TablePhys uint64
}

// Stats returns a snapshot of the table's bookkeeping.
func (t *Table) Stats() Stats {
	var live uint64
	for _, d := range t.Entries() {
		live += d.Alloc
	}
	pages := t.abandoned.GetCardinality()
	return Stats{
		Capacity:       t.capacity,
		InUse:          t.inUse,
		LiveBytes:      live,
		AbandonedPages: pages,
		AbandonedBytes: pages * format.PageSize,
		TableVirt:      t.virt,
		TablePhys:      t.phys,
	}
}

// Abandoned reports whether the page frame containing phys belonged to a
// deleted region.
func (t *Table) Abandoned(phys uint64) bool {
	return t.abandoned.Contains(format.PageFrame(phys))
}
