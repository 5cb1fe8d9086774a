package memfs

import "github.com/joshuapare/pagefs/internal/format"

// Rename changes the name of the slot holding oldName. Only the name field
// is written; sizes and addresses are untouched and nothing is allocated.
//
// The existence check on newName runs before the rename, so renaming a
// file to its own name reports ErrExists.
func (t *Table) Rename(oldName, newName string) error {
	if oldName == "" || newName == "" {
		return ErrUsage
	}
	if len(newName) >= format.NameMax {
		return ErrNameTooLong
	}
	if !format.ValidName(newName) {
		return ErrBadName
	}
	slot, ok := t.Find(oldName)
	if !ok {
		return ErrNotFound
	}
	if _, ok := t.Find(newName); ok {
		return ErrExists
	}
	return format.PutName(t.record(slot), newName)
}
