package format

import (
	"bytes"
	"strings"
)

// Record is the decoded form of one descriptor slot.
type Record struct {
	Name  string
	Size  uint32
	Alloc uint64
	Virt  uint64
	Phys  uint64
	Used  bool
}

// DecodeRecord parses a descriptor record.
func DecodeRecord(b []byte) (Record, error) {
	if len(b) < DescriptorSize {
		return Record{}, ErrTruncated
	}
	return Record{
		Name:  RecordName(b),
		Size:  ReadU32(b, DescSizeOffset),
		Alloc: ReadU64(b, DescAllocOffset),
		Virt:  ReadU64(b, DescVirtOffset),
		Phys:  ReadU64(b, DescPhysOffset),
		Used:  b[DescUsedOffset] == 1,
	}, nil
}

// EncodeRecord writes r into b. The name must be shorter than NameMax so
// that at least one terminating NUL remains.
func EncodeRecord(b []byte, r Record) error {
	if len(b) < DescriptorSize {
		return ErrTruncated
	}
	if err := PutName(b, r.Name); err != nil {
		return err
	}
	PutU32(b, DescSizeOffset, r.Size)
	PutU64(b, DescAllocOffset, r.Alloc)
	PutU64(b, DescVirtOffset, r.Virt)
	PutU64(b, DescPhysOffset, r.Phys)
	b[DescUsedOffset] = 0
	if r.Used {
		b[DescUsedOffset] = 1
	}
	return nil
}

// ClearRecord zeroes every field of a record, leaving a vacant slot.
func ClearRecord(b []byte) {
	clear(b[:DescriptorSize])
}

// RecordUsed reports the in-use flag without decoding the rest.
func RecordUsed(b []byte) bool {
	return b[DescUsedOffset] == 1
}

// RecordName returns the NUL-terminated name field.
func RecordName(b []byte) string {
	name := b[DescNameOffset : DescNameOffset+NameMax]
	if i := bytes.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}
	return string(name)
}

// ValidName reports whether name survives the NUL-terminated name field
// unchanged.
func ValidName(name string) bool {
	return strings.IndexByte(name, 0) < 0
}

// NameEquals compares the name field against name without allocating. A
// name that is not ValidName never matches.
func NameEquals(b []byte, name string) bool {
	field := b[DescNameOffset : DescNameOffset+NameMax]
	if len(name) >= NameMax || field[len(name)] != 0 || !ValidName(name) {
		return false
	}
	return string(field[:len(name)]) == name
}

// PutName overwrites only the name field, NUL padding the remainder.
func PutName(b []byte, name string) error {
	if len(name) >= NameMax {
		return ErrNameTooLong
	}
	if !ValidName(name) {
		return ErrBadName
	}
	field := b[DescNameOffset : DescNameOffset+NameMax]
	clear(field)
	copy(field, name)
	return nil
}
