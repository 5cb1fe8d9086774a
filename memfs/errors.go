package memfs

import "errors"

var (
	// ErrUsage indicates a missing (empty) name argument.
	ErrUsage = errors.New("memfs: missing argument")

	// ErrNameTooLong indicates a name of format.NameMax bytes or more.
	ErrNameTooLong = errors.New("memfs: name too long")

	// ErrBadName indicates a name containing a NUL byte, which the
	// NUL-terminated name field cannot represent.
	ErrBadName = errors.New("memfs: invalid name")

	// ErrExists indicates the target name is already in use.
	ErrExists = errors.New("memfs: exists")

	// ErrNotFound indicates no in-use slot carries the name.
	ErrNotFound = errors.New("memfs: not found")

	// ErrBadSize indicates a requested size of zero.
	ErrBadSize = errors.New("memfs: size must be > 0")

	// ErrFull indicates every slot is in use.
	ErrFull = errors.New("memfs: directory full")

	// ErrAllocFailed indicates the allocator could not back a new region.
	ErrAllocFailed = errors.New("memfs: allocation failed")

	// ErrInit indicates the table could not obtain its own storage.
	ErrInit = errors.New("memfs: directory init failed")
)
