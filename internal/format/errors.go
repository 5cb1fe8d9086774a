package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a record.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrNameTooLong indicates a name does not fit the NUL-terminated name field.
	ErrNameTooLong = errors.New("format: name too long")
	// ErrBadName indicates a name with an embedded NUL byte.
	ErrBadName = errors.New("format: name contains NUL")
)
