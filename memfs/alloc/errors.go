package alloc

import "errors"

var (
	// ErrNoSpace indicates that the arena has no room left for the request.
	ErrNoSpace = errors.New("alloc: no space left in arena")

	// ErrBadSize indicates a request for zero or negative bytes.
	ErrBadSize = errors.New("alloc: size must be positive")

	// ErrClosed indicates the arena has already been released.
	ErrClosed = errors.New("alloc: arena released")
)
