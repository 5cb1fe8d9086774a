package shell

import "errors"

var (
	// ErrHalted is returned by Exec once END has been processed.
	ErrHalted = errors.New("shell: halted")

	// ErrUnknownCommand is returned by Exec for an unrecognized first token.
	ErrUnknownCommand = errors.New("shell: unknown command")

	// ErrOutput indicates the output sink rejected a write.
	ErrOutput = errors.New("shell: write output")

	// ErrLineTooLong is returned by Run for an input line longer than
	// MaxLineLength.
	ErrLineTooLong = errors.New("shell: input line too long")
)
