package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// MaxLineLength is the longest input line Run accepts, in bytes.
const MaxLineLength = 1 << 20

// Run feeds r to Exec one line at a time until END, end of input or
// cancellation of ctx. Cancellation is observed between lines only; a
// command that has started always completes.
//
// Command errors are already reported in the output and do not stop Run
// unless Options.StopOnError is set. Output write failures always do, and so
// does a line over MaxLineLength (ErrLineTooLong); lines before it have
// already run.
func (s *Shell) Run(ctx context.Context, r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), MaxLineLength)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := s.Exec(strings.TrimRight(sc.Text(), "\r"))
		if s.halted {
			return nil
		}
		if err == nil {
			continue
		}
		if errors.Is(err, ErrOutput) || s.opts.StopOnError {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return fmt.Errorf("%w (limit %d bytes)", ErrLineTooLong, MaxLineLength)
		}
		return err
	}
	return nil
}
