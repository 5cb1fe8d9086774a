package shell

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/joshuapare/pagefs/internal/format"
	"github.com/joshuapare/pagefs/memfs"
	"github.com/joshuapare/pagefs/memfs/alloc"
)

// Shell interprets command lines against a directory table and writes the
// responses to an output sink.
type Shell struct {
	table *memfs.Table
	alloc alloc.Allocator
	out   io.Writer
	log   *slog.Logger
	upper cases.Caser
	opts  Options

	halted bool
}

// New creates a Shell over table. a serves the PAGE diagnostic and, when it
// implements alloc.Meter, the MEM diagnostic. A nil opts uses
// DefaultOptions().
func New(table *memfs.Table, a alloc.Allocator, out io.Writer, opts *Options) *Shell {
	if opts == nil {
		opts = DefaultOptions()
	}
	log := opts.Logger
	if log == nil {
		log = DefaultOptions().Logger
	}
	return &Shell{
		table: table,
		alloc: a,
		out:   out,
		log:   log,
		upper: cases.Upper(language.Und),
		opts:  *opts,
	}
}

// Halted reports whether END has been processed.
func (s *Shell) Halted() bool {
	return s.halted
}

// Boot writes the startup banner: the directory location, the ready line,
// the command summary, the initial listing and the first prompt.
func (s *Shell) Boot() error {
	virt, phys := s.table.Addr()

	var b strings.Builder
	b.WriteString(FormatInit(virt, phys))
	b.WriteByte('\n')
	b.WriteString(MsgReady)
	b.WriteByte('\n')
	b.WriteString(MsgCommands)
	b.WriteString("\n\n")
	b.WriteString(FormatList(s.table.Entries()))
	b.WriteByte('\n')
	b.WriteString(Prompt)

	s.log.Info("boot", "dir", format.FormatHex(virt), "phys", format.FormatHex(phys),
		"capacity", s.table.Capacity())
	return s.emit(b.String())
}

// Exec processes one input line and writes its response followed by the
// prompt. Validation and resource failures are reported in the response and
// also returned, so callers can tell outcomes apart; they never stop the
// shell. Exec returns ErrHalted without output once END has run.
func (s *Shell) Exec(line string) error {
	if s.halted {
		return ErrHalted
	}

	var b strings.Builder
	err := s.dispatch(&b, s.upper.String(line))
	if !s.halted {
		b.WriteString(Prompt)
	}
	if werr := s.emit(b.String()); werr != nil {
		return werr
	}
	return err
}

// dispatch runs one normalized line and writes its response lines to b.
func (s *Shell) dispatch(b *strings.Builder, line string) error {
	// reserved whole-line commands
	switch line {
	case "END":
		s.log.Info("halt")
		s.halted = true
		writeLine(b, MsgHalt)
		return nil
	case "PAGE":
		return s.page(b)
	}

	cmd := Parse(line)
	if cmd.Name == "" {
		return nil
	}
	s.log.Debug("dispatch", "command", cmd.Name, "arg1", cmd.Args[0], "arg2", cmd.Args[1])

	var err error
	switch cmd.Name {
	case "LIST":
		b.WriteString(FormatList(s.table.Entries()))
		return nil

	case "MEM":
		m, _ := s.alloc.(alloc.Meter)
		writeLine(b, FormatMem(s.table.Stats(), m))
		return nil

	case "CREATE":
		if cmd.Args[0] == "" || cmd.Args[1] == "" {
			err = memfs.ErrUsage
			break
		}
		var d memfs.Descriptor
		d, err = s.table.Create(cmd.Args[0], format.ParseSize(cmd.Args[1]))
		if err == nil {
			s.log.Debug("created", "name", d.Name, "slot", d.Slot, "alloc", d.Alloc,
				"virt", format.FormatHex(d.Virt), "phys", format.FormatHex(d.Phys))
		}

	case "RENAME":
		if cmd.Args[0] == "" || cmd.Args[1] == "" {
			err = memfs.ErrUsage
			break
		}
		err = s.table.Rename(cmd.Args[0], cmd.Args[1])

	case "DEL":
		if cmd.Args[0] == "" {
			err = memfs.ErrUsage
			break
		}
		err = s.table.Delete(cmd.Args[0])

	default:
		s.log.Info("command rejected", "command", cmd.Name, "error", ErrUnknownCommand)
		writeLine(b, MsgUnknown)
		return ErrUnknownCommand
	}

	if err != nil {
		s.log.Info("command rejected", "command", cmd.Name, "error", err)
	}
	writeLine(b, FormatResult(cmd.Name, err))
	return err
}

// page allocates a fixed-size probe region and reports its addresses.
func (s *Shell) page(b *strings.Builder) error {
	r, err := s.alloc.Alloc(format.PageProbeSize, true)
	if err != nil {
		s.log.Info("page probe failed", "error", err)
		writeLine(b, "ERR: allocation failed")
		return fmt.Errorf("%w: %w", memfs.ErrAllocFailed, err)
	}
	writeLine(b, FormatPage(r))
	return nil
}

func (s *Shell) emit(text string) error {
	if _, err := io.WriteString(s.out, text); err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	return nil
}

func writeLine(b *strings.Builder, line string) {
	b.WriteString(line)
	b.WriteByte('\n')
}
