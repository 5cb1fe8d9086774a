package shell

import (
	"errors"
	"strings"

	"github.com/joshuapare/pagefs/internal/format"
	"github.com/joshuapare/pagefs/memfs"
	"github.com/joshuapare/pagefs/memfs/alloc"
)

// Fixed response text.
const (
	Prompt       = "> "
	MsgOK        = "OK"
	MsgUnknown   = "Unknown command"
	MsgHalt      = "Stopping the CPU. Bye!"
	MsgReady     = "Mini-OS ready."
	MsgCommands  = "Commands: LIST | CREATE <name> <size> | RENAME <old> <new> | DEL <name> | PAGE | MEM | END"
	MsgListTitle = "FILES:"
)

var usage = map[string]string{
	"CREATE": "usage: CREATE <name> <size>",
	"RENAME": "usage: RENAME <old> <new>",
	"DEL":    "usage: DEL <name>",
}

// Reason returns the fixed phrase reported after "ERR: " for a table error,
// or "" if err is not one of the table's validation or resource errors.
func Reason(err error) string {
	switch {
	case errors.Is(err, memfs.ErrExists):
		return "exists"
	case errors.Is(err, memfs.ErrNotFound):
		return "not found"
	case errors.Is(err, memfs.ErrNameTooLong):
		return "name too long"
	case errors.Is(err, memfs.ErrBadName):
		return "invalid name"
	case errors.Is(err, memfs.ErrBadSize):
		return "size must be > 0"
	case errors.Is(err, memfs.ErrFull):
		return "directory full"
	case errors.Is(err, memfs.ErrAllocFailed), errors.Is(err, alloc.ErrNoSpace):
		return "allocation failed"
	default:
		return ""
	}
}

// FormatResult renders the single response line of a mutating command.
func FormatResult(cmd string, err error) string {
	if err == nil {
		return MsgOK
	}
	if errors.Is(err, memfs.ErrUsage) {
		if u, ok := usage[cmd]; ok {
			return u
		}
	}
	if r := Reason(err); r != "" {
		return "ERR: " + r
	}
	return "ERR: " + err.Error()
}

// FormatEntry renders one LIST body line.
func FormatEntry(d memfs.Descriptor) string {
	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(d.Name)
	b.WriteString("  size=")
	b.WriteString(format.FormatDec(uint64(d.Size)))
	b.WriteString("B alloc=")
	b.WriteString(format.FormatDec(d.Alloc))
	b.WriteString("B v@")
	b.WriteString(format.FormatHex(d.Virt))
	b.WriteString(" p@")
	b.WriteString(format.FormatHex(d.Phys))
	return b.String()
}

// FormatList renders the LIST header and one line per entry, each
// terminated by a newline.
func FormatList(entries []memfs.Descriptor) string {
	var b strings.Builder
	b.WriteString(MsgListTitle)
	b.WriteByte('\n')
	for _, d := range entries {
		b.WriteString(FormatEntry(d))
		b.WriteByte('\n')
	}
	return b.String()
}

// FormatPage renders the PAGE diagnostic line.
func FormatPage(r alloc.Region) string {
	return "Page: " + format.FormatHex(r.Virt) + ", physical address: " + format.FormatHex(r.Phys)
}

// FormatInit renders the directory location line printed at boot.
func FormatInit(virt, phys uint64) string {
	return "FS init. dir@" + format.FormatHex(virt) + " phys@" + format.FormatHex(phys)
}

// FormatMem renders the MEM diagnostic line. m may be nil when the
// allocator does not report usage.
func FormatMem(st memfs.Stats, m alloc.Meter) string {
	var b strings.Builder
	b.WriteString("MEM:")
	if m != nil {
		b.WriteString(" arena=")
		b.WriteString(format.FormatDec(uint64(m.Cap())))
		b.WriteString("B used=")
		b.WriteString(format.FormatDec(uint64(m.Used())))
		b.WriteString("B")
	}
	b.WriteString(" abandoned=")
	b.WriteString(format.FormatDec(st.AbandonedBytes))
	b.WriteString("B files=")
	b.WriteString(format.FormatDec(uint64(st.InUse)))
	b.WriteByte('/')
	b.WriteString(format.FormatDec(uint64(st.Capacity)))
	return b.String()
}
