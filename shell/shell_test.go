package shell

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/joshuapare/pagefs/internal/format"
	"github.com/joshuapare/pagefs/memfs"
	"github.com/joshuapare/pagefs/memfs/alloc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExec_Scenario(t *testing.T) {
	s, out, _ := newTestShell(t, 16)

	steps := []struct {
		line string
		want string
	}{
		{"CREATE LOG 10", "OK\n> "},
		{"LIST", "FILES:\n  LOG  size=10B alloc=4096B v@0x11000 p@0x11000\n> "},
		{"RENAME LOG SYS", "OK\n> "},
		{"DEL SYS", "OK\n> "},
		{"LIST", "FILES:\n> "},
		{"DEL SYS", "ERR: not found\n> "},
	}
	for _, step := range steps {
		assert.Equal(t, step.want, exec(t, s, out, step.line), step.line)
	}
}

func TestExec_CaseInsensitive(t *testing.T) {
	s, out, tbl := newTestShell(t, 16)

	assert.Equal(t, "OK\n> ", exec(t, s, out, "create log 10"))
	_, ok := tbl.Find("LOG")
	assert.True(t, ok, "names are stored upper-cased")

	assert.Equal(t, "ERR: exists\n> ", exec(t, s, out, "Create Log 20"), "names collide regardless of case")
	assert.Equal(t, "OK\n> ", exec(t, s, out, "rename LOG sys"))
	assert.Equal(t, "OK\n> ", exec(t, s, out, "Del Sys"))
}

func TestExec_NormalizesIntoFreshString(t *testing.T) {
	s, out, _ := newTestShell(t, 16)

	line := "create a 1"
	exec(t, s, out, line)
	assert.Equal(t, "create a 1", line)
}

func TestExec_Create(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"missing both", "CREATE", "usage: CREATE <name> <size>"},
		{"missing size", "CREATE A", "usage: CREATE <name> <size>"},
		{"name too long", "CREATE ABCDEFGHIJKLMNOP 10", "ERR: name too long"},
		{"zero size", "CREATE A 0", "ERR: size must be > 0"},
		{"non-numeric size", "CREATE A TEN", "ERR: size must be > 0"},
		{"negative size", "CREATE A -1", "ERR: size must be > 0"},
		{"size overflow", "CREATE A 99999999999", "ERR: size must be > 0"},
		{"ok", "CREATE A 10", "OK"},
		{"ok with extra tokens", "CREATE B 10 20 30", "OK"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, out, _ := newTestShell(t, 16)
			assert.Equal(t, tt.want+"\n"+Prompt, exec(t, s, out, tt.line))
		})
	}
}

func TestExec_NULNeverReachesNames(t *testing.T) {
	t.Run("plain name first", func(t *testing.T) {
		s, out, tbl := newTestShell(t, 16)
		assert.Equal(t, "OK\n> ", exec(t, s, out, "CREATE A 10"))
		assert.Equal(t, "ERR: exists\n> ", exec(t, s, out, "CREATE A\x00B 10"))
		assert.Equal(t, 1, tbl.Len())
		assert.Equal(t, "FILES:\n  A  size=10B alloc=4096B v@0x11000 p@0x11000\n> ", exec(t, s, out, "LIST"))
	})

	t.Run("NUL name first", func(t *testing.T) {
		s, out, tbl := newTestShell(t, 16)
		assert.Equal(t, "ERR: size must be > 0\n> ", exec(t, s, out, "CREATE A\x00B 10"))
		assert.Equal(t, "OK\n> ", exec(t, s, out, "CREATE A 10"))
		assert.Equal(t, 1, tbl.Len())
	})

	t.Run("rename", func(t *testing.T) {
		s, out, tbl := newTestShell(t, 16)
		exec(t, s, out, "CREATE A 10")
		exec(t, s, out, "CREATE B 10")
		assert.Equal(t, "ERR: exists\n> ", exec(t, s, out, "RENAME B A\x00C"))
		_, ok := tbl.Find("B")
		assert.True(t, ok)
	})
}

func TestExec_CreateExistsBeforeSize(t *testing.T) {
	s, out, tbl := newTestShell(t, 16)
	exec(t, s, out, "CREATE A 100")
	before := tbl.Entries()

	assert.Equal(t, "ERR: exists\n> ", exec(t, s, out, "CREATE A 0"))
	assert.Equal(t, "ERR: exists\n> ", exec(t, s, out, "CREATE A 5000"))
	assert.Equal(t, before, tbl.Entries(), "existing entry untouched")
}

func TestExec_CreateReturnsError(t *testing.T) {
	s, _, _ := newTestShell(t, 16)

	require.NoError(t, s.Exec("CREATE A 1"))
	assert.ErrorIs(t, s.Exec("CREATE A 1"), memfs.ErrExists)
	assert.ErrorIs(t, s.Exec("CREATE"), memfs.ErrUsage)
}

func TestExec_DirectoryFull(t *testing.T) {
	s, out, _ := newTestShell(t, 64)

	for i := range format.DefaultCapacity {
		require.Equal(t, "OK\n> ", exec(t, s, out, fmt.Sprintf("CREATE F%d 1", i)))
	}
	assert.Equal(t, "ERR: directory full\n> ", exec(t, s, out, "CREATE X 1"))
	assert.Equal(t, "OK\n> ", exec(t, s, out, "DEL F3"))
	assert.Equal(t, "OK\n> ", exec(t, s, out, "CREATE X 1"))
}

func TestExec_AllocationFailed(t *testing.T) {
	// table page and one region page
	s, out, _ := newTestShell(t, 2)

	assert.Equal(t, "OK\n> ", exec(t, s, out, "CREATE A 4096"))
	assert.Equal(t, "ERR: allocation failed\n> ", exec(t, s, out, "CREATE B 1"))
	assert.Equal(t, "FILES:\n  A  size=4096B alloc=4096B v@0x11000 p@0x11000\n> ", exec(t, s, out, "LIST"))
}

func TestExec_Rename(t *testing.T) {
	s, out, _ := newTestShell(t, 16)
	exec(t, s, out, "CREATE A 1")
	exec(t, s, out, "CREATE B 1")

	tests := []struct {
		line string
		want string
	}{
		{"RENAME", "usage: RENAME <old> <new>"},
		{"RENAME A", "usage: RENAME <old> <new>"},
		{"RENAME A ABCDEFGHIJKLMNOP", "ERR: name too long"},
		{"RENAME Z C", "ERR: not found"},
		{"RENAME A B", "ERR: exists"},
		{"RENAME A A", "ERR: exists"},
		{"RENAME A C", "OK"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want+"\n"+Prompt, exec(t, s, out, tt.line), tt.line)
	}

	got := lines(exec(t, s, out, "LIST"))
	require.Len(t, got, 3)
	assert.True(t, strings.HasPrefix(got[1], "  C  size=1B"), got[1])
	assert.True(t, strings.HasPrefix(got[2], "  B  size=1B"), got[2])
}

func TestExec_RenameKeepsAddresses(t *testing.T) {
	s, out, _ := newTestShell(t, 16)
	exec(t, s, out, "CREATE A 100")
	before := lines(exec(t, s, out, "LIST"))[1]

	exec(t, s, out, "RENAME A B")
	after := lines(exec(t, s, out, "LIST"))[1]

	assert.Equal(t, strings.Replace(before, "  A  ", "  B  ", 1), after)
}

func TestExec_Del(t *testing.T) {
	s, out, _ := newTestShell(t, 16)

	assert.Equal(t, "usage: DEL <name>\n> ", exec(t, s, out, "DEL"))
	assert.Equal(t, "ERR: not found\n> ", exec(t, s, out, "DEL A"))
	exec(t, s, out, "CREATE A 1")
	assert.Equal(t, "OK\n> ", exec(t, s, out, "DEL A"))
}

func TestExec_NoReuse(t *testing.T) {
	s, out, _ := newTestShell(t, 16)

	exec(t, s, out, "CREATE A 10")
	a := lines(exec(t, s, out, "LIST"))[1]
	exec(t, s, out, "DEL A")
	exec(t, s, out, "CREATE B 10")
	b := lines(exec(t, s, out, "LIST"))[1]

	assert.Equal(t, "  A  size=10B alloc=4096B v@0x11000 p@0x11000", a)
	assert.Equal(t, "  B  size=10B alloc=4096B v@0x12000 p@0x12000", b)
}

func TestExec_ListSlotOrder(t *testing.T) {
	s, out, _ := newTestShell(t, 16)
	for _, l := range []string{"CREATE C 1", "CREATE A 1", "CREATE B 1", "DEL C", "CREATE Z 1"} {
		exec(t, s, out, l)
	}

	got := lines(exec(t, s, out, "LIST"))
	require.Len(t, got, 4)
	assert.Equal(t, "FILES:", got[0])
	assert.True(t, strings.HasPrefix(got[1], "  Z  "))
	assert.True(t, strings.HasPrefix(got[2], "  A  "))
	assert.True(t, strings.HasPrefix(got[3], "  B  "))
}

func TestExec_Unknown(t *testing.T) {
	s, out, _ := newTestShell(t, 16)

	assert.Equal(t, "Unknown command\n> ", exec(t, s, out, "FORMAT C"))
	assert.ErrorIs(t, s.Exec("HELP"), ErrUnknownCommand)
	assert.Equal(t, "Unknown command\n> ", exec(t, s, out, "END NOW"), "END is matched on the whole line")
	assert.Equal(t, "Unknown command\n> ", exec(t, s, out, "PAGE 2"), "PAGE is matched on the whole line")
	assert.False(t, s.Halted())
}

func TestExec_Blank(t *testing.T) {
	s, out, _ := newTestShell(t, 16)

	assert.Equal(t, Prompt, exec(t, s, out, ""))
	assert.Equal(t, Prompt, exec(t, s, out, "    "))
	assert.NoError(t, s.Exec(""))
}

func TestExec_Page(t *testing.T) {
	s, out, tbl := newTestShell(t, 16)

	assert.Equal(t, "Page: 0x11000, physical address: 0x11000\n> ", exec(t, s, out, "PAGE"))
	assert.Equal(t, "Page: 0x12000, physical address: 0x12000\n> ", exec(t, s, out, "page"))
	assert.Zero(t, tbl.Len(), "PAGE does not touch the table")

	assert.Equal(t, "OK\n> ", exec(t, s, out, "CREATE A 1"))
	assert.Contains(t, exec(t, s, out, "LIST"), "v@0x13000", "CREATE gets memory after the probes")
}

func TestExec_PageExhausted(t *testing.T) {
	s, out, _ := newTestShell(t, 1)

	assert.Equal(t, "ERR: allocation failed\n> ", exec(t, s, out, "PAGE"))
	assert.ErrorIs(t, s.Exec("PAGE"), memfs.ErrAllocFailed)
	assert.ErrorIs(t, s.Exec("PAGE"), alloc.ErrNoSpace)
}

func TestExec_Mem(t *testing.T) {
	s, out, _ := newTestShell(t, 16)
	exec(t, s, out, "CREATE A 5000")
	exec(t, s, out, "DEL A")
	exec(t, s, out, "CREATE B 1")

	assert.Equal(t, "MEM: arena=65536B used=16384B abandoned=8192B files=1/16\n> ", exec(t, s, out, "MEM"))
}

func TestExec_End(t *testing.T) {
	s, out, tbl := newTestShell(t, 16)

	assert.Equal(t, "Stopping the CPU. Bye!\n", exec(t, s, out, "end"), "no prompt after END")
	assert.True(t, s.Halted())

	assert.Empty(t, exec(t, s, out, "CREATE A 1"), "halted shell prints nothing")
	assert.ErrorIs(t, s.Exec("LIST"), ErrHalted)
	assert.Zero(t, tbl.Len())
}

func TestExec_OutputFailure(t *testing.T) {
	ba, err := alloc.NewBump(&alloc.Options{Size: 4 * format.PageSize})
	require.NoError(t, err)
	tbl, err := memfs.New(ba, nil)
	require.NoError(t, err)

	boom := errors.New("screen unplugged")
	s := New(tbl, ba, failWriter{err: boom}, nil)

	err = s.Exec("LIST")
	assert.ErrorIs(t, err, ErrOutput)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, s.Boot(), ErrOutput)
}

func TestBoot(t *testing.T) {
	s, out, _ := newTestShell(t, 16)

	require.NoError(t, s.Boot())
	want := "FS init. dir@0x10000 phys@0x10000\n" +
		"Mini-OS ready.\n" +
		MsgCommands + "\n\n" +
		"FILES:\n" +
		"\n" +
		"> "
	assert.Equal(t, want, out.String())
}

func TestExec_Logging(t *testing.T) {
	ba, err := alloc.NewBump(&alloc.Options{Size: 4 * format.PageSize})
	require.NoError(t, err)
	tbl, err := memfs.New(ba, nil)
	require.NoError(t, err)

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	var out bytes.Buffer
	s := New(tbl, ba, &out, &Options{Logger: logger})

	_ = s.Exec("DEL NOPE")
	assert.Contains(t, logs.String(), "command rejected")
	assert.Contains(t, logs.String(), "memfs: not found")
	assert.NotContains(t, out.String(), "memfs:", "log text never reaches the operator output")
}
