package shell

import (
	"bytes"
	"strings"
	"testing"

	"github.com/joshuapare/pagefs/internal/format"
	"github.com/joshuapare/pagefs/memfs"
	"github.com/joshuapare/pagefs/memfs/alloc"
	"github.com/stretchr/testify/require"
)

// newTestShell returns a shell over a fresh 16-slot table in a heap arena
// of the given pages, and the buffer it writes to.
func newTestShell(t *testing.T, pages int) (*Shell, *bytes.Buffer, *memfs.Table) {
	t.Helper()
	ba, err := alloc.NewBump(&alloc.Options{Size: pages * format.PageSize, PhysBase: format.DefaultBase})
	require.NoError(t, err)
	t.Cleanup(func() { _ = ba.Close() })

	tbl, err := memfs.New(ba, nil)
	require.NoError(t, err)

	var out bytes.Buffer
	return New(tbl, ba, &out, nil), &out, tbl
}

// exec runs one line and returns what it printed.
func exec(t *testing.T, s *Shell, out *bytes.Buffer, line string) string {
	t.Helper()
	out.Reset()
	_ = s.Exec(line)
	return out.String()
}

// lines splits output into lines without the trailing prompt.
func lines(output string) []string {
	output = strings.TrimSuffix(output, Prompt)
	output = strings.TrimSuffix(output, "\n")
	if output == "" {
		return nil
	}
	return strings.Split(output, "\n")
}

// failWriter rejects every write.
type failWriter struct{ err error }

func (w failWriter) Write([]byte) (int, error) { return 0, w.err }
