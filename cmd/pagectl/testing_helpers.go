package main

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/spf13/cobra"
)

// useMemFS points fsys at a fresh in-memory filesystem holding files, and
// restores the host filesystem afterwards.
func useMemFS(t *testing.T, files map[string]string) {
	t.Helper()
	orig := fsys
	mfs := memfs.New()
	for name, content := range files {
		if err := util.WriteFile(mfs, name, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	fsys = mfs
	t.Cleanup(func() { fsys = orig })
}

// resetFlags restores every package-level flag variable to its default.
func resetFlags(t *testing.T) {
	t.Helper()
	verbose, quiet = false, false
	configPath = ""
	capacity, arenaKind, arenaSize = 0, "", 0
	debugLog, logDir = false, ""
	runStrict, runBanner = false, false
}

// testCommand returns cmd ready to run outside Execute.
func testCommand(cmd *cobra.Command) *cobra.Command {
	cmd.SetContext(context.Background())
	return cmd
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	// Save original stdout
	origStdout := os.Stdout

	// Create a pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	// Redirect stdout to pipe
	os.Stdout = w

	// Run function
	fnErr := fn()

	// Close write end and restore stdout
	w.Close()
	os.Stdout = origStdout

	// Read captured output
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	return buf.String(), fnErr
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertNotContains checks that output doesn't contain any of the strings
func assertNotContains(t *testing.T, output string, unexpected []string) {
	t.Helper()
	for _, notWant := range unexpected {
		if strings.Contains(output, notWant) {
			t.Errorf("output contains unexpected string %q\nGot: %s", notWant, output)
		}
	}
}
