package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5/util"
	"github.com/spf13/cobra"
)

var (
	runStrict bool
	runBanner bool
)

func init() {
	cmd := newRunCmd()
	cmd.Flags().BoolVar(&runStrict, "strict", false, "Stop at the first command that reports an error")
	cmd.Flags().BoolVar(&runBanner, "banner", false, "Print the boot banner before the script output")
	rootCmd.AddCommand(cmd)
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Execute a command script against a fresh directory",
		Long: `The run command boots a fresh directory and executes the script one
line at a time, exactly as if the lines were typed at the shell. The
transcript is written to standard output.

Example:
  pagectl run demo.txt
  pagectl run demo.txt --strict
  pagectl run demo.txt --banner --arena mmap`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(cmd, args)
		},
	}
	return cmd
}

func runScript(cmd *cobra.Command, args []string) error {
	scriptPath, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("failed to resolve script path: %w", err)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	script, err := util.ReadFile(fsys, scriptPath)
	if err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}
	printVerbose("Running script: %s (%d bytes)\n", scriptPath, len(script))

	sys, err := bootSystem(cfg, os.Stdout, runStrict)
	if err != nil {
		return err
	}
	defer sys.Close()

	if runBanner {
		if err := sys.shell.Boot(); err != nil {
			return err
		}
	}
	if err := sys.shell.Run(cmd.Context(), bytes.NewReader(script)); err != nil {
		return fmt.Errorf("script %s: %w", args[0], err)
	}
	return nil
}
