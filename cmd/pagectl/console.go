package main

import (
	"bytes"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/joshuapare/pagefs/internal/logger"
	"github.com/joshuapare/pagefs/shell"
)

func init() {
	rootCmd.AddCommand(newConsoleCmd())
}

func newConsoleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "console",
		Short: "Run the shell in a full-screen terminal console",
		Long: `The console command boots the directory and runs the shell in a
full-screen terminal view with a scrollable transcript. The console closes
after END or on ctrl+c.

Example:
  pagectl console
  pagectl console --arena mmap --debug`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(cmd)
		},
	}
	return cmd
}

func runConsole(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var screen bytes.Buffer
	sys, err := bootSystem(cfg, &screen, false)
	if err != nil {
		return err
	}
	defer sys.Close()

	if err := sys.shell.Boot(); err != nil {
		return err
	}

	p := tea.NewProgram(newConsoleModel(sys.shell, &screen), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("error running console: %w", err)
	}

	// The alternate screen is gone; leave the farewell visible.
	if sys.shell.Halted() {
		fmt.Fprintln(cmd.OutOrStdout(), shell.MsgHalt)
	}
	return nil
}
