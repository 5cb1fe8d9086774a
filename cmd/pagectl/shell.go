package main

import (
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newShellCmd())
}

func newShellCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Run the interactive command shell on standard input",
		Long: `The shell command boots the directory, prints the banner and the
initial listing, then executes one command per input line until END or end
of input.

Example:
  pagectl shell
  pagectl shell --arena mmap --capacity 32
  printf 'CREATE LOG 10\nLIST\nEND\n' | pagectl shell`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd)
		},
	}
	return cmd
}

func runShell(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	sys, err := bootSystem(cfg, os.Stdout, false)
	if err != nil {
		return err
	}
	defer sys.Close()

	if err := sys.shell.Boot(); err != nil {
		return err
	}
	return sys.shell.Run(cmd.Context(), cmd.InOrStdin())
}
