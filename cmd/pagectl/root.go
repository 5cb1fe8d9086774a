package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/joshuapare/pagefs/internal/config"
	"github.com/joshuapare/pagefs/internal/logger"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	configPath string
	capacity   int
	arenaKind  string
	arenaSize  int
	debugLog   bool
	logDir     string
)

// fsys is where config files and scripts are read from.
var fsys billy.Filesystem = osfs.New("/")

var rootCmd = &cobra.Command{
	Use:   "pagectl",
	Short: "Run the in-memory page directory shell",
	Long: `pagectl boots a fixed-capacity directory of named memory regions backed
by page-granular allocations and runs its line-oriented command shell.

Without a subcommand it reads commands from standard input:
  LIST | CREATE <name> <size> | RENAME <old> <new> | DEL <name> | PAGE | MEM | END`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShell(cmd)
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().IntVar(&capacity, "capacity", 0, "Directory slots (overrides config)")
	rootCmd.PersistentFlags().StringVar(&arenaKind, "arena", "", "Arena source: heap or mmap (overrides config)")
	rootCmd.PersistentFlags().IntVar(&arenaSize, "arena-size", 0, "Arena size in bytes (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&debugLog, "debug", "d", false, "Write a debug log file")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Directory for debug log files")
}

func execute() {
	err := rootCmd.Execute()
	_ = logger.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file, applies flag overrides and starts the
// diagnostic logger.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := configPath
	if path != "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config path: %w", err)
		}
		path = abs
	}

	cfg, err := config.Load(fsys, path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("capacity") {
		cfg.Capacity = capacity
	}
	if flags.Changed("arena") {
		cfg.Arena.Kind = arenaKind
	}
	if flags.Changed("arena-size") {
		cfg.Arena.Size = arenaSize
	}
	if flags.Changed("debug") {
		cfg.Log.Enabled = debugLog
		cfg.Log.Level = "debug"
	}
	if flags.Changed("log-dir") {
		cfg.Log.Dir = logDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := logger.Init(cfg.LoggerOptions()); err != nil {
		printError("failed to init logging: %v\n", err)
	} else if p := logger.Path(); p != "" {
		printVerbose("Logging to %s\n", p)
	}
	printVerbose("Arena: %s, %d bytes; capacity %d\n", cfg.Arena.Kind, cfg.Arena.Size, cfg.Capacity)
	return cfg, nil
}

// Helper functions for output

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message to stderr if verbose mode is enabled.
// Stdout carries the shell transcript only.
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
