package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pagefs/internal/format"
)

// Set by the release build through -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func init() {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("pagectl {{.Version}}\n")
	rootCmd.AddCommand(newVersionCmd())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), versionInfo())
		},
	}
}

// versionInfo renders the build details together with the compiled-in
// directory geometry.
func versionInfo() string {
	return fmt.Sprintf("pagectl %s\n  commit: %s\n  built: %s\n  go: %s %s/%s\n  page: %d bytes, names < %d bytes\n",
		version, commit, date,
		runtime.Version(), runtime.GOOS, runtime.GOARCH,
		format.PageSize, format.NameMax)
}
