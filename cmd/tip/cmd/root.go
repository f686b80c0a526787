// Package cmd is the tip CLI's cobra command tree, grounded on the
// teacher's cmd/dwscript/cmd: a package-level rootCmd, one file per
// subcommand, each registering itself in an init().
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tip",
	Short: "A type checker for the TIP teaching language",
	Long: `tip parses and type-checks programs written in TIP, the small
imperative language of functions, pointers, and records used to teach
static analysis and type inference.

Examples:
  # Infer and print the type of every declaration in a program
  tip analyze factorial.tip

  # Read a program from stdin
  cat factorial.tip | tip analyze -`,
	Version: Version,
}

// Execute runs the root command; main's only job is to call this and
// translate a non-nil error into a process exit code.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate("tip {{.Version}}\n")
}
