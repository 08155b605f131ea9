// Package cli provides the command-line interface for hexpal.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/hexpal/internal/version"
)

// globalOptions holds flags shared by every command.
type globalOptions struct {
	verbose bool
	quiet   bool
}

// NewRootCmd builds the hexpal command tree. Running it without a
// subcommand behaves like "generate".
func NewRootCmd() *cobra.Command {
	globals := &globalOptions{}
	defaults := newGenerateOptions()

	rootCmd := &cobra.Command{
		Use:   "hexpal",
		Short: "Emit C++ colour constants from a palette",
		Long: `Hexpal reads a JSON colour palette (such as Open Color's open-color.json)
and prints a constexpr declaration for every entry, in palette order.

A single colour becomes one constant; a list of colours becomes one constant
per element plus an aggregate listing them.

Examples:
  # Read ./open-color.json and print declarations
  hexpal

  # Read another palette and write a complete header
  hexpal generate -p palette.json -n open_color -o open-color.h`,
		Version:      version.Short(),
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, globals, defaults)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&globals.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&globals.quiet, "quiet", "q", false, "suppress non-error output")
	defaults.addFlags(rootCmd)

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newGenerateCmd(globals))
	rootCmd.AddCommand(newInspectCmd(globals))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
