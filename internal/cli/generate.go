package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/hexpal/internal/emit"
)

// generateOptions holds the generate command flags.
type generateOptions struct {
	path      string
	output    string
	namespace string
}

func newGenerateOptions() *generateOptions {
	return &generateOptions{}
}

func (o *generateOptions) addFlags(cmd *cobra.Command) {
	addSourceFlags(cmd.Flags(), &o.path)
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&o.namespace, "namespace", "n", "", "wrap declarations in a header with this C++ namespace")
}

func newGenerateCmd(globals *globalOptions) *cobra.Command {
	opts := newGenerateOptions()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print constexpr declarations for a palette",
		Long: `Print a constexpr declaration for every palette entry, in palette order.

Each colour token loses its first character (the "#" marker) and is written
as a 0x-prefixed literal. Tokens are not validated.

Examples:
  # Print declarations for ./open-color.json
  hexpal generate

  # Read from stdin
  cat palette.json | hexpal generate -p -

  # Write a header with a namespace
  hexpal generate -n open_color -o open-color.h`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, globals, opts)
		},
	}
	opts.addFlags(cmd)

	return cmd
}

// runGenerate loads the palette, renders every declaration into memory and
// only then writes the result, so a failed load produces no output.
func runGenerate(cmd *cobra.Command, globals *globalOptions, opts *generateOptions) error {
	logger := newLogger(globals, cmd.ErrOrStderr())

	p, err := loadPalette(cmd, logger, opts.path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if opts.namespace != "" {
		err = emit.WriteHeader(p, opts.namespace, &buf)
	} else {
		err = emit.Run(p, &buf)
	}
	if err != nil {
		return err
	}

	if opts.output == "" || opts.output == "-" {
		logger.Debug("writing declarations", "output", "stdout", "bytes", buf.Len())
		if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	logger.Debug("writing declarations", "output", opts.output, "bytes", buf.Len())
	if err := os.WriteFile(opts.output, buf.Bytes(), 0o644); err != nil { // #nosec G306 - Generated source file, intended to be readable
		return fmt.Errorf("failed to write output file: %w", err)
	}
	logger.Info("wrote declarations", "path", opts.output, "entries", p.Len())

	return nil
}
