package cli

import (
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/hexpal/internal/palette"
)

// addSourceFlags registers the palette source flag on fs.
func addSourceFlags(fs *pflag.FlagSet, path *string) {
	fs.StringVarP(path, "path", "p", palette.DefaultPath, `palette source file ("-" for stdin, xz-compressed sources accepted)`)
}

// loadPalette reads and decodes the palette at path. The whole source is
// loaded before anything is returned.
func loadPalette(cmd *cobra.Command, logger hclog.Logger, path string) (*palette.Palette, error) {
	src, err := palette.ReadFile(path, cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	logger.Debug("read palette source", "path", src.Path, "bytes", len(src.Data), "xz", src.Compressed)

	p, err := src.Palette()
	if err != nil {
		return nil, err
	}

	scalars, sequences := p.Counts()
	logger.Debug("decoded palette", "entries", p.Len(), "scalars", scalars, "sequences", sequences)

	return p, nil
}
