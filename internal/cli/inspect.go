package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/hexpal/internal/palette"
)

// valuesColumnWidth limits the VALUES column before wrapping.
const valuesColumnWidth = 60

func newInspectCmd(globals *globalOptions) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "List palette entries",
		Long: `List every palette entry with its kind and colour tokens, in palette order.

Examples:
  # Inspect ./open-color.json
  hexpal inspect

  # Inspect another palette
  hexpal inspect -p palette.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(globals, cmd.ErrOrStderr())

			p, err := loadPalette(cmd, logger, path)
			if err != nil {
				return err
			}

			table := NewTable([]string{"NAME", "KIND", "COLOURS", "VALUES"})
			table.SetColumnMaxWidth(3, valuesColumnWidth)
			for _, entry := range p.Entries() {
				values := entry.Value.Tokens
				if entry.Value.Kind == palette.Scalar {
					values = []string{entry.Value.Token}
				}
				table.AddRow([]string{
					entry.Name,
					entry.Value.Kind.String(),
					strconv.Itoa(entry.Value.Len()),
					strings.Join(values, " "),
				})
			}

			fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return nil
		},
	}
	addSourceFlags(cmd.Flags(), &path)

	return cmd
}
