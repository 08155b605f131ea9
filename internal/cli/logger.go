package cli

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/term"
)

// newLogger creates the diagnostic logger. Output always goes to the
// command's error stream so generated declarations on stdout stay clean.
func newLogger(opts *globalOptions, out io.Writer) hclog.Logger {
	level := hclog.Warn
	switch {
	case opts.quiet:
		level = hclog.Off
	case opts.verbose:
		level = hclog.Debug
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "hexpal",
		Output: out,
		Level:  level,
		Color:  colorOption(out),
	})
}

// colorOption enables coloured log output only for terminals.
func colorOption(out io.Writer) hclog.ColorOption {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) { // #nosec G115 - file descriptors fit in int
		return hclog.ColorOff
	}
	return hclog.AutoColor
}
