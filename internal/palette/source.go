package palette

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/ulikunitz/xz"
)

const (
	// DefaultPath is the palette source read when no path is given.
	DefaultPath = "open-color.json"

	// StdinPath selects standard input as the palette source.
	StdinPath = "-"

	// MaxSourceSize caps the (decompressed) size of a palette source.
	MaxSourceSize = 16 * 1024 * 1024
)

// xzMagic is the xz stream header magic.
var xzMagic = []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}

// Source is a palette source read fully into memory.
type Source struct {
	Path       string
	Data       []byte
	Compressed bool
}

// ReadFile reads the palette source at path. StdinPath reads from stdin.
// The file is closed before ReadFile returns.
func ReadFile(path string, stdin io.Reader) (*Source, error) {
	if path == StdinPath {
		return Read(path, stdin)
	}

	f, err := os.Open(path) // #nosec G304 - User-specified palette source, intended to be read
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer f.Close()

	return Read(path, f)
}

// Read reads a palette source from r, transparently decompressing xz streams.
func Read(path string, r io.Reader) (*Source, error) {
	br := bufio.NewReader(r)
	src := &Source{Path: path}

	var body io.Reader = br
	if magic, _ := br.Peek(len(xzMagic)); bytes.Equal(magic, xzMagic) {
		xzr, err := xz.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to create xz reader: %w", ErrSourceUnavailable, err)
		}
		body = xzr
		src.Compressed = true
	}

	data, err := io.ReadAll(io.LimitReader(body, MaxSourceSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, path, err)
	}
	if len(data) > MaxSourceSize {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrSourceUnavailable, path, MaxSourceSize)
	}
	src.Data = data

	return src, nil
}

// Palette decodes the source contents.
func (s *Source) Palette() (*Palette, error) {
	p, err := Decode(bytes.NewReader(s.Data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	return p, nil
}

// Load reads and decodes the palette source at path.
func Load(path string) (*Palette, error) {
	src, err := ReadFile(path, os.Stdin)
	if err != nil {
		return nil, err
	}
	return src.Palette()
}
