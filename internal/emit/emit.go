// Package emit renders palettes as C++ constexpr declarations.
package emit

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jmylchreest/hexpal/internal/palette"
)

// hexPrefix replaces the marker character of every colour token.
const hexPrefix = "0x"

// FormatToken drops the first character of token (its "#" marker) and
// prefixes the remainder with "0x". The remainder is not validated.
func FormatToken(token string) string {
	_, size := utf8.DecodeRuneInString(token)
	return hexPrefix + token[size:]
}

// ElementName returns the declaration name of element i of a sequence.
func ElementName(name string, i int) string {
	return fmt.Sprintf("%s_%d", name, i)
}

// Emitter writes declarations to an output stream. After the first write
// error all further output is skipped and the error is reported by Err.
type Emitter struct {
	w   io.Writer
	err error
}

// New creates an Emitter writing to w.
func New(w io.Writer) *Emitter {
	return &Emitter{w: w}
}

// Err returns the first write error, if any.
func (e *Emitter) Err() error {
	return e.err
}

func (e *Emitter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

// EmitScalar declares a single constant followed by a blank line.
func (e *Emitter) EmitScalar(name, token string) {
	e.printf("constexpr Hex %s = %s;\n\n", name, FormatToken(token))
}

// EmitSequence declares one constant per token, then an aggregate listing
// them in order, followed by a blank line.
func (e *Emitter) EmitSequence(name string, tokens []string) {
	names := make([]string, 0, len(tokens))
	for i, token := range tokens {
		elem := ElementName(name, i)
		names = append(names, elem)
		e.printf("constexpr Hex %s = %s;\n", elem, FormatToken(token))
	}
	e.printf("constexpr Hexs %s = {%s};\n\n", name, strings.Join(names, ", "))
}

// Emit writes the declarations for a single entry.
func (e *Emitter) Emit(entry palette.Entry) {
	switch entry.Value.Kind {
	case palette.Sequence:
		e.EmitSequence(entry.Name, entry.Value.Tokens)
	case palette.Scalar:
		e.EmitScalar(entry.Name, entry.Value.Token)
	}
}

// Run writes declarations for every entry of p to w, in palette order.
func Run(p *palette.Palette, w io.Writer) error {
	bw := bufio.NewWriter(w)
	e := New(bw)
	for _, entry := range p.Entries() {
		e.Emit(entry)
	}
	if err := e.Err(); err != nil {
		return fmt.Errorf("failed to write declarations: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write declarations: %w", err)
	}
	return nil
}

// Generate decodes a palette from r and writes its declarations to w.
// Nothing is written when the palette cannot be decoded.
func Generate(r io.Reader, w io.Writer) error {
	p, err := palette.Decode(r)
	if err != nil {
		return err
	}
	return Run(p, w)
}
