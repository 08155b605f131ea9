// Package palette loads named colour palettes and models each entry as either
// a single colour token or an ordered sequence of tokens.
package palette

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrSourceUnavailable is returned when the palette source cannot be opened or read.
	ErrSourceUnavailable = errors.New("palette source unavailable")

	// ErrSourceMalformed is returned when the palette source cannot be parsed
	// into a mapping of names to colour tokens.
	ErrSourceMalformed = errors.New("palette source malformed")
)

// Kind distinguishes the two shapes an entry value can take.
type Kind int

const (
	// Scalar is a value holding exactly one colour token.
	Scalar Kind = iota
	// Sequence is a value holding an ordered list of colour tokens.
	Sequence
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Sequence:
		return "sequence"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is an entry value. Token is set for Scalar values, Tokens for Sequence values.
type Value struct {
	Kind   Kind
	Token  string
	Tokens []string
}

// ScalarValue returns a Scalar value for token.
func ScalarValue(token string) Value {
	return Value{Kind: Scalar, Token: token}
}

// SequenceValue returns a Sequence value holding tokens in order.
func SequenceValue(tokens ...string) Value {
	if tokens == nil {
		tokens = []string{}
	}
	return Value{Kind: Sequence, Tokens: tokens}
}

// Len returns the number of colour tokens in the value.
func (v Value) Len() int {
	if v.Kind == Sequence {
		return len(v.Tokens)
	}
	return 1
}

// Entry is one named value of a palette.
type Entry struct {
	Name  string
	Value Value
}

// Palette is an ordered, immutable collection of entries.
type Palette struct {
	entries []Entry
}

// New builds a palette from entries in the given order. A repeated name
// replaces the earlier value but keeps the position of its first occurrence.
func New(entries ...Entry) *Palette {
	p := &Palette{entries: make([]Entry, 0, len(entries))}
	index := make(map[string]int, len(entries))
	for _, e := range entries {
		p.add(index, e)
	}
	return p
}

func (p *Palette) add(index map[string]int, e Entry) {
	if i, seen := index[e.Name]; seen {
		p.entries[i].Value = e.Value
		return
	}
	index[e.Name] = len(p.entries)
	p.entries = append(p.entries, e)
}

// Entries returns a copy of the palette entries in palette order.
func (p *Palette) Entries() []Entry {
	out := make([]Entry, len(p.entries))
	copy(out, p.entries)
	return out
}

// Len returns the number of entries.
func (p *Palette) Len() int {
	return len(p.entries)
}

// Counts returns the number of scalar and sequence entries.
func (p *Palette) Counts() (scalars, sequences int) {
	for _, e := range p.entries {
		if e.Value.Kind == Sequence {
			sequences++
		} else {
			scalars++
		}
	}
	return scalars, sequences
}

// MaxSequenceLen returns the length of the longest sequence entry, or zero
// when the palette has no sequences.
func (p *Palette) MaxSequenceLen() int {
	longest := 0
	for _, e := range p.entries {
		if e.Value.Kind == Sequence && len(e.Value.Tokens) > longest {
			longest = len(e.Value.Tokens)
		}
	}
	return longest
}

// Decode parses a JSON object mapping names to a colour token or an array of
// colour tokens. Key order in the source is preserved.
func Decode(r io.Reader) (*Palette, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty source", ErrSourceMalformed)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceMalformed, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: expected a JSON object at top level", ErrSourceMalformed)
	}

	p := &Palette{}
	index := make(map[string]int)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSourceMalformed, err)
		}
		name, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected token %v", ErrSourceMalformed, keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: entry %q: %w", ErrSourceMalformed, name, err)
		}
		value, err := decodeValue(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %q: %w", ErrSourceMalformed, name, err)
		}
		p.add(index, Entry{Name: name, Value: value})
	}

	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceMalformed, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: unexpected data after palette object", ErrSourceMalformed)
	}

	return p, nil
}

// decodeValue classifies a raw JSON value as Scalar or Sequence.
func decodeValue(raw json.RawMessage) (Value, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return Value{}, errors.New("missing value")
	}

	switch raw[0] {
	case '"':
		var token string
		if err := json.Unmarshal(raw, &token); err != nil {
			return Value{}, err
		}
		return ScalarValue(token), nil

	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return Value{}, err
		}
		tokens := make([]string, 0, len(items))
		for i, item := range items {
			item = bytes.TrimSpace(item)
			if len(item) == 0 || item[0] != '"' {
				return Value{}, fmt.Errorf("element %d is not a colour token: %s", i, item)
			}
			var token string
			if err := json.Unmarshal(item, &token); err != nil {
				return Value{}, fmt.Errorf("element %d: %w", i, err)
			}
			tokens = append(tokens, token)
		}
		return SequenceValue(tokens...), nil

	default:
		return Value{}, fmt.Errorf("expected a colour token or an array of colour tokens, got %s", raw)
	}
}
