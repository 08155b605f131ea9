package palette

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Entry
	}{
		{
			name:  "scalar and sequence",
			input: `{"gray": ["#111111", "#222222"], "white": "#ffffff"}`,
			want: []Entry{
				{Name: "gray", Value: SequenceValue("#111111", "#222222")},
				{Name: "white", Value: ScalarValue("#ffffff")},
			},
		},
		{
			name:  "preserves source order",
			input: `{"zeta": "#000001", "alpha": "#000002", "mid": ["#000003"]}`,
			want: []Entry{
				{Name: "zeta", Value: ScalarValue("#000001")},
				{Name: "alpha", Value: ScalarValue("#000002")},
				{Name: "mid", Value: SequenceValue("#000003")},
			},
		},
		{
			name:  "duplicate key keeps first position and last value",
			input: `{"a": "#111111", "b": "#222222", "a": ["#333333"]}`,
			want: []Entry{
				{Name: "a", Value: SequenceValue("#333333")},
				{Name: "b", Value: ScalarValue("#222222")},
			},
		},
		{
			name:  "empty sequence",
			input: `{"none": []}`,
			want: []Entry{
				{Name: "none", Value: SequenceValue()},
			},
		},
		{
			name:  "tokens are not validated",
			input: `{"odd": "zzz", "empty": ""}`,
			want: []Entry{
				{Name: "odd", Value: ScalarValue("zzz")},
				{Name: "empty", Value: ScalarValue("")},
			},
		},
		{
			name:  "empty object",
			input: "  {}\n",
			want:  []Entry{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Decode(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if got := p.Entries(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Decode() entries = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{name: "empty source", input: "", wantMsg: "empty source"},
		{name: "top level array", input: `["#111111"]`, wantMsg: "top level"},
		{name: "top level string", input: `"#111111"`, wantMsg: "top level"},
		{name: "number value", input: `{"a": 1}`, wantMsg: `entry "a"`},
		{name: "null value", input: `{"a": null}`, wantMsg: `entry "a"`},
		{name: "nested object", input: `{"a": {"b": "#111111"}}`, wantMsg: `entry "a"`},
		{name: "null element", input: `{"a": ["#111111", null]}`, wantMsg: "element 1"},
		{name: "nested array", input: `{"a": [["#111111"]]}`, wantMsg: "element 0"},
		{name: "truncated", input: `{"a": "#111111"`, wantMsg: ""},
		{name: "trailing data", input: `{"a": "#111111"} {}`, wantMsg: "after palette object"},
		{name: "not json", input: `gray: "#111111"`, wantMsg: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("Decode() expected error, got nil")
			}
			if !errors.Is(err, ErrSourceMalformed) {
				t.Errorf("Decode() error = %v, want ErrSourceMalformed", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Decode() error = %q, want it to contain %q", err, tt.wantMsg)
			}
		})
	}
}

func TestPaletteStats(t *testing.T) {
	p := New(
		Entry{Name: "white", Value: ScalarValue("#ffffff")},
		Entry{Name: "gray", Value: SequenceValue("#1", "#2", "#3")},
		Entry{Name: "red", Value: SequenceValue("#1", "#2")},
	)

	if p.Len() != 3 {
		t.Errorf("Len() = %d, want 3", p.Len())
	}
	scalars, sequences := p.Counts()
	if scalars != 1 || sequences != 2 {
		t.Errorf("Counts() = (%d, %d), want (1, 2)", scalars, sequences)
	}
	if got := p.MaxSequenceLen(); got != 3 {
		t.Errorf("MaxSequenceLen() = %d, want 3", got)
	}

	if got := New(Entry{Name: "white", Value: ScalarValue("#ffffff")}).MaxSequenceLen(); got != 0 {
		t.Errorf("MaxSequenceLen() without sequences = %d, want 0", got)
	}
}

func TestEntriesIsACopy(t *testing.T) {
	p := New(Entry{Name: "white", Value: ScalarValue("#ffffff")})
	entries := p.Entries()
	entries[0].Name = "black"

	if got := p.Entries()[0].Name; got != "white" {
		t.Errorf("palette mutated through Entries(): name = %q", got)
	}
}

func TestKindString(t *testing.T) {
	if Scalar.String() != "scalar" || Sequence.String() != "sequence" {
		t.Errorf("unexpected kind names %q, %q", Scalar, Sequence)
	}
	if got := Kind(7).String(); got != "kind(7)" {
		t.Errorf("Kind(7).String() = %q", got)
	}
}

func TestValueLen(t *testing.T) {
	if got := ScalarValue("#fff").Len(); got != 1 {
		t.Errorf("scalar Len() = %d, want 1", got)
	}
	if got := SequenceValue("#1", "#2").Len(); got != 2 {
		t.Errorf("sequence Len() = %d, want 2", got)
	}
	if got := SequenceValue().Len(); got != 0 {
		t.Errorf("empty sequence Len() = %d, want 0", got)
	}
}
