package emit

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmylchreest/hexpal/internal/palette"
)

func TestOpenColorGolden(t *testing.T) {
	p, err := palette.Load(filepath.Join("testdata", "open-color.json"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	tests := []struct {
		name   string
		golden string
		render func(*bytes.Buffer) error
	}{
		{
			name:   "declarations",
			golden: "open-color.txt.golden",
			render: func(buf *bytes.Buffer) error { return Run(p, buf) },
		},
		{
			name:   "header",
			golden: "open-color.h.golden",
			render: func(buf *bytes.Buffer) error { return WriteHeader(p, "open_color", buf) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, err := os.ReadFile(filepath.Join("testdata", tt.golden))
			if err != nil {
				t.Fatalf("Failed to read golden file: %v", err)
			}

			var buf bytes.Buffer
			if err := tt.render(&buf); err != nil {
				t.Fatalf("render error = %v", err)
			}
			if !bytes.Equal(buf.Bytes(), want) {
				t.Errorf("output does not match %s:\n%s", tt.golden, buf.String())
			}
		})
	}
}
