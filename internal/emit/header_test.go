package emit

import (
	"bytes"
	"testing"

	"github.com/jmylchreest/hexpal/internal/palette"
)

func TestWriteHeader(t *testing.T) {
	p := palette.New(
		palette.Entry{Name: "white", Value: palette.ScalarValue("#ffffff")},
		palette.Entry{Name: "gray", Value: palette.SequenceValue("#f8f9fa", "#f1f3f5")},
	)

	want := `#pragma once

#include <array>
#include <cstdint>

namespace open_color
{
    using Hex = std::uint32_t;
    using Hexs = std::array<Hex, 2>;

    constexpr Hex white = 0xffffff;

    constexpr Hex gray_0 = 0xf8f9fa;
    constexpr Hex gray_1 = 0xf1f3f5;
    constexpr Hexs gray = {gray_0, gray_1};
}
`

	var buf bytes.Buffer
	if err := WriteHeader(p, "open_color", &buf); err != nil {
		t.Fatalf("WriteHeader() error = %v", err)
	}
	if got := buf.String(); got != want {
		t.Errorf("WriteHeader() =\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteHeaderScalarsOnly(t *testing.T) {
	p := palette.New(palette.Entry{Name: "black", Value: palette.ScalarValue("#000000")})

	want := `#pragma once

#include <array>
#include <cstdint>

namespace colours
{
    using Hex = std::uint32_t;

    constexpr Hex black = 0x000000;
}
`

	var buf bytes.Buffer
	if err := WriteHeader(p, "colours", &buf); err != nil {
		t.Fatalf("WriteHeader() error = %v", err)
	}
	if got := buf.String(); got != want {
		t.Errorf("WriteHeader() =\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteHeaderEmptyPalette(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHeader(palette.New(), "empty", &buf); err != nil {
		t.Fatalf("WriteHeader() error = %v", err)
	}

	want := "#pragma once\n\n#include <array>\n#include <cstdint>\n\nnamespace empty\n{\n    using Hex = std::uint32_t;\n}\n"
	if got := buf.String(); got != want {
		t.Errorf("WriteHeader() = %q, want %q", got, want)
	}
}
