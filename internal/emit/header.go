package emit

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/jmylchreest/hexpal/internal/palette"
)

const indent = "    "

// WriteHeader writes a self-contained C++ header declaring p inside namespace.
func WriteHeader(p *palette.Palette, namespace string, w io.Writer) error {
	var body bytes.Buffer
	if err := Run(p, &body); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprint(bw, "#pragma once\n\n#include <array>\n#include <cstdint>\n\n")
	fmt.Fprintf(bw, "namespace %s\n{\n", namespace)
	fmt.Fprintf(bw, "%susing Hex = std::uint32_t;\n", indent)
	if _, sequences := p.Counts(); sequences > 0 {
		fmt.Fprintf(bw, "%susing Hexs = std::array<Hex, %d>;\n", indent, p.MaxSequenceLen())
	}

	// The last entry's blank line is dropped before the closing brace.
	if text := strings.TrimRight(body.String(), "\n"); text != "" {
		bw.WriteString("\n")
		for _, line := range strings.Split(text, "\n") {
			if line != "" {
				bw.WriteString(indent)
				bw.WriteString(line)
			}
			bw.WriteString("\n")
		}
	}
	bw.WriteString("}\n")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	return nil
}
