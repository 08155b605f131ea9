package cli

import (
	"strings"
	"unicode/utf8"
)

// columnGap separates table columns.
const columnGap = "  "

// Table formats rows into aligned columns with a header and separator line.
// Widths are measured in runes.
type Table struct {
	headers   []string
	rows      [][]string
	maxWidths map[int]int
}

// NewTable creates a table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers:   headers,
		maxWidths: make(map[int]int),
	}
}

// SetColumnMaxWidth wraps cells of column col at word boundaries once they
// exceed width runes. A width of zero disables wrapping.
func (t *Table) SetColumnMaxWidth(col, width int) {
	t.maxWidths[col] = width
}

// AddRow appends a row, padding or truncating it to the header count.
func (t *Table) AddRow(row []string) {
	fitted := make([]string, len(t.headers))
	copy(fitted, row)
	t.rows = append(t.rows, fitted)
}

// Render returns the formatted table. An empty header set renders nothing.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	cells := make([][][]string, len(t.rows))
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for r, row := range t.rows {
		cells[r] = make([][]string, len(row))
		for c, cell := range row {
			lines := wrapText(cell, t.maxWidths[c])
			cells[r][c] = lines
			for _, line := range lines {
				widths[c] = max(widths[c], utf8.RuneCountInString(line))
			}
		}
	}

	var b strings.Builder
	writeLine := func(parts []string) {
		for i, part := range parts {
			if i > 0 {
				b.WriteString(columnGap)
			}
			if i == len(parts)-1 {
				b.WriteString(part)
			} else {
				b.WriteString(padRight(part, widths[i]))
			}
		}
		b.WriteString("\n")
	}

	writeLine(t.headers)
	sep := make([]string, len(widths))
	for i, w := range widths {
		sep[i] = strings.Repeat("-", w)
	}
	writeLine(sep)

	for _, row := range cells {
		height := 1
		for _, lines := range row {
			height = max(height, len(lines))
		}
		for l := 0; l < height; l++ {
			parts := make([]string, len(row))
			for c, lines := range row {
				if l < len(lines) {
					parts[c] = lines[l]
				}
			}
			writeLine(parts)
		}
	}

	return b.String()
}

// padRight pads s with spaces to width runes.
func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// wrapText splits text into lines of at most width runes, breaking at spaces.
// Words longer than width get a line of their own.
func wrapText(text string, width int) []string {
	if width <= 0 || utf8.RuneCountInString(text) <= width {
		return []string{text}
	}

	var lines []string
	current := ""
	for _, word := range strings.Fields(text) {
		switch {
		case current == "":
			current = word
		case utf8.RuneCountInString(current)+1+utf8.RuneCountInString(word) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" || len(lines) == 0 {
		lines = append(lines, current)
	}

	return lines
}
