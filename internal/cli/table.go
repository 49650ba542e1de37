package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const columnGap = "  "

// Table lays out rows under a header with a dashed separator. Widths are
// measured in terminal cells, so styled cells such as colour swatches line up.
type Table struct {
	headers []string
	rows    [][]string
	wrap    map[int]int
}

// NewTable creates a table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{headers: headers, wrap: make(map[int]int)}
}

// WrapColumn wraps the cells of column col at width cells, breaking at spaces.
func (t *Table) WrapColumn(col, width int) {
	t.wrap[col] = width
}

// AddRow appends a row, padding or truncating it to the header count.
func (t *Table) AddRow(row []string) {
	cells := make([]string, len(t.headers))
	copy(cells, row)
	t.rows = append(t.rows, cells)
}

// Render returns the formatted table.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	rows := make([][][]string, len(t.rows))
	for r, row := range t.rows {
		rows[r] = make([][]string, len(row))
		for c, cell := range row {
			rows[r][c] = wrapText(cell, t.wrap[c])
		}
	}

	widths := make([]int, len(t.headers))
	for c, h := range t.headers {
		widths[c] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for c, cell := range row {
			for _, line := range cell {
				widths[c] = max(widths[c], lipgloss.Width(line))
			}
		}
	}

	var b strings.Builder
	writeLine(&b, widths, t.headers)
	sep := make([]string, len(widths))
	for c, w := range widths {
		sep[c] = strings.Repeat("-", w)
	}
	writeLine(&b, widths, sep)

	for _, row := range rows {
		height := 1
		for _, cell := range row {
			height = max(height, len(cell))
		}
		for i := range height {
			line := make([]string, len(row))
			for c, cell := range row {
				if i < len(cell) {
					line[c] = cell[i]
				}
			}
			writeLine(&b, widths, line)
		}
	}
	return b.String()
}

// Write renders the table to w.
func (t *Table) Write(w io.Writer) error {
	_, err := io.WriteString(w, t.Render())
	return err
}

func writeLine(b *strings.Builder, widths []int, cells []string) {
	for c, w := range widths {
		if c > 0 {
			b.WriteString(columnGap)
		}
		b.WriteString(padRight(cells[c], w))
	}
	b.WriteByte('\n')
}

// padRight pads s with spaces to width cells. Wider strings are unchanged.
func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// wrapText breaks text into lines of at most width bytes at spaces, splitting
// words that are longer than a line. A non-positive width disables wrapping.
func wrapText(text string, width int) []string {
	if width <= 0 || len(text) <= width {
		return []string{text}
	}

	var lines []string
	var line string
	flush := func() {
		if line != "" {
			lines = append(lines, line)
			line = ""
		}
	}
	for _, word := range strings.Fields(text) {
		for len(word) > width {
			flush()
			lines = append(lines, word[:width])
			word = word[width:]
		}
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) <= width:
			line += " " + word
		default:
			flush()
			line = word
		}
	}
	flush()

	if len(lines) == 0 {
		return []string{text}
	}
	return lines
}
