// internal/view/table.go
package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/NathanMoore4472/modscan-tool/internal/decode"
	"github.com/NathanMoore4472/modscan-tool/internal/export"
)

// RenderTable renders a decoded snapshot as an aligned text table.
// Column content is shared with the CSV export so the two surfaces
// can never drift apart.
func RenderTable(rows []decode.Row, expandBits bool, s Styles) string {
	lines := [][]string{export.Header}
	kinds := []byte{'h'} // h header, r register, b bit sub-row, e error

	for _, row := range rows {
		kind := byte('r')
		if row.Err != nil {
			kind = 'e'
		}
		lines = append(lines, export.RegisterFields(row))
		kinds = append(kinds, kind)

		if !expandBits || row.Err != nil || row.IsBit {
			continue
		}
		for _, bit := range row.Bits {
			lines = append(lines, export.BitFields(row, bit))
			kinds = append(kinds, 'b')
		}
	}

	// Column widths over every line.
	widths := make([]int, len(export.Header))
	for _, line := range lines {
		for i, cell := range line {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	for li, line := range lines {
		var cells []string
		for i, cell := range line {
			cells = append(cells, pad(cell, widths[i]))
		}
		text := strings.Join(cells, "  ")

		switch kinds[li] {
		case 'h':
			b.WriteString(s.Header.Render(text))
		case 'e':
			b.WriteString(s.Error.Render(text))
		case 'b':
			b.WriteString(s.BitRow.Render(text))
		default:
			b.WriteString(s.Cell.Render(text))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func pad(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
