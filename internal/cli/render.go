package cli

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/ccline/internal/theme"

	"github.com/charmbracelet/lipgloss"
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(t theme.Theme, title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Separator).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(lipgloss.NewStyle().Bold(true).Foreground(t.Model).Render(title))
}

// RenderTable renders a bordered table with headers and rows.
func RenderTable(t theme.Theme, tbl Table) string {
	if len(tbl.Rows) == 0 && len(tbl.Headers) == 0 {
		return ""
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(t.Model)
	dimStyle := lipgloss.NewStyle().Foreground(t.Separator)
	valueStyle := lipgloss.NewStyle()

	numCols := len(tbl.Headers)
	if numCols == 0 {
		numCols = len(tbl.Rows[0])
	}

	widths := make([]int, numCols)
	for i, h := range tbl.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range tbl.Rows {
		for i, cell := range row {
			if i < numCols && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	rule := func(left, mid, right string) string {
		var b strings.Builder
		b.WriteString(left)
		for i, w := range widths {
			b.WriteString(strings.Repeat("─", w+2))
			if i < numCols-1 {
				b.WriteString(mid)
			}
		}
		b.WriteString(right)
		return dimStyle.Render(b.String()) + "\n"
	}

	var b strings.Builder
	if tbl.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(tbl.Title))
		b.WriteString("\n")
	}

	b.WriteString(rule("╭", "┬", "╮"))

	if len(tbl.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range tbl.Headers {
			b.WriteString(headerStyle.Render(pad(h, widths[i], false)))
			b.WriteString(dimStyle.Render("│"))
		}
		b.WriteString("\n")
		b.WriteString(rule("├", "┼", "┤"))
	}

	for _, row := range tbl.Rows {
		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			// Right-align every column but the first.
			b.WriteString(valueStyle.Render(pad(cell, widths[i], i > 0)))
			b.WriteString(dimStyle.Render("│"))
		}
		b.WriteString("\n")
	}

	b.WriteString(rule("╰", "┴", "╯"))
	return b.String()
}

func pad(s string, width int, right bool) string {
	gap := width - lipgloss.Width(s)
	if gap < 0 {
		gap = 0
	}
	if right {
		return fmt.Sprintf(" %s%s ", strings.Repeat(" ", gap), s)
	}
	return fmt.Sprintf(" %s%s ", s, strings.Repeat(" ", gap))
}
