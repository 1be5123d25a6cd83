package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/fdieguez/sgp/internal/tabular"
)

const (
	maxCellWidth = 28
	maxBarWidth  = 30
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))  // Cyan
	keyStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))            // Gray
	valueStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))            // Yellow
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true) // Pink
	barStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))             // Blue

	// Summary line style
	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			MarginTop(1)
)

// RenderViewTable renders the current page of a derived view as a
// fixed-width table. Column widths are computed per page, capped so a
// single verbose cell cannot blow up the layout.
func RenderViewTable(v tabular.View) string {
	if v.Empty {
		return keyStyle.Render("No data in snapshot")
	}
	if len(v.PageRows) == 0 {
		return keyStyle.Render("No rows match the current filters")
	}

	// First pass: column widths over headers and the visible page
	widths := make([]int, len(v.Headers))
	for i, h := range v.Headers {
		widths[i] = cellWidth(h)
	}
	for _, row := range v.PageRows {
		for i := range v.Headers {
			var text string
			if i < len(row) {
				text = row[i].String()
			}
			if w := cellWidth(text); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder

	// Header row
	headerCells := make([]string, len(v.Headers))
	for i, h := range v.Headers {
		headerCells[i] = headerStyle.Render(padCell(h, widths[i]))
	}
	b.WriteString(strings.Join(headerCells, "  "))
	b.WriteString("\n")

	// Separator
	sepCells := make([]string, len(v.Headers))
	for i := range v.Headers {
		sepCells[i] = keyStyle.Render(strings.Repeat("─", widths[i]))
	}
	b.WriteString(strings.Join(sepCells, "  "))
	b.WriteString("\n")

	// Data rows
	for _, row := range v.PageRows {
		cells := make([]string, len(v.Headers))
		for i := range v.Headers {
			var text string
			if i < len(row) {
				text = row[i].String()
			}
			cells[i] = padCell(text, widths[i])
		}
		b.WriteString(strings.Join(cells, "  "))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderBarChart renders the categorical distribution as horizontal
// bars scaled to the largest bucket.
func RenderBarChart(v tabular.View) string {
	if len(v.Chart) == 0 {
		return ""
	}

	title := "Distribution"
	if v.ChartColumn >= 0 && v.ChartColumn < len(v.Headers) {
		title = fmt.Sprintf("Distribution by %s", v.Headers[v.ChartColumn])
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")

	maxCount := v.Chart[0].Count
	labelWidth := 0
	for _, d := range v.Chart {
		if d.Count > maxCount {
			maxCount = d.Count
		}
		if w := cellWidth(d.Label); w > labelWidth {
			labelWidth = w
		}
	}

	for _, d := range v.Chart {
		barLen := 0
		if maxCount > 0 {
			barLen = d.Count * maxBarWidth / maxCount
		}
		if barLen == 0 && d.Count > 0 {
			barLen = 1
		}

		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			padCell(d.Label, labelWidth),
			barStyle.Render(strings.Repeat("█", barLen)),
			keyStyle.Render(fmt.Sprintf("%d (%d%%)", d.Count, d.Percent)),
		))
	}

	return b.String()
}

// RenderViewSummary renders the pagination and filter summary line.
func RenderViewSummary(v tabular.View) string {
	summary := fmt.Sprintf("Page %s/%s  •  %s of %s rows",
		highlightStyle.Render(fmt.Sprintf("%d", v.Page)),
		fmt.Sprintf("%d", v.TotalPages),
		highlightStyle.Render(fmt.Sprintf("%d", v.FilteredCount)),
		fmt.Sprintf("%d", v.TotalCount),
	)
	return summaryStyle.Render(summary)
}

// padCell truncates and right-pads a cell to the target display width.
func padCell(s string, width int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "…")
	}
	return runewidth.FillRight(s, width)
}

// cellWidth is the display width of a cell, capped at maxCellWidth.
func cellWidth(s string) int {
	w := runewidth.StringWidth(strings.ReplaceAll(s, "\n", " "))
	if w > maxCellWidth {
		return maxCellWidth
	}
	return w
}
