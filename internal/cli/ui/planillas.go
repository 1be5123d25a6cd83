package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/fatih/color"

	"github.com/fdieguez/sgp/internal/cli/types"
	"github.com/fdieguez/sgp/internal/tabular"
)

var configStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true) // Cyan

// RenderConfigTree renders the configured planillas as a tree
func RenderConfigTree(configs []types.ConfigItem) string {
	if len(configs) == 0 {
		return keyStyle.Render("No planillas configured")
	}

	var output string
	for i, cfg := range configs {
		name := cfg.DisplayName
		if name == "" {
			name = cfg.SheetName
		}
		label := fmt.Sprintf("%s %s",
			configStyle.Render(name),
			keyStyle.Render(fmt.Sprintf("(id %d)", cfg.ID)),
		)

		node := tree.New().Root(label)
		node.Child(formatKeyValue("Spreadsheet:", cfg.SpreadsheetID))
		node.Child(formatKeyValue("Sheet:", cfg.SheetName))
		node.Child(formatKeyValue("Status:", getColoredStatus(cfg.Status)))

		lastSync := "never"
		if cfg.LastSync != nil {
			lastSync = *cfg.LastSync
		}
		node.Child(formatKeyValue("Last sync:", lastSync))

		output += node.String()
		if i < len(configs)-1 {
			output += "\n"
		}
	}

	return output
}

// RenderConfigSummary renders the trailing count line for the config list
func RenderConfigSummary(count int) string {
	label := "planillas"
	if count == 1 {
		label = "planilla"
	}
	summary := fmt.Sprintf("Total: %s %s",
		highlightStyle.Render(fmt.Sprintf("%d", count)),
		keyStyle.Render(label),
	)
	return summaryStyle.Render(summary)
}

// RenderSyncResult renders the outcome of one synchronization run
func RenderSyncResult(res *types.SyncResult) string {
	return fmt.Sprintf(`Config ID:   %d
Rows:        %d
Imported:    %s
Skipped:     %d
Duplicates:  %d
Synced at:   %s`,
		res.ConfigID,
		res.RowCount,
		color.GreenString("%d", res.Imported),
		res.Skipped,
		res.Duplicates,
		res.SyncedAt,
	)
}

// RenderSolicitudTable renders case records as a fixed-width table
func RenderSolicitudTable(items []types.Solicitud) string {
	if len(items) == 0 {
		return keyStyle.Render("No solicitudes found")
	}

	headers := []string{"ID", "Description", "Status", "Origin", "Person", "Entry", "Amount"}
	rows := make([][]string, 0, len(items))
	for _, s := range items {
		entry := ""
		if s.EntryDate != nil {
			entry = *s.EntryDate
		}
		amount := ""
		if s.Amount != nil {
			amount = fmt.Sprintf("%.2f", *s.Amount)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", s.ID),
			s.Description,
			s.Status,
			s.Origin,
			s.PersonName,
			entry,
			amount,
		})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = cellWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := cellWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	headerCells := make([]string, len(headers))
	for i, h := range headers {
		headerCells[i] = headerStyle.Render(padCell(h, widths[i]))
	}
	b.WriteString(strings.Join(headerCells, "  "))
	b.WriteString("\n")

	sepCells := make([]string, len(headers))
	for i := range headers {
		sepCells[i] = keyStyle.Render(strings.Repeat("─", widths[i]))
	}
	b.WriteString(strings.Join(sepCells, "  "))
	b.WriteString("\n")

	for r, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			text := padCell(cell, widths[i])
			if i == 2 {
				text = colorizeStatusCell(items[r].Status, text)
			}
			cells[i] = text
		}
		b.WriteString(strings.Join(cells, "  "))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderSolicitudSummary renders the trailing count line for the record list
func RenderSolicitudSummary(count int) string {
	label := "solicitudes"
	if count == 1 {
		label = "solicitud"
	}
	summary := fmt.Sprintf("Total: %s %s",
		highlightStyle.Render(fmt.Sprintf("%d", count)),
		keyStyle.Render(label),
	)
	return summaryStyle.Render(summary)
}

// RenderAggregation renders a titled frequency distribution as bars
func RenderAggregation(title string, data []tabular.ChartDatum) string {
	if len(data) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")

	maxCount := data[0].Count
	labelWidth := 0
	for _, d := range data {
		if d.Count > maxCount {
			maxCount = d.Count
		}
		if w := cellWidth(d.Label); w > labelWidth {
			labelWidth = w
		}
	}

	for _, d := range data {
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

// RenderStats renders the dashboard counters
func RenderStats(stats *types.DashboardStats) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Dashboard"))
	b.WriteString("\n")
	b.WriteString(formatKeyValue("  Orders total:", fmt.Sprintf("%d", stats.TotalOrders)))
	b.WriteString("\n")
	b.WriteString(formatKeyValue("  Orders pending:", color.YellowString("%d", stats.PendingOrders)))
	b.WriteString("\n")
	b.WriteString(formatKeyValue("  Orders completed:", color.GreenString("%d", stats.CompletedOrders)))
	b.WriteString("\n")
	b.WriteString(formatKeyValue("  Subsidies:", fmt.Sprintf("%d", stats.TotalSubsidies)))
	b.WriteString("\n")
	b.WriteString(formatKeyValue("  Subsidy amount:", fmt.Sprintf("%.2f", stats.SubsidyAmount)))

	if len(stats.OrdersByOrigin) > 0 {
		type originCount struct {
			origin string
			count  int
		}
		origins := make([]originCount, 0, len(stats.OrdersByOrigin))
		for origin, count := range stats.OrdersByOrigin {
			origins = append(origins, originCount{origin, count})
		}
		sort.Slice(origins, func(i, j int) bool {
			if origins[i].count != origins[j].count {
				return origins[i].count > origins[j].count
			}
			return origins[i].origin < origins[j].origin
		})

		b.WriteString("\n\n")
		b.WriteString(headerStyle.Render("Orders by origin"))
		b.WriteString("\n")
		for _, oc := range origins {
			b.WriteString(fmt.Sprintf("  %s %s\n",
				padCell(oc.origin, 20),
				valueStyle.Render(fmt.Sprintf("%d", oc.count)),
			))
		}
	}

	return b.String()
}

// formatKeyValue formats a key-value pair
func formatKeyValue(key, value string) string {
	return fmt.Sprintf("%s %s",
		keyStyle.Render(key),
		value,
	)
}

// getColoredStatus returns a colored sync status string
func getColoredStatus(status string) string {
	switch {
	case status == "SUCCESS":
		return color.GreenString(status)
	case status == "PENDING":
		return color.YellowString(status)
	case strings.HasPrefix(status, "ERROR"):
		return color.RedString(status)
	default:
		return status
	}
}

// colorizeStatusCell colors a padded status cell without breaking its width
func colorizeStatusCell(status, padded string) string {
	switch status {
	case "COMPLETED":
		return color.GreenString(padded)
	case "PENDING", "IN_PROGRESS":
		return color.YellowString(padded)
	case "REJECTED":
		return color.RedString(padded)
	default:
		return padded
	}
}
