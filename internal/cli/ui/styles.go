package ui

import "github.com/charmbracelet/lipgloss"

// boxWidth keeps the result boxes aligned with the widest tables the
// commands print.
const boxWidth = 64

// Styles holds the shared lipgloss styles of the sgpctl output. Box
// borders follow the status palette used across the CLI: teal for
// success, red for failure.
var Styles = struct {
	Bold       lipgloss.Style
	SuccessBox lipgloss.Style
	ErrorBox   lipgloss.Style
}{
	Bold: lipgloss.NewStyle().Bold(true),

	SuccessBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("36")).
		Padding(0, 1).
		Width(boxWidth),

	ErrorBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("196")).
		Padding(0, 1).
		Width(boxWidth),
}
