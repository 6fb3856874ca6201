package dialogs

import "github.com/charmbracelet/lipgloss"

const boxWidth = 60

// frame draws content in the rounded box shared by all dialogs, with a
// faint hint line underneath.
func frame(content, hint string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("252")).
		BorderBackground(lipgloss.Color("236")).
		Padding(1, 2).
		Width(boxWidth)

	hintLine := lipgloss.NewStyle().Faint(true).Render(hint)
	return box.Render(content + "\n\n" + hintLine)
}
