package main

import "github.com/charmbracelet/lipgloss"

const (
	rowSelectedTextFGColor = "#e0e0e0"
	rowSelectedBGColor     = "#3a3a3a"
	tabActiveBGColor       = "#ff9f1c"
	tabActiveFGColor       = "#000000"
	tabFGColor             = "#a0a0a0"
)

var (
	// Styles
	appstyle = lipgloss.NewStyle().Margin(0, 1)

	rowSelectedStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(rowSelectedBGColor)).
				Foreground(lipgloss.Color(rowSelectedTextFGColor))

	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color(tabFGColor))
	tabActiveStyle = lipgloss.NewStyle().Padding(0, 1).
			Background(lipgloss.Color(tabActiveBGColor)).
			Foreground(lipgloss.Color(tabActiveFGColor))
	tabScratchMarker = "*"

	bodyStyle = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))

	gutterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)
