package dialogs

import tea "github.com/charmbracelet/bubbletea"

// Dialog is a modal drawn over the workspace. While one is visible it gets
// every key.
type Dialog interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Dialog, tea.Cmd)
	View() string
	IsVisible() bool
}
