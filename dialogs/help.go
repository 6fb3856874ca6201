package dialogs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-snippets/logging"
)

// Help lists key bindings until dismissed.
type Help struct {
	visible  bool
	bindings []key.Binding
}

func (d Help) Init() tea.Cmd { return nil }

// NewHelpDialog creates a visible help dialog showing bindings.
func NewHelpDialog(bindings []key.Binding) *Help {
	return &Help{
		visible:  true,
		bindings: bindings,
	}
}

func (d *Help) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter", "esc", "q", "?", "f1":
			logging.Debugf("HelpDialog: closed with %q", m.String())
			d.visible = false
		}
	}
	return d, nil
}

func (d Help) View() string {
	if !d.visible {
		return ""
	}
	return frame(d.lines(), "enter/esc to return")
}

func (d Help) lines() string {
	lines := make([]string, 0, len(d.bindings))
	for _, b := range d.bindings {
		h := b.Help()
		lines = append(lines, fmt.Sprintf("%-12s %s", h.Key, h.Desc))
	}
	return strings.Join(lines, "\n")
}

func (d Help) IsVisible() bool { return d.visible }
