package dialogs

import (
	"path/filepath"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-snippets/logging"
)

type (
	SaveConfirmedMsg struct{ Path string }
	SaveCanceledMsg  struct{}
)

// Save asks for the path to write the focused snippet to.
type Save struct {
	input   textinput.Model
	visible bool
	lastDir string
}

func (d Save) Init() tea.Cmd { return d.input.Focus() }

// NewSaveDialog proposes defaultName; relative bare names resolve against
// lastDir when it is set.
func NewSaveDialog(defaultName, lastDir string) *Save {
	ti := textinput.New()
	ti.Placeholder = defaultName
	ti.Prompt = "Save as: "
	ti.CharLimit = 256
	ti.Width = 50
	if defaultName != "" {
		ti.SetValue(defaultName)
	}
	ti.Focus()
	return &Save{input: ti, visible: true, lastDir: lastDir}
}

func (d *Save) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter":
			path := d.Path()
			if path == "" {
				return d, nil
			}
			logging.Debugf("SaveDialog: confirmed %s", path)
			d.visible = false
			return d, func() tea.Msg { return SaveConfirmedMsg{Path: path} }
		case "esc":
			logging.Debugf("SaveDialog: canceled")
			d.visible = false
			return d, func() tea.Msg { return SaveCanceledMsg{} }
		}
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

// Path is the path the dialog would confirm right now.
func (d Save) Path() string {
	val := d.input.Value()
	if val == "" {
		val = d.input.Placeholder
	}
	if val == "" {
		return ""
	}
	if d.lastDir != "" && !filepath.IsAbs(val) && filepath.Dir(val) == "." {
		return filepath.Join(d.lastDir, filepath.Base(val))
	}
	return val
}

func (d Save) View() string {
	if !d.visible {
		return ""
	}
	return frame(d.input.View(), "enter to save • esc to cancel")
}

func (d Save) IsVisible() bool { return d.visible }
