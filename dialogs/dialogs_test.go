package dialogs

import (
	"path/filepath"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	_ Dialog = (*Help)(nil)
	_ Dialog = (*Save)(nil)
)

func TestHelpClosesOnEsc(t *testing.T) {
	d := NewHelpDialog([]key.Binding{key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy"))})
	if !d.IsVisible() || d.View() == "" {
		t.Fatal("new help dialog should be visible")
	}
	next, _ := d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if next.IsVisible() {
		t.Fatal("esc should close the help dialog")
	}
}

func TestSaveConfirmsPathInLastDir(t *testing.T) {
	dir := t.TempDir()
	d := NewSaveDialog("a.md", dir)
	next, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should confirm")
	}
	msg, ok := cmd().(SaveConfirmedMsg)
	if !ok || msg.Path != filepath.Join(dir, "a.md") {
		t.Fatalf("msg = %#v", msg)
	}
	if next.IsVisible() {
		t.Fatal("dialog should hide after confirming")
	}
}

func TestSaveCancel(t *testing.T) {
	d := NewSaveDialog("a.md", "")
	_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if _, ok := cmd().(SaveCanceledMsg); !ok {
		t.Fatal("esc should cancel")
	}
}
