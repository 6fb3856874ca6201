package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-snippets/clipboard"
	"github.com/andareed/siftly-snippets/dialogs"
	"github.com/andareed/siftly-snippets/logging"
)

func (m *model) copyDocument(doc *document) tea.Cmd {
	if err := clipboard.Copy(doc.Text()); err != nil {
		logging.Warnf("copyDocument: %v", err)
		return m.startNotice("Copy failed: "+err.Error(), "error", noticeDuration)
	}
	return m.startNotice(fmt.Sprintf("Copied %s", doc.name), "success", noticeDuration)
}

func (m *model) openSaveDialog(doc *document) tea.Cmd {
	dir, err := os.Getwd()
	if err != nil {
		dir = ""
	}
	m.saveTarget = doc.id
	d := dialogs.NewSaveDialog(doc.name, dir)
	m.activeDialog = d
	return d.Init()
}

func (m *model) handleSaveConfirmed(msg dialogs.SaveConfirmedMsg) tea.Cmd {
	m.activeDialog = nil
	doc := m.ws.byID(m.saveTarget)
	if doc == nil {
		return m.startNotice("Nothing to save", "warn", noticeDuration)
	}
	if err := os.WriteFile(msg.Path, []byte(doc.Text()), 0o600); err != nil {
		logging.Errorf("save %s: %v", msg.Path, err)
		return m.startNotice("Save failed: "+err.Error(), "error", noticeDuration)
	}
	logging.Infof("saved doc %d to %s", doc.id, msg.Path)
	return m.startNotice("Saved to "+msg.Path, "success", noticeDuration)
}
