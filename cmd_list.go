package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-snippets/logging"
	"github.com/andareed/siftly-snippets/snippets"
)

type listLoadedMsg struct {
	docID    snippets.DocID
	previous snippets.DocID
	listing  snippets.Listing
	err      error
}

// toggleList closes the focused list view, or opens a fresh one.
func (m *model) toggleList() tea.Cmd {
	if doc := m.ws.Active(); doc != nil && doc.isList() {
		m.closeList(doc)
		return nil
	}
	return m.openList()
}

// openList creates the list document and starts loading the index. The
// document the list was opened from is kept so toggling returns to it.
func (m *model) openList() tea.Cmd {
	previous := snippets.NoDoc
	if doc := m.ws.Active(); doc != nil {
		previous = doc.id
	}

	doc := m.ws.newDocument()
	doc.SetScratch(true)
	doc.SetName(snippets.ListViewName)
	doc.ReplaceAll("Loading snippets…")
	logging.Debugf("openList: doc %d, previous %d", doc.id, previous)

	m.ui.busy++
	lister, ctx, id := m.lister, m.ctx, doc.id
	return func() tea.Msg {
		listing, err := lister.Load(ctx)
		return listLoadedMsg{docID: id, previous: previous, listing: listing, err: err}
	}
}

func (m *model) handleListLoaded(msg listLoadedMsg) tea.Cmd {
	m.ui.busy = max(0, m.ui.busy-1)
	doc := m.ws.byID(msg.docID)
	if doc == nil {
		logging.Debugf("handleListLoaded: doc %d already closed", msg.docID)
		return nil
	}

	result, err := m.lister.Apply(doc, msg.listing, msg.err)
	m.registry.Attach(doc.id, result.State, msg.previous)

	switch {
	case err != nil:
		return m.startNotice("Could not list snippets", "error", noticeDuration)
	case len(result.Warnings) > 0:
		return m.startNotice(strings.Join(result.Warnings, " "), "warn", noticeDuration)
	}
	return m.startNotice(fmt.Sprintf("%d snippets", result.State.Len()), "info", noticeDuration)
}

// closeList returns focus to the document the list was opened from. The
// list itself is closed by the deactivation hook.
func (m *model) closeList(doc *document) {
	previous, ok := m.registry.Previous(doc.id)
	if ok && m.ws.Focus(previous) {
		return
	}
	m.closeDocument(doc)
}
