package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-snippets/gitlab"
	"github.com/andareed/siftly-snippets/logging"
	"github.com/andareed/siftly-snippets/snippets"
)

type snippetLoadedMsg struct {
	docID   snippets.DocID
	id      gitlab.SnippetID
	content string
	err     error
}

// openSnippet creates the snippet's document right away and fetches its
// content in the background. Focusing the new document closes the list.
func (m *model) openSnippet(id gitlab.SnippetID, fileName string) tea.Cmd {
	doc := m.opener.Begin(fileName)
	logging.Infof("openSnippet: %s as %q in doc %d", id, fileName, doc.ID())

	m.ui.busy++
	opener, ctx, docID := m.opener, m.ctx, doc.ID()
	return func() tea.Msg {
		content, err := opener.Fetch(ctx, id)
		return snippetLoadedMsg{docID: docID, id: id, content: content, err: err}
	}
}

func (m *model) handleSnippetLoaded(msg snippetLoadedMsg) tea.Cmd {
	m.ui.busy = max(0, m.ui.busy-1)
	doc := m.ws.byID(msg.docID)
	if doc == nil {
		return nil
	}
	if err := m.opener.Finish(doc, msg.content, msg.err); err != nil {
		if gitlab.IsConfigMissing(err) {
			return m.startNotice("GitLab token not defined", "error", noticeDuration)
		}
		return m.startNotice(fmt.Sprintf("Snippet %s: %v", msg.id, err), "error", noticeDuration)
	}
	doc.SetCursor(0)
	doc.Reveal(0)
	return m.startNotice(fmt.Sprintf("Opened %s", doc.name), "success", noticeDuration)
}

func documentSummary(doc *document) string {
	return fmt.Sprintf("%s: %d lines, at line %d", doc.name, len(doc.lines), doc.cursor+1)
}
