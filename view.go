package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/siftly-snippets/logging"
)

// tabBarView renders one tab per open document, the focused one highlighted.
func (m *model) tabBarView(width int) string {
	var tabs []string
	active := m.ws.Active()
	for _, doc := range m.ws.docs {
		label := doc.name
		if doc.scratch {
			label += tabScratchMarker
		}
		if doc == active {
			tabs = append(tabs, tabActiveStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	return lipgloss.NewStyle().MaxWidth(width).Render(bar)
}

// renderBody draws the visible lines of doc with a line-number gutter and
// the cursor line highlighted.
func (m *model) renderBody(doc *document, width int) string {
	plain, styled := doc.visibleLines()
	digits := len(fmt.Sprintf("%d", len(doc.lines)))
	textW := max(1, width-digits-1)
	clip := lipgloss.NewStyle().MaxWidth(textW)

	var b strings.Builder
	for i := range plain {
		line := doc.offset + i
		b.WriteString(gutterStyle.Render(fmt.Sprintf("%*d ", digits, line+1)))
		if line == doc.cursor {
			b.WriteString(rowSelectedStyle.Width(textW).MaxWidth(textW).Render(plain[i]))
		} else {
			b.WriteString(clip.Render(styled[i]))
		}
		if i < len(plain)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m *model) footerView(width int) string {
	st := footerState{
		Mode:   "VIEW",
		Legend: "(ctrl+g snippets · f1 help · ctrl+q quit)",
	}
	if doc := m.ws.Active(); doc != nil {
		st.FileName = doc.name
		st.Row = doc.cursor + 1
		st.TotalRows = len(doc.lines)
		if doc.isList() {
			st.Mode = "LIST"
		}
	}
	if m.ui.busy > 0 {
		st.Mode = "LOADING"
	}
	if m.ui.noticeMsg != "" {
		st.StatusMessage = noticeText(m.ui.noticeMsg, m.ui.noticeType)
	}

	if logging.IsDebugMode() {
		debug := fmt.Sprintf(" dbg term=%dx%d vp=%dx%d docs=%d lists=%d busy=%d",
			m.terminalWidth, m.terminalHeight, m.viewport.Width, m.viewport.Height,
			len(m.ws.docs), m.registry.Len(), m.ui.busy,
		)
		st.Legend = st.Legend + " |" + debug
	}

	return renderFooter(width, st, defaultFooterStyles())
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		w, h := m.terminalWidth, m.terminalHeight
		return lipgloss.Place(
			w, h,
			lipgloss.Center, lipgloss.Center,
			m.activeDialog.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceBackground(lipgloss.Color("236")),
		)
	}

	body := ""
	if doc := m.ws.Active(); doc != nil {
		body = m.renderBody(doc, m.viewport.Width)
	}
	m.viewport.SetContent(body)

	bordered := bodyStyle.Render(m.viewport.View())
	contentW := lipgloss.Width(bordered)

	parts := []string{m.tabBarView(contentW), bordered, m.footerView(contentW)}
	return appstyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
