package main

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-snippets/dialogs"
	"github.com/andareed/siftly-snippets/logging"
	"github.com/andareed/siftly-snippets/snippets"
)

// Space taken by the tab bar, body border, footer and app margin.
const (
	chromeHeight = 1 + 2 + 2
	chromeWidth  = 2 + 2
)

type model struct {
	ctx      context.Context
	ws       *workspace
	registry *snippets.Registry
	lister   *snippets.Lister
	opener   *snippets.Opener

	ui             uiState
	viewport       viewport.Model
	activeDialog   dialogs.Dialog
	saveTarget     snippets.DocID
	terminalWidth  int
	terminalHeight int
	ready          bool
	openOnStart    bool
}

type modelParams struct {
	ctx         context.Context
	fetcher     snippets.Fetcher
	settings    snippets.SettingsSource
	openOnStart bool
}

func newModel(p modelParams) *model {
	ctx := p.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	ws := newWorkspace()
	m := &model{
		ctx:         ctx,
		ws:          ws,
		registry:    snippets.NewRegistry(),
		lister:      snippets.NewLister(p.fetcher, p.settings),
		opener:      snippets.NewOpener(ws, p.fetcher, p.settings),
		viewport:    viewport.New(0, 0),
		openOnStart: p.openOnStart,
	}
	ws.onDeactivate = m.handleDeactivated
	ws.newDocument()
	return m
}

func (m *model) Init() tea.Cmd {
	logging.Infof("siftly-snippets: Initialised")
	if m.openOnStart {
		return m.openList()
	}
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.WindowSizeMsg:
		m.terminalWidth = msg.Width
		m.terminalHeight = msg.Height
		m.viewport.Width = max(1, msg.Width-chromeWidth)
		m.viewport.Height = m.bodyHeight()
		m.ws.setHeight(m.bodyHeight())
		m.ready = true
		return m, nil
	case listLoadedMsg:
		return m, m.handleListLoaded(msg)
	case snippetLoadedMsg:
		return m, m.handleSnippetLoaded(msg)
	case clearNoticeMsg:
		m.clearNotice(msg.id)
		return m, nil
	case dialogs.SaveConfirmedMsg:
		return m, m.handleSaveConfirmed(msg)
	case dialogs.SaveCanceledMsg:
		m.activeDialog = nil
		return m, nil
	}
	return m, nil
}

func (m *model) bodyHeight() int {
	return max(1, m.terminalHeight-chromeHeight)
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		d, cmd := m.activeDialog.Update(msg)
		m.activeDialog = d
		if !d.IsVisible() {
			m.activeDialog = nil
		}
		return m, cmd
	}

	if key.Matches(msg, Keys.Quit) {
		return m, tea.Quit
	}

	// A fetch is blocking the workspace: stay responsive to quit only.
	if m.ui.busy > 0 {
		logging.Debugf("updateKey: busy, dropping %q", msg.String())
		return m, nil
	}

	switch {
	case key.Matches(msg, Keys.ToggleList):
		return m, m.toggleList()
	case key.Matches(msg, Keys.OpenHelp):
		m.openHelp()
		return m, nil
	}

	doc := m.ws.Active()
	if doc == nil {
		return m, nil
	}
	if doc.isList() {
		return m.handleListKey(doc, msg)
	}
	return m.handleDocumentKey(doc, msg)
}

func (m *model) handleDocumentKey(doc *document, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.QuitView):
		return m, tea.Quit
	case key.Matches(msg, Keys.HelpView):
		m.openHelp()
		return m, nil
	case key.Matches(msg, Keys.CopyDoc):
		return m, m.copyDocument(doc)
	case key.Matches(msg, Keys.SaveDoc):
		return m, m.openSaveDialog(doc)
	case key.Matches(msg, Keys.CloseDoc):
		m.closeDocument(doc)
		return m, nil
	}
	return m, m.applyIntent(doc, intentForKey(msg))
}

// handleListKey routes every key through the navigation state machine.
func (m *model) handleListKey(doc *document, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	intent := intentForKey(msg)
	state, _ := m.registry.Lookup(doc.id)
	ctx := snippets.NavContext{
		CursorLine:     doc.cursor,
		ContentHeight:  len(doc.lines),
		ViewportHeight: doc.height,
	}

	outcome := snippets.InterceptIntent(intent, ctx, state)
	switch outcome.Kind {
	case snippets.OutcomeMove:
		doc.SetCursor(outcome.Line)
		if outcome.Reveal {
			doc.Reveal(outcome.Line)
		}
		if outcome.ExtraScroll > 0 {
			doc.scrollBy(outcome.ExtraScroll)
		}
		return m, nil
	case snippets.OutcomeOpen:
		return m, m.openSnippet(outcome.ID, outcome.FileName)
	case snippets.OutcomePassthrough:
		return m, m.applyIntent(doc, intent)
	}
	return m, nil
}

// applyIntent is the plain editor behaviour for an intent.
func (m *model) applyIntent(doc *document, intent snippets.Intent) tea.Cmd {
	step := 1
	if !intent.Forward {
		step = -1
	}
	switch intent.Kind {
	case snippets.IntentMove:
		if intent.By == snippets.ByLines {
			doc.moveCursor(step)
		}
	case snippets.IntentSetMotion:
		switch intent.By {
		case snippets.ByLines:
			doc.moveCursor(step)
		case snippets.ByPages:
			doc.moveCursor(step * max(1, doc.height-1))
		}
	case snippets.IntentSwitchToTab:
		m.ws.cycle(intent.Forward)
	case snippets.IntentShowContents:
		return m.startNotice(documentSummary(doc), "info", noticeDuration)
	case snippets.IntentInsert:
		return m.startNotice("Snippets are read-only", "warn", noticeDuration)
	}
	return nil
}

// handleDeactivated closes the list view as soon as it loses focus.
func (m *model) handleDeactivated(doc *document) {
	if !doc.isList() {
		return
	}
	logging.Debugf("list doc %d deactivated, closing", doc.id)
	m.registry.Detach(doc.id)
	m.ws.Close(doc.id)
}

func (m *model) closeDocument(doc *document) {
	m.registry.Detach(doc.id)
	m.ws.Close(doc.id)
	if m.ws.Active() == nil {
		m.ws.newDocument()
	}
}

func (m *model) openHelp() {
	m.activeDialog = dialogs.NewHelpDialog(Keys.Legend())
}
