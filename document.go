package main

import (
	"strings"

	"github.com/andareed/siftly-snippets/logging"
	"github.com/andareed/siftly-snippets/snippets"
)

// revealContext is how many lines Reveal keeps visible around the target.
const revealContext = 2

const untitledName = "untitled"

// document is one tab of the workspace: a named buffer with a cursor line
// and a scroll offset.
type document struct {
	id      snippets.DocID
	name    string
	scratch bool
	lines   []string
	cursor  int
	offset  int
	height  int // lines available to the body, set by the workspace

	highlighted []string // cached syntax-highlighted lines
	dirty       bool
}

func newDocument(id snippets.DocID, height int) *document {
	return &document{id: id, name: untitledName, lines: []string{""}, height: height, dirty: true}
}

func (d *document) ID() snippets.DocID { return d.id }

func (d *document) SetName(name string) {
	d.name = name
	d.dirty = true
}

func (d *document) SetScratch(scratch bool) { d.scratch = scratch }

func (d *document) ReplaceAll(text string) {
	d.lines = strings.Split(text, "\n")
	d.dirty = true
	d.cursor = clamp(d.cursor, 0, len(d.lines)-1)
	d.offset = clamp(d.offset, 0, len(d.lines)-1)
}

func (d *document) SetCursor(line int) {
	d.cursor = clamp(line, 0, len(d.lines)-1)
}

// Reveal scrolls just enough to show line with revealContext lines around
// it, like an editor's "show surrounds".
func (d *document) Reveal(line int) {
	if d.height <= 0 {
		return
	}
	ctx := min(revealContext, (d.height-1)/2)
	if line-ctx < d.offset {
		d.offset = line - ctx
	}
	if line+ctx >= d.offset+d.height {
		d.offset = line + ctx - d.height + 1
	}
	d.offset = clamp(d.offset, 0, max(0, len(d.lines)-1))
}

// scrollBy moves the view without moving the cursor.
func (d *document) scrollBy(n int) {
	d.offset = clamp(d.offset+n, 0, max(0, len(d.lines)-1))
}

func (d *document) moveCursor(delta int) {
	d.SetCursor(d.cursor + delta)
	d.Reveal(d.cursor)
}

func (d *document) Text() string {
	return strings.Join(d.lines, "\n")
}

func (d *document) isList() bool {
	return d.name == snippets.ListViewName
}

// visibleLines returns the plain and highlighted lines in view.
func (d *document) visibleLines() (plain, styled []string) {
	if d.dirty {
		d.highlighted = highlightLines(d.name, d.lines)
		d.dirty = false
	}
	end := min(len(d.lines), d.offset+d.height)
	if d.offset >= end {
		return nil, nil
	}
	return d.lines[d.offset:end], d.highlighted[d.offset:end]
}

// workspace is the ordered set of open documents with one focused.
type workspace struct {
	docs   []*document
	active int
	nextID snippets.DocID
	height int

	// onDeactivate runs after focus leaves a document that is still open.
	onDeactivate func(doc *document)
}

func newWorkspace() *workspace {
	return &workspace{active: -1, nextID: 1}
}

// NewDocument implements snippets.Workspace. The new document takes focus.
func (w *workspace) NewDocument() snippets.Document {
	return w.newDocument()
}

func (w *workspace) newDocument() *document {
	doc := newDocument(w.nextID, w.height)
	w.nextID++
	w.docs = append(w.docs, doc)
	logging.Debugf("workspace: new doc %d", doc.id)
	w.activate(len(w.docs) - 1)
	return doc
}

func (w *workspace) Active() *document {
	if w.active < 0 || w.active >= len(w.docs) {
		return nil
	}
	return w.docs[w.active]
}

func (w *workspace) byID(id snippets.DocID) *document {
	if i := w.indexOf(id); i >= 0 {
		return w.docs[i]
	}
	return nil
}

func (w *workspace) indexOf(id snippets.DocID) int {
	for i, doc := range w.docs {
		if doc.id == id {
			return i
		}
	}
	return -1
}

// Focus activates the document with id. Returns false if it is not open.
func (w *workspace) Focus(id snippets.DocID) bool {
	i := w.indexOf(id)
	if i < 0 {
		return false
	}
	w.activate(i)
	return true
}

// cycle moves focus to the next (or previous) tab, wrapping around.
func (w *workspace) cycle(forward bool) {
	if len(w.docs) < 2 {
		return
	}
	step := 1
	if !forward {
		step = len(w.docs) - 1
	}
	w.activate((w.active + step) % len(w.docs))
}

func (w *workspace) activate(i int) {
	previous := w.Active()
	w.active = i
	if previous != nil && previous != w.Active() && w.onDeactivate != nil {
		w.onDeactivate(previous)
	}
}

// Close removes the document with id. When it was focused, focus moves to
// the tab on its left.
func (w *workspace) Close(id snippets.DocID) {
	i := w.indexOf(id)
	if i < 0 {
		return
	}
	focused := i == w.active
	w.docs = append(w.docs[:i], w.docs[i+1:]...)
	logging.Debugf("workspace: closed doc %d", id)

	switch {
	case len(w.docs) == 0:
		w.active = -1
	case focused:
		w.active = max(0, i-1)
	case i < w.active:
		w.active--
	}
}

func (w *workspace) setHeight(height int) {
	w.height = height
	for _, doc := range w.docs {
		doc.height = height
		doc.Reveal(doc.cursor)
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
