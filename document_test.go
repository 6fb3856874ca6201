package main

import (
	"strings"
	"testing"
)

func docWithLines(n, height int) *document {
	doc := newDocument(1, height)
	lines := make([]string, n)
	for i := range lines {
		lines[i] = "line"
	}
	doc.ReplaceAll(strings.Join(lines, "\n"))
	return doc
}

func TestRevealKeepsContext(t *testing.T) {
	doc := docWithLines(50, 10)

	doc.SetCursor(20)
	doc.Reveal(20)
	if doc.offset != 20+revealContext-10+1 {
		t.Fatalf("offset = %d", doc.offset)
	}

	doc.SetCursor(3)
	doc.Reveal(3)
	if doc.offset != 3-revealContext {
		t.Fatalf("offset = %d after moving up", doc.offset)
	}

	doc.Reveal(0)
	if doc.offset != 0 {
		t.Fatalf("offset = %d at top", doc.offset)
	}
}

func TestSetCursorClamps(t *testing.T) {
	doc := docWithLines(3, 10)
	doc.SetCursor(99)
	if doc.cursor != 2 {
		t.Fatalf("cursor = %d", doc.cursor)
	}
	doc.SetCursor(-1)
	if doc.cursor != 0 {
		t.Fatalf("cursor = %d", doc.cursor)
	}
}

func TestScrollByMovesViewOnly(t *testing.T) {
	doc := docWithLines(30, 10)
	doc.SetCursor(5)
	doc.scrollBy(3)
	if doc.offset != 3 || doc.cursor != 5 {
		t.Fatalf("offset=%d cursor=%d", doc.offset, doc.cursor)
	}
	doc.scrollBy(100)
	if doc.offset != 29 {
		t.Fatalf("offset = %d, want clamp to last line", doc.offset)
	}
}

func TestWorkspaceCloseMovesFocusLeft(t *testing.T) {
	ws := newWorkspace()
	a := ws.newDocument()
	b := ws.newDocument()
	c := ws.newDocument()

	ws.Focus(b.id)
	ws.Close(b.id)
	if ws.Active() != a {
		t.Fatalf("active = %v, want %v", ws.Active().id, a.id)
	}
	ws.Close(a.id)
	if ws.Active() != c {
		t.Fatalf("active = %v, want %v", ws.Active().id, c.id)
	}
	ws.Close(c.id)
	if ws.Active() != nil {
		t.Fatal("empty workspace should have no active doc")
	}
}

func TestWorkspaceDeactivateHook(t *testing.T) {
	ws := newWorkspace()
	var left []*document
	ws.onDeactivate = func(doc *document) { left = append(left, doc) }

	a := ws.newDocument()
	b := ws.newDocument()
	ws.cycle(true)

	if len(left) != 2 || left[0] != a || left[1] != b {
		t.Fatalf("deactivated = %v", left)
	}
	if ws.Focus(99) {
		t.Fatal("Focus on unknown id should fail")
	}
}
