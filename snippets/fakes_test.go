package snippets

import (
	"context"
	"fmt"

	"github.com/andareed/siftly-snippets/gitlab"
)

type fakeDoc struct {
	id       DocID
	name     string
	scratch  bool
	text     string
	cursor   int
	revealed int
}

func (d *fakeDoc) ID() DocID               { return d.id }
func (d *fakeDoc) SetName(name string)     { d.name = name }
func (d *fakeDoc) SetScratch(scratch bool) { d.scratch = scratch }
func (d *fakeDoc) ReplaceAll(text string)  { d.text = text }
func (d *fakeDoc) SetCursor(line int)      { d.cursor = line }
func (d *fakeDoc) Reveal(line int)         { d.revealed = line }

type fakeWorkspace struct {
	docs []*fakeDoc
}

func (w *fakeWorkspace) NewDocument() Document {
	doc := &fakeDoc{id: DocID(len(w.docs) + 1), cursor: -1, revealed: -1}
	w.docs = append(w.docs, doc)
	return doc
}

// countingFetcher records calls so tests can prove nothing was sent.
type countingFetcher struct {
	entries    []gitlab.Snippet
	raw        map[gitlab.SnippetID]string
	err        error
	listCalls  int
	rawCalls   int
	lastConfig gitlab.Settings
}

func (f *countingFetcher) ListSnippets(ctx context.Context, settings gitlab.Settings) ([]gitlab.Snippet, error) {
	f.listCalls++
	f.lastConfig = settings
	if f.err != nil {
		return nil, f.err
	}
	return f.entries, nil
}

func (f *countingFetcher) FetchRaw(ctx context.Context, settings gitlab.Settings, id gitlab.SnippetID) (string, error) {
	f.rawCalls++
	f.lastConfig = settings
	if f.err != nil {
		return "", f.err
	}
	content, ok := f.raw[id]
	if !ok {
		return "", &gitlab.FetchError{Op: "fetch raw snippet", StatusCode: 404, Err: fmt.Errorf("not found")}
	}
	return content, nil
}

func sampleEntries(n int) []gitlab.Snippet {
	entries := make([]gitlab.Snippet, n)
	for i := range entries {
		entries[i] = gitlab.Snippet{
			ID:         gitlab.SnippetID(fmt.Sprint(100 + i)),
			Title:      fmt.Sprintf("Snippet %d", i),
			FileName:   fmt.Sprintf("file%d.go", i),
			Visibility: "internal",
		}
	}
	return entries
}
