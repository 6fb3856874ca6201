package snippets

import (
	"context"
	"errors"
	"fmt"

	"github.com/andareed/siftly-snippets/gitlab"
	"github.com/andareed/siftly-snippets/logging"
)

const (
	tokenMissingText = "[ERROR] GitLab token not defined."
	urlDefaultedText = "[WARN] GitLab URL not defined, defaulting to gitlab.com."
)

// Lister fills a list document from the snippet index.
type Lister struct {
	fetcher  Fetcher
	settings SettingsSource
}

func NewLister(fetcher Fetcher, settings SettingsSource) *Lister {
	return &Lister{fetcher: fetcher, settings: settings}
}

// Listing is a fetched snippet index plus any warnings about settings.
type Listing struct {
	Entries  []gitlab.Snippet
	Warnings []string
}

// PopulateResult is what Apply leaves behind.
type PopulateResult struct {
	State    *ListState
	Warnings []string
}

// Populate is Load followed by Apply.
func (l *Lister) Populate(ctx context.Context, doc Document) (PopulateResult, error) {
	listing, err := l.Load(ctx)
	return l.Apply(doc, listing, err)
}

// Load resolves settings and fetches the index. Settings are resolved on
// every call. Without a token nothing is fetched.
// Load touches no document, so it may run off the UI goroutine.
func (l *Lister) Load(ctx context.Context) (Listing, error) {
	var listing Listing
	raw, err := l.settings.Settings()
	if err != nil {
		return listing, fmt.Errorf("loading settings: %w", err)
	}
	settings, defaulted, err := raw.Resolve()
	if defaulted {
		logging.Warnf("Lister: gitlab_url not set, using %s", gitlab.DefaultBaseURL)
		listing.Warnings = append(listing.Warnings, urlDefaultedText)
	}
	if err != nil {
		logging.Warnf("Lister: %v", err)
		return listing, err
	}

	entries, err := l.fetcher.ListSnippets(ctx, settings)
	if err != nil {
		logging.Errorf("Lister: %v", err)
		return listing, err
	}
	listing.Entries = entries
	return listing, nil
}

// Apply writes the outcome of Load into doc. On error the document holds a
// single error line and no list; otherwise it holds the rendered list with
// the cursor on the first row.
func (l *Lister) Apply(doc Document, listing Listing, loadErr error) (PopulateResult, error) {
	doc.SetScratch(true)
	doc.SetName(ListViewName)

	result := PopulateResult{Warnings: listing.Warnings}
	if loadErr != nil {
		if errors.Is(loadErr, gitlab.ErrConfigMissing) {
			doc.ReplaceAll(tokenMissingText)
		} else {
			doc.ReplaceAll(fmt.Sprintf("[ERROR] %v", loadErr))
		}
		return result, loadErr
	}

	text, state := RenderList(listing.Entries)
	doc.ReplaceAll(text)
	doc.SetCursor(FirstDataLine)
	doc.Reveal(FirstDataLine)
	logging.Infof("Lister: rendered %d snippets into doc %d", state.Len(), doc.ID())

	result.State = state
	return result, nil
}
