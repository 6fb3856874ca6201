package snippets

import (
	"context"
	"fmt"

	"github.com/andareed/siftly-snippets/gitlab"
	"github.com/andareed/siftly-snippets/logging"
)

// Opener materializes a snippet as a new named document.
type Opener struct {
	workspace Workspace
	fetcher   Fetcher
	settings  SettingsSource
}

func NewOpener(workspace Workspace, fetcher Fetcher, settings SettingsSource) *Opener {
	return &Opener{workspace: workspace, fetcher: fetcher, settings: settings}
}

// OpenSnippet creates a document named fileName holding the snippet's raw
// content. On failure the document is still returned, named and empty.
func (o *Opener) OpenSnippet(ctx context.Context, id gitlab.SnippetID, fileName string) (Document, error) {
	doc := o.Begin(fileName)
	content, err := o.Fetch(ctx, id)
	return doc, o.Finish(doc, content, err)
}

// Begin creates the named, still empty document.
func (o *Opener) Begin(fileName string) Document {
	doc := o.workspace.NewDocument()
	doc.SetName(fileName)
	return doc
}

// Fetch resolves settings and returns the snippet's raw content. It touches
// no document, so it may run off the UI goroutine.
func (o *Opener) Fetch(ctx context.Context, id gitlab.SnippetID) (string, error) {
	raw, err := o.settings.Settings()
	if err != nil {
		return "", fmt.Errorf("loading settings: %w", err)
	}
	content, err := o.fetcher.FetchRaw(ctx, raw, id)
	if err != nil {
		logging.Errorf("Opener: snippet %s: %v", id, err)
		return "", err
	}
	logging.Infof("Opener: snippet %s: fetched %d bytes", id, len(content))
	return content, nil
}

// Finish writes fetched content into doc. A fetch error leaves doc as it is
// and is returned unchanged.
func (o *Opener) Finish(doc Document, content string, fetchErr error) error {
	if fetchErr != nil {
		return fetchErr
	}
	doc.ReplaceAll(content)
	return nil
}
