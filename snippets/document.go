package snippets

import (
	"context"

	"github.com/andareed/siftly-snippets/gitlab"
)

// Document is the slice of a host document the renderer and opener need.
type Document interface {
	ID() DocID
	SetName(name string)
	SetScratch(scratch bool)
	ReplaceAll(text string)
	SetCursor(line int)
	Reveal(line int)
}

// Workspace creates documents.
type Workspace interface {
	NewDocument() Document
}

// Fetcher is the remote side. *gitlab.Client implements it.
type Fetcher interface {
	ListSnippets(ctx context.Context, settings gitlab.Settings) ([]gitlab.Snippet, error)
	FetchRaw(ctx context.Context, settings gitlab.Settings, id gitlab.SnippetID) (string, error)
}

// SettingsSource yields the connection settings at call time.
type SettingsSource interface {
	Settings() (gitlab.Settings, error)
}

// SettingsFunc adapts a function to SettingsSource.
type SettingsFunc func() (gitlab.Settings, error)

func (f SettingsFunc) Settings() (gitlab.Settings, error) {
	return f()
}

// StaticSettings always yields the same settings.
func StaticSettings(settings gitlab.Settings) SettingsSource {
	return SettingsFunc(func() (gitlab.Settings, error) { return settings, nil })
}
