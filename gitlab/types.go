package gitlab

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// SnippetID is an opaque snippet identifier. GitLab sends numeric ids,
// but the client never does arithmetic on them.
type SnippetID string

// UnmarshalJSON accepts both JSON numbers and JSON strings.
func (id *SnippetID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) || len(data) == 0 {
		return fmt.Errorf("snippet id is null")
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = SnippetID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("snippet id: %w", err)
	}
	*id = SnippetID(n.String())
	return nil
}

func (id SnippetID) String() string {
	return string(id)
}

// Snippet is one element of the snippet index.
type Snippet struct {
	ID         SnippetID
	Title      string
	FileName   string
	Visibility string
}

// wireSnippet mirrors the JSON object. Pointer fields tell an absent key
// apart from an empty value.
type wireSnippet struct {
	ID         *SnippetID `json:"id"`
	Title      *string    `json:"title"`
	FileName   *string    `json:"file_name"`
	Visibility *string    `json:"visibility"`
}

// decodeSnippets parses the index response. A missing required field in
// any element fails the whole decode.
func decodeSnippets(body []byte) ([]Snippet, error) {
	var wire []wireSnippet
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("decoding snippet list: %w", err)
	}

	snippets := make([]Snippet, 0, len(wire))
	for i, w := range wire {
		var missing []string
		if w.ID == nil {
			missing = append(missing, "id")
		}
		if w.Title == nil {
			missing = append(missing, "title")
		}
		if w.FileName == nil {
			missing = append(missing, "file_name")
		}
		if w.Visibility == nil {
			missing = append(missing, "visibility")
		}
		if len(missing) > 0 {
			return nil, fmt.Errorf("snippet %d: missing required field(s) %s", i, strings.Join(missing, ", "))
		}
		snippets = append(snippets, Snippet{
			ID:         *w.ID,
			Title:      *w.Title,
			FileName:   *w.FileName,
			Visibility: *w.Visibility,
		})
	}
	return snippets, nil
}
