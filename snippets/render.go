package snippets

import (
	"strings"

	"github.com/andareed/siftly-snippets/gitlab"
)

// ListViewName is the reserved display name of the list document. The
// host uses it to decide whether intents go through InterceptIntent.
const ListViewName = "GitLab Snippets"

const listTitle = "# " + ListViewName

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// FormatEntry renders one list row. Line breaks in server fields become
// spaces so every entry stays on exactly one line.
func FormatEntry(entry gitlab.Snippet) string {
	return lineBreaks.Replace("[" + entry.Visibility + "] " + entry.Title + " - " + entry.FileName)
}

// RenderList builds the list document text and its navigation table in one
// pass. The text has len(entries)+2 lines joined by "\n" with no trailing
// newline.
func RenderList(entries []gitlab.Snippet) (string, *ListState) {
	state := newListState(len(entries))

	var b strings.Builder
	b.WriteString(listTitle)
	b.WriteString("\n")

	line := FirstDataLine
	for _, entry := range entries {
		b.WriteString("\n")
		b.WriteString(FormatEntry(entry))
		state.add(entry, line)
		line++
	}

	return b.String(), state
}
