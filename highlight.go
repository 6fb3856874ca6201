package main

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/andareed/siftly-snippets/logging"
	"github.com/andareed/siftly-snippets/snippets"
)

const highlightStyle = "monokai"

// lexerFor picks a lexer from the document name; the list view is Markdown.
func lexerFor(name, text string) chroma.Lexer {
	var lexer chroma.Lexer
	if name == snippets.ListViewName {
		lexer = lexers.Get("markdown")
	} else {
		lexer = lexers.Match(name)
	}
	if lexer == nil {
		lexer = lexers.Analyse(text)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}

// highlightLines returns lines with terminal colour codes, one output line
// per input line. Anything that breaks that mapping falls back to plain
// text, since cursor positions are line numbers.
func highlightLines(name string, lines []string) []string {
	text := strings.Join(lines, "\n")
	lexer := lexerFor(name, text)
	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		logging.Debugf("highlight %s: %v", name, err)
		return lines
	}

	style := styles.Get(highlightStyle)
	formatter := formatters.TTY256
	tokenLines := chroma.SplitTokensIntoLines(iterator.Tokens())

	out := make([]string, 0, len(lines))
	var b strings.Builder
	for _, tokens := range tokenLines {
		b.Reset()
		if err := formatter.Format(&b, style, chroma.Literator(tokens...)); err != nil {
			return lines
		}
		out = append(out, strings.ReplaceAll(b.String(), "\n", ""))
	}
	// Lexers may drop or add a trailing empty line.
	for len(out) < len(lines) {
		out = append(out, lines[len(out)])
	}
	if len(out) > len(lines) {
		out = out[:len(lines)]
	}
	return out
}
