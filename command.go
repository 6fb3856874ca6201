package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-snippets/snippets"
)

// intentForKey translates a key press into the generic editor command an
// editor would dispatch for it. The list view reinterprets these; other
// documents get the plain editor behaviour in applyIntent.
func intentForKey(msg tea.KeyMsg) snippets.Intent {
	switch msg.String() {
	case "j", "down":
		return snippets.Intent{Kind: snippets.IntentMove, By: snippets.ByLines, Forward: true}
	case "k", "up":
		return snippets.Intent{Kind: snippets.IntentMove, By: snippets.ByLines, Forward: false}
	case "l", "right":
		return snippets.Intent{Kind: snippets.IntentMove, By: snippets.ByCharacters, Forward: true}
	case "h", "left":
		return snippets.Intent{Kind: snippets.IntentMove, By: snippets.ByCharacters, Forward: false}
	case "ctrl+n":
		return snippets.Intent{Kind: snippets.IntentSetMotion, Linewise: true, By: snippets.ByLines, Forward: true}
	case "ctrl+p":
		return snippets.Intent{Kind: snippets.IntentSetMotion, Linewise: true, By: snippets.ByLines, Forward: false}
	case "ctrl+d", "pgdown":
		return snippets.Intent{Kind: snippets.IntentSetMotion, Linewise: true, By: snippets.ByPages, Forward: true}
	case "ctrl+u", "pgup":
		return snippets.Intent{Kind: snippets.IntentSetMotion, Linewise: true, By: snippets.ByPages, Forward: false}
	case "w":
		return snippets.Intent{Kind: snippets.IntentSetMotion, By: snippets.ByWords, Forward: true}
	case "b":
		return snippets.Intent{Kind: snippets.IntentSetMotion, By: snippets.ByWords, Forward: false}
	case "tab":
		return snippets.Intent{Kind: snippets.IntentSwitchToTab, Forward: true}
	case "shift+tab":
		return snippets.Intent{Kind: snippets.IntentSwitchToTab, Forward: false}
	case "esc":
		return snippets.Intent{Kind: snippets.IntentExitInsertMode}
	case "ctrl+o":
		return snippets.Intent{Kind: snippets.IntentShowContents}
	case "enter", " ":
		return snippets.Intent{Kind: snippets.IntentInsert}
	}
	if msg.Type == tea.KeyRunes && !msg.Alt {
		return snippets.Intent{Kind: snippets.IntentInsert}
	}
	return snippets.Intent{Kind: snippets.IntentOther, Name: msg.String()}
}
