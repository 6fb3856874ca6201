package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-snippets/snippets"
)

func TestIntentForKey(t *testing.T) {
	cases := []struct {
		msg  tea.KeyMsg
		want snippets.Intent
	}{
		{keyRunes("j"), snippets.Intent{Kind: snippets.IntentMove, By: snippets.ByLines, Forward: true}},
		{tea.KeyMsg{Type: tea.KeyUp}, snippets.Intent{Kind: snippets.IntentMove, By: snippets.ByLines}},
		{keyRunes("l"), snippets.Intent{Kind: snippets.IntentMove, By: snippets.ByCharacters, Forward: true}},
		{tea.KeyMsg{Type: tea.KeyCtrlN}, snippets.Intent{Kind: snippets.IntentSetMotion, Linewise: true, By: snippets.ByLines, Forward: true}},
		{tea.KeyMsg{Type: tea.KeyPgUp}, snippets.Intent{Kind: snippets.IntentSetMotion, Linewise: true, By: snippets.ByPages}},
		{keyRunes("w"), snippets.Intent{Kind: snippets.IntentSetMotion, By: snippets.ByWords, Forward: true}},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, snippets.Intent{Kind: snippets.IntentSwitchToTab}},
		{tea.KeyMsg{Type: tea.KeyEsc}, snippets.Intent{Kind: snippets.IntentExitInsertMode}},
		{tea.KeyMsg{Type: tea.KeyCtrlO}, snippets.Intent{Kind: snippets.IntentShowContents}},
		{tea.KeyMsg{Type: tea.KeyEnter}, snippets.Intent{Kind: snippets.IntentInsert}},
		{keyRunes("z"), snippets.Intent{Kind: snippets.IntentInsert}},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z"), Alt: true}, snippets.Intent{Kind: snippets.IntentOther, Name: "alt+z"}},
		{tea.KeyMsg{Type: tea.KeyF5}, snippets.Intent{Kind: snippets.IntentOther, Name: "f5"}},
	}
	for _, tc := range cases {
		if got := intentForKey(tc.msg); got != tc.want {
			t.Errorf("intentForKey(%s) = %+v, want %+v", tc.msg, got, tc.want)
		}
	}
}
