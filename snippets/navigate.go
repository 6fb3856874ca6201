package snippets

import (
	"fmt"

	"github.com/andareed/siftly-snippets/gitlab"
	"github.com/andareed/siftly-snippets/logging"
)

// IntentKind enumerates the generic editor intents the list view reacts to.
type IntentKind int

const (
	IntentOther IntentKind = iota
	IntentMove
	IntentSetMotion
	IntentInsert
	IntentSwitchToTab
	IntentExitInsertMode
	IntentShowContents
)

func (k IntentKind) String() string {
	switch k {
	case IntentMove:
		return "move"
	case IntentSetMotion:
		return "set_motion"
	case IntentInsert:
		return "insert"
	case IntentSwitchToTab:
		return "switch_to_tab"
	case IntentExitInsertMode:
		return "exit_insert_mode"
	case IntentShowContents:
		return "show_contents"
	default:
		return "other"
	}
}

// MoveUnit is the granularity of a move or motion.
type MoveUnit int

const (
	ByLines MoveUnit = iota
	ByCharacters
	ByWords
	ByPages
)

// Intent is one editor command as the host would dispatch it.
type Intent struct {
	Kind    IntentKind
	By      MoveUnit
	Forward bool

	// Linewise only applies to IntentSetMotion.
	Linewise bool

	// Name identifies IntentOther commands in logs.
	Name string
}

func (i Intent) String() string {
	if i.Kind == IntentOther && i.Name != "" {
		return i.Name
	}
	return i.Kind.String()
}

// NavContext is what the state machine needs to know about the view.
type NavContext struct {
	CursorLine     int
	ContentHeight  int
	ViewportHeight int
}

// OutcomeKind tags an Outcome.
type OutcomeKind int

const (
	OutcomeSwallow OutcomeKind = iota
	OutcomePassthrough
	OutcomeMove
	OutcomeOpen
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomePassthrough:
		return "passthrough"
	case OutcomeMove:
		return "move"
	case OutcomeOpen:
		return "open"
	default:
		return "swallow"
	}
}

// Outcome is the result of intercepting an intent. Only the fields for
// Kind are meaningful.
type Outcome struct {
	Kind OutcomeKind

	// OutcomeMove: the target line, whether to reveal surrounding lines,
	// and extra lines to scroll down after revealing.
	Line        int
	Reveal      bool
	ExtraScroll int

	// OutcomeOpen
	ID       gitlab.SnippetID
	FileName string
}

func (o Outcome) String() string {
	switch o.Kind {
	case OutcomeMove:
		return fmt.Sprintf("move(line=%d, extra=%d)", o.Line, o.ExtraScroll)
	case OutcomeOpen:
		return fmt.Sprintf("open(id=%s, file=%s)", o.ID, o.FileName)
	default:
		return o.Kind.String()
	}
}

// PreFirstLine is where a forward move past the last row lands.
const PreFirstLine = 0

// ExtraScrollLines is how far the view scrolls past the reveal point when
// the last row is reached, so it is not left on the bottom edge.
const ExtraScrollLines = 3

// InterceptIntent translates an intent aimed at the list view into an
// outcome. It never mutates state.
func InterceptIntent(intent Intent, ctx NavContext, state *ListState) Outcome {
	var outcome Outcome
	switch intent.Kind {
	case IntentMove:
		if intent.By == ByLines {
			outcome = moveRow(intent.Forward, ctx, state)
		} else {
			outcome = openUnderCursor(ctx, state)
		}
	case IntentSetMotion:
		switch {
		case intent.Linewise && intent.By == ByLines:
			outcome = moveRow(intent.Forward, ctx, state)
		case intent.Linewise:
			outcome = Outcome{Kind: OutcomeSwallow}
		default:
			outcome = openUnderCursor(ctx, state)
		}
	case IntentInsert:
		outcome = openUnderCursor(ctx, state)
	case IntentSwitchToTab, IntentExitInsertMode, IntentShowContents:
		outcome = Outcome{Kind: OutcomePassthrough}
	default:
		outcome = Outcome{Kind: OutcomeSwallow}
	}
	logging.Debugf("InterceptIntent: %s at line %d -> %s", intent, ctx.CursorLine, outcome)
	return outcome
}

func moveRow(forward bool, ctx NavContext, state *ListState) Outcome {
	n := state.Len()
	if n == 0 {
		return Outcome{Kind: OutcomeSwallow}
	}

	current, ok := state.RowAt(ctx.CursorLine)
	if !ok {
		// Only the header lines can be unmapped. A move from there re-enters
		// the list at either end on purpose rather than doing nothing.
		if ctx.CursorLine >= FirstDataLine {
			return Outcome{Kind: OutcomeSwallow}
		}
		if forward {
			return moveTo(state, 0)
		}
		return moveTo(state, n-1)
	}

	order := current.Order
	if forward {
		if order+1 > n-1 {
			return Outcome{Kind: OutcomeMove, Line: PreFirstLine, Reveal: true}
		}
		outcome := moveTo(state, order+1)
		if order+1 == n-1 && ctx.ContentHeight > ctx.ViewportHeight {
			outcome.ExtraScroll = ExtraScrollLines
		}
		return outcome
	}
	if order-1 < 0 {
		return moveTo(state, n-1)
	}
	return moveTo(state, order-1)
}

func moveTo(state *ListState, order int) Outcome {
	row, ok := state.RowByOrder(order)
	if !ok {
		return Outcome{Kind: OutcomeSwallow}
	}
	return Outcome{Kind: OutcomeMove, Line: row.Line, Reveal: true}
}

func openUnderCursor(ctx NavContext, state *ListState) Outcome {
	row, ok := state.RowAt(ctx.CursorLine)
	if !ok {
		return Outcome{Kind: OutcomeSwallow}
	}
	return Outcome{Kind: OutcomeOpen, ID: row.Entry.ID, FileName: row.Entry.FileName}
}
