package snippets

import (
	"fmt"

	"github.com/andareed/siftly-snippets/gitlab"
)

// FirstDataLine is the line of the first snippet row; lines 0 and 1 hold
// the title and a blank separator.
const FirstDataLine = 2

// Row ties one snippet to the document line it is drawn on and to its
// position in server order. Line is the exact line the cursor lands on.
type Row struct {
	Line  int
	Order int
	Entry gitlab.Snippet
}

// OrderRef is one element of the ordered navigation sequence.
type OrderRef struct {
	ID   gitlab.SnippetID
	Line int
}

// ListState is the navigation table of one rendered list document.
type ListState struct {
	rows  map[int]Row
	order []OrderRef
}

func newListState(capacity int) *ListState {
	return &ListState{
		rows:  make(map[int]Row, capacity),
		order: make([]OrderRef, 0, capacity),
	}
}

func (s *ListState) add(entry gitlab.Snippet, line int) {
	row := Row{Line: line, Order: len(s.order), Entry: entry}
	s.rows[line] = row
	s.order = append(s.order, OrderRef{ID: entry.ID, Line: line})
}

// RowAt returns the row drawn on line.
func (s *ListState) RowAt(line int) (Row, bool) {
	if s == nil {
		return Row{}, false
	}
	row, ok := s.rows[line]
	return row, ok
}

// RowByOrder returns the row at position order in server order.
func (s *ListState) RowByOrder(order int) (Row, bool) {
	if s == nil || order < 0 || order >= len(s.order) {
		return Row{}, false
	}
	return s.RowAt(s.order[order].Line)
}

// Len is the number of snippet rows.
func (s *ListState) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Order returns a copy of the ordered (id, line) sequence.
func (s *ListState) Order() []OrderRef {
	if s == nil {
		return nil
	}
	return append([]OrderRef(nil), s.order...)
}

// Validate checks that every ordered line has a row and that order
// indexes run 0..N-1 without gaps or duplicates.
func (s *ListState) Validate() error {
	if s == nil {
		return fmt.Errorf("nil list state")
	}
	if len(s.rows) != len(s.order) {
		return fmt.Errorf("%d rows but %d ordered entries", len(s.rows), len(s.order))
	}
	for i, ref := range s.order {
		row, ok := s.rows[ref.Line]
		if !ok {
			return fmt.Errorf("order %d points at line %d which has no row", i, ref.Line)
		}
		if row.Order != i {
			return fmt.Errorf("row on line %d has order %d, want %d", ref.Line, row.Order, i)
		}
		if row.Entry.ID != ref.ID {
			return fmt.Errorf("row on line %d has id %s, want %s", ref.Line, row.Entry.ID, ref.ID)
		}
		if ref.Line < FirstDataLine {
			return fmt.Errorf("order %d is on header line %d", i, ref.Line)
		}
	}
	return nil
}
