package snippets

// DocID identifies a host document. The list view refers to the document
// it was opened from by id only.
type DocID int

// NoDoc is the zero DocID; hosts start numbering at 1.
const NoDoc DocID = 0

type registryEntry struct {
	state    *ListState
	previous DocID
}

// Registry is the side-table holding navigation state for every open list
// document. Entries are removed with Detach when the document closes.
type Registry struct {
	entries map[DocID]registryEntry
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[DocID]registryEntry)}
}

// Attach records state for doc, replacing any earlier rendering, and
// remembers previous as the document to return focus to.
func (r *Registry) Attach(doc DocID, state *ListState, previous DocID) {
	r.entries[doc] = registryEntry{state: state, previous: previous}
}

// Lookup returns the navigation state of doc.
func (r *Registry) Lookup(doc DocID) (*ListState, bool) {
	entry, ok := r.entries[doc]
	if !ok {
		return nil, false
	}
	return entry.state, true
}

// Previous returns the document doc was opened from.
func (r *Registry) Previous(doc DocID) (DocID, bool) {
	entry, ok := r.entries[doc]
	if !ok || entry.previous == NoDoc {
		return NoDoc, false
	}
	return entry.previous, true
}

// Detach drops everything held for doc.
func (r *Registry) Detach(doc DocID) {
	delete(r.entries, doc)
}

// Len is the number of attached documents.
func (r *Registry) Len() int {
	return len(r.entries)
}
