package services

import "github.com/katorin/kotoba-cards/model"

// Group is one category bucket of a grouped entry collection, in the fixed
// category display order. Entries keep the store's relative order.
type Group struct {
	Category model.Category
	Entries  []model.Entry
}

// EntryFinder defines read operations over the deck.
type EntryFinder interface {
	// ListEntries returns the full collection in insertion order.
	ListEntries() []model.Entry
	// SearchEntries returns the subset of the collection whose searchable
	// text contains query as a substring, in insertion order. An empty
	// query means no filtering: the full collection is returned.
	SearchEntries(query string) []model.Entry
	// GetEntry returns the entry with the given ID, or an error satisfying
	// errors.Is(err, ErrEntryNotFound).
	GetEntry(id string) (model.Entry, error)
}

// DeckMutator defines operations that change the entry set. Every
// successful mutation rebuilds the search index before returning.
type DeckMutator interface {
	// AddEntry validates and appends a new entry, assigning it a fresh ID.
	// An empty phonetic or definition yields a validation error and leaves
	// the collection untouched.
	AddEntry(phonetic, logographic, definition string, category model.Category) (model.Entry, error)
	// DeleteEntry removes the entry with the given ID. A missing ID is a
	// no-op.
	DeleteEntry(id string)
}

// DeckAccessor combines read and mutation access to the deck. The UI layer
// holds one of these and nothing else.
type DeckAccessor interface {
	EntryFinder
	DeckMutator
}
