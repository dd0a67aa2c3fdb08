// Package deck wires the entry store and the search trie together behind
// the services.DeckAccessor contract. The Deck is the single owner of
// both: UI code only sends intent ("add this", "delete that", "search for
// this") and receives entry snapshots back.
package deck

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/katorin/kotoba-cards/index"
	apperrors "github.com/katorin/kotoba-cards/internal/errors"
	"github.com/katorin/kotoba-cards/model"
	"github.com/katorin/kotoba-cards/services"
	"github.com/katorin/kotoba-cards/store"
)

// Deck owns the entry store and the trie built from it. Every mutation
// rebuilds the trie from scratch before returning, so a query never sees a
// store/index mismatch. Full rebuild is a deliberate tradeoff: the entry
// set is a hand-curated vocabulary list, small enough that rebuild cost
// never matters.
type Deck struct {
	mu    sync.RWMutex
	store *store.EntryStore
	trie  *index.Trie
}

var _ services.DeckAccessor = (*Deck)(nil)

// New creates a Deck seeded with the given entries. Every seed entry is
// assigned a fresh ID at load time; IDs are never stable across runs since
// nothing is persisted. Entries with an unset category default to Other.
func New(seed []model.Entry) *Deck {
	s := store.New(nil)
	for _, e := range seed {
		e.ID = uuid.NewString()
		if !e.Category.Valid() {
			e.Category = model.CategoryOther
		}
		s.Add(e)
	}
	d := &Deck{store: s}
	d.trie = index.Build(s.List())
	return d
}

// AddEntry validates the fields, assigns a fresh ID, appends the entry and
// rebuilds the index. On a validation error the store is left untouched.
func (d *Deck) AddEntry(phonetic, logographic, definition string, category model.Category) (model.Entry, error) {
	if strings.TrimSpace(phonetic) == "" {
		return model.Entry{}, apperrors.NewValidationError("phonetic", "cannot be empty")
	}
	if strings.TrimSpace(definition) == "" {
		return model.Entry{}, apperrors.NewValidationError("definition", "cannot be empty")
	}
	if !category.Valid() {
		category = model.CategoryOther
	}

	e := model.Entry{
		ID:          uuid.NewString(),
		Phonetic:    strings.TrimSpace(phonetic),
		Logographic: strings.TrimSpace(logographic),
		Definition:  strings.TrimSpace(definition),
		Category:    category,
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.store.Add(e)
	d.trie = index.Build(d.store.List())
	return e, nil
}

// DeleteEntry removes the entry with the given ID and rebuilds the index.
// A missing ID is a no-op: the UI cannot reference an ID it was never
// shown, so there is nothing to report.
func (d *Deck) DeleteEntry(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.store.Remove(id) {
		d.trie = index.Build(d.store.List())
	}
}

// ListEntries returns the full collection in insertion order.
func (d *Deck) ListEntries() []model.Entry {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.store.List()
}

// GetEntry returns the entry with the given ID.
func (d *Deck) GetEntry(id string) (model.Entry, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	e, ok := d.store.Get(id)
	if !ok {
		return model.Entry{}, apperrors.NewEntryNotFoundError(id)
	}
	return e, nil
}

// SearchEntries returns the entries whose searchable text contains query
// as a substring, preserving the store's insertion order. The empty query
// is short-circuited to the full collection rather than delegated to the
// trie, though the trie's root would answer the same way.
func (d *Deck) SearchEntries(query string) []model.Entry {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if query == "" {
		return d.store.List()
	}
	ids := d.trie.Search(query)
	entries := d.store.List()
	out := make([]model.Entry, 0, len(ids))
	for _, e := range entries {
		if _, ok := ids[e.ID]; ok {
			out = append(out, e)
		}
	}
	return out
}
