package store

import (
	"sync"

	"github.com/katorin/kotoba-cards/model"
)

// EntryStore holds the canonical ordered list of vocabulary entries.
// Order is insertion order: seed entries first in seed order, then added
// entries in add order; removals preserve the relative order of the rest.
type EntryStore struct {
	Mu      sync.RWMutex
	Entries []model.Entry
}

// New creates an EntryStore holding the given entries in order.
func New(entries []model.Entry) *EntryStore {
	s := &EntryStore{Entries: make([]model.Entry, 0, len(entries))}
	s.Entries = append(s.Entries, entries...)
	return s
}

// Add appends an entry to the end of the collection. Duplicate text fields
// are permitted; only IDs are assumed unique, and ID assignment is the
// caller's job.
func (s *EntryStore) Add(e model.Entry) {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	s.Entries = append(s.Entries, e)
}

// Remove filters out the entry with the given ID and reports whether an
// entry was removed. A missing ID is a no-op, not an error.
func (s *EntryStore) Remove(id string) bool {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	for i, e := range s.Entries {
		if e.ID == id {
			s.Entries = append(s.Entries[:i], s.Entries[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the entry with the given ID.
func (s *EntryStore) Get(id string) (model.Entry, bool) {
	s.Mu.RLock()
	defer s.Mu.RUnlock()
	for _, e := range s.Entries {
		if e.ID == id {
			return e, true
		}
	}
	return model.Entry{}, false
}

// List returns a copy of the full collection in insertion order.
func (s *EntryStore) List() []model.Entry {
	s.Mu.RLock()
	defer s.Mu.RUnlock()
	out := make([]model.Entry, len(s.Entries))
	copy(out, s.Entries)
	return out
}

// Len returns the number of entries.
func (s *EntryStore) Len() int {
	s.Mu.RLock()
	defer s.Mu.RUnlock()
	return len(s.Entries)
}
