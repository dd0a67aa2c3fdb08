package store

import (
	"testing"

	"github.com/katorin/kotoba-cards/model"
)

func seedEntries() []model.Entry {
	return []model.Entry{
		{ID: "a", Phonetic: "たべる", Definition: "to eat"},
		{ID: "b", Phonetic: "ねこ", Definition: "cat"},
		{ID: "c", Phonetic: "でも", Definition: "but"},
	}
}

func TestList_PreservesInsertionOrder(t *testing.T) {
	s := New(seedEntries())
	s.Add(model.Entry{ID: "d", Phonetic: "のむ", Definition: "to drink"})

	got := s.List()
	wantOrder := []string{"a", "b", "c", "d"}
	if len(got) != len(wantOrder) {
		t.Fatalf("List() returned %d entries, want %d", len(got), len(wantOrder))
	}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("List()[%d].ID = %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestRemove(t *testing.T) {
	s := New(seedEntries())

	if !s.Remove("b") {
		t.Fatal("Remove(existing) = false, want true")
	}
	got := s.List()
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Errorf("after Remove(b): %v, want [a c]", got)
	}
}

func TestRemove_MissingIsNoOp(t *testing.T) {
	s := New(seedEntries())

	if s.Remove("nope") {
		t.Error("Remove(missing) = true, want false")
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d after removing missing id, want 3", s.Len())
	}
}

func TestGet(t *testing.T) {
	s := New(seedEntries())

	e, ok := s.Get("b")
	if !ok || e.Phonetic != "ねこ" {
		t.Errorf("Get(b) = %v, %v; want ねこ entry", e, ok)
	}
	if _, ok := s.Get("nope"); ok {
		t.Error("Get(missing) = ok, want !ok")
	}
}

func TestList_ReturnsCopy(t *testing.T) {
	s := New(seedEntries())

	got := s.List()
	got[0].Phonetic = "mutated"
	if fresh := s.List(); fresh[0].Phonetic != "たべる" {
		t.Error("mutating List() result changed the store")
	}
}

func TestAdd_AllowsDuplicateText(t *testing.T) {
	s := New(nil)
	s.Add(model.Entry{ID: "x1", Phonetic: "はし", Definition: "bridge"})
	s.Add(model.Entry{ID: "x2", Phonetic: "はし", Definition: "bridge"})

	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (identical text with distinct ids is permitted)", s.Len())
	}
}
