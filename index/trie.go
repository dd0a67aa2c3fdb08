// Package index implements the substring search index: a character trie
// built over every suffix of every searchable field of every entry.
package index

import (
	"github.com/katorin/kotoba-cards/internal/normalizer"
	"github.com/katorin/kotoba-cards/model"
)

// node is a single trie node. The path from the root to a node spells a
// normalized text fragment; matches holds the IDs of every entry with a
// searchable field containing that fragment as a substring.
type node struct {
	children map[rune]*node
	matches  map[string]struct{}
}

func newNode() *node {
	return &node{
		children: make(map[rune]*node),
		matches:  make(map[string]struct{}),
	}
}

// Trie answers "which entry IDs have a field containing substring Q" in
// time proportional to len(Q) plus the result size. It is immutable after
// Build; the entry set changing means building a fresh Trie.
type Trie struct {
	root *node
}

// Build constructs a fresh trie from the full entry collection. For each
// entry, every suffix of every normalized searchable field is inserted,
// tagging the entry's ID on every node along the way — this indexes all
// substrings, not just prefixes, so "べる" matches inside "たべる".
//
// Building is idempotent: the same entries always yield a trie with
// identical query behavior. An entry with no searchable text contributes
// nothing.
func Build(entries []model.Entry) *Trie {
	t := &Trie{root: newNode()}
	for _, e := range entries {
		for _, field := range e.SearchableText() {
			t.indexText(e.ID, normalizer.Normalize(field))
		}
	}
	return t
}

func (t *Trie) indexText(id, text string) {
	runes := []rune(text)
	for i := range runes {
		t.insertSuffix(id, runes[i:])
	}
}

func (t *Trie) insertSuffix(id string, suffix []rune) {
	cur := t.root
	cur.matches[id] = struct{}{}
	for _, r := range suffix {
		child, ok := cur.children[r]
		if !ok {
			child = newNode()
			cur.children[r] = child
		}
		child.matches[id] = struct{}{}
		cur = child
	}
}

// Search returns the set of entry IDs whose searchable text contains the
// normalized query as a substring. A character with no matching child ends
// the walk with an empty set. The empty query lands on the root, whose
// match set is the union of all indexed entry IDs; callers that want
// "no filter" semantics should short-circuit before calling Search.
//
// The returned set carries no ordering; callers re-sort by cross-
// referencing the entry store's order.
func (t *Trie) Search(query string) map[string]struct{} {
	cur := t.root
	for _, r := range []rune(normalizer.Normalize(query)) {
		child, ok := cur.children[r]
		if !ok {
			return map[string]struct{}{}
		}
		cur = child
	}
	out := make(map[string]struct{}, len(cur.matches))
	for id := range cur.matches {
		out[id] = struct{}{}
	}
	return out
}
