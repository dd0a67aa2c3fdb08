package model

import "strings"

// Category classifies an entry by part of speech.
type Category string

const (
	CategoryNoun        Category = "noun"
	CategoryVerb        Category = "verb"
	CategoryIAdjective  Category = "i-adjective"
	CategoryNaAdjective Category = "na-adjective"
	CategoryAdverb      Category = "adverb"
	CategoryOther       Category = "other"
)

// CategoryOrder is the fixed display order used when grouping entries.
var CategoryOrder = []Category{
	CategoryNoun,
	CategoryVerb,
	CategoryIAdjective,
	CategoryNaAdjective,
	CategoryAdverb,
	CategoryOther,
}

// ParseCategory maps free-form text (deck files, form input) to a Category.
// Unrecognized or empty values map to CategoryOther.
func ParseCategory(s string) Category {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "noun":
		return CategoryNoun
	case "verb":
		return CategoryVerb
	case "i-adjective", "i_adjective", "iadjective":
		return CategoryIAdjective
	case "na-adjective", "na_adjective", "naadjective":
		return CategoryNaAdjective
	case "adverb":
		return CategoryAdverb
	default:
		return CategoryOther
	}
}

// Valid reports whether c is one of the six known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryNoun, CategoryVerb, CategoryIAdjective, CategoryNaAdjective, CategoryAdverb, CategoryOther:
		return true
	}
	return false
}

// Label returns the human-readable display title for the category.
func (c Category) Label() string {
	switch c {
	case CategoryNoun:
		return "Noun"
	case CategoryVerb:
		return "Verb"
	case CategoryIAdjective:
		return "I-Adjective"
	case CategoryNaAdjective:
		return "Na-Adjective"
	case CategoryAdverb:
		return "Adverb"
	default:
		return "Other"
	}
}

// Entry is a single vocabulary record.
// The ID is assigned once at creation and never changes; seed entries get a
// fresh ID every run since nothing is persisted between sessions.
type Entry struct {
	ID          string
	Phonetic    string // kana form, required
	Logographic string // kanji form, optional
	Definition  string // required
	Category    Category
}

// SearchableText returns the entry's non-empty text fields in a fixed
// order: phonetic, logographic (if present), definition. These are the
// fields the search index covers.
func (e Entry) SearchableText() []string {
	fields := make([]string, 0, 3)
	for _, f := range []string{e.Phonetic, e.Logographic, e.Definition} {
		if strings.TrimSpace(f) != "" {
			fields = append(fields, f)
		}
	}
	return fields
}
