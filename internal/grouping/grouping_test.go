package grouping

import (
	"testing"

	"github.com/katorin/kotoba-cards/model"
)

func TestByCategory_DisplayOrder(t *testing.T) {
	entries := []model.Entry{
		{ID: "1", Phonetic: "ゆっくり", Definition: "slowly", Category: model.CategoryAdverb},
		{ID: "2", Phonetic: "ねこ", Definition: "cat", Category: model.CategoryNoun},
		{ID: "3", Phonetic: "たべる", Definition: "to eat", Category: model.CategoryVerb},
	}

	groups := ByCategory(entries)
	want := []model.Category{model.CategoryNoun, model.CategoryVerb, model.CategoryAdverb}
	if len(groups) != len(want) {
		t.Fatalf("ByCategory returned %d groups, want %d", len(groups), len(want))
	}
	for i, c := range want {
		if groups[i].Category != c {
			t.Errorf("groups[%d].Category = %q, want %q", i, groups[i].Category, c)
		}
	}
}

func TestByCategory_PreservesRelativeOrder(t *testing.T) {
	entries := []model.Entry{
		{ID: "1", Phonetic: "たべる", Definition: "to eat", Category: model.CategoryVerb},
		{ID: "2", Phonetic: "ねこ", Definition: "cat", Category: model.CategoryNoun},
		{ID: "3", Phonetic: "のむ", Definition: "to drink", Category: model.CategoryVerb},
	}

	groups := ByCategory(entries)
	for _, g := range groups {
		if g.Category != model.CategoryVerb {
			continue
		}
		if len(g.Entries) != 2 || g.Entries[0].ID != "1" || g.Entries[1].ID != "3" {
			t.Errorf("verb group order = %v, want [1 3]", g.Entries)
		}
	}
}

func TestByCategory_OmitsEmptyCategories(t *testing.T) {
	entries := []model.Entry{
		{ID: "1", Phonetic: "ねこ", Definition: "cat", Category: model.CategoryNoun},
	}

	groups := ByCategory(entries)
	if len(groups) != 1 {
		t.Fatalf("ByCategory returned %d groups, want 1", len(groups))
	}
	if groups[0].Category != model.CategoryNoun {
		t.Errorf("groups[0].Category = %q, want noun", groups[0].Category)
	}
}

func TestByCategory_Empty(t *testing.T) {
	if groups := ByCategory(nil); len(groups) != 0 {
		t.Errorf("ByCategory(nil) = %v, want empty", groups)
	}
}

func TestByCategory_UnknownCategoryBucketedAsOther(t *testing.T) {
	entries := []model.Entry{
		{ID: "1", Phonetic: "えっ", Definition: "huh", Category: model.Category("interjection")},
	}

	groups := ByCategory(entries)
	if len(groups) != 1 || groups[0].Category != model.CategoryOther {
		t.Errorf("unknown category not bucketed as Other: %v", groups)
	}
}
