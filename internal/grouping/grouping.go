// Package grouping partitions entry collections into category buckets for
// display. It is a pure transform over whatever (possibly search-filtered)
// collection the caller passes in; nothing here is stored or indexed.
package grouping

import (
	"github.com/katorin/kotoba-cards/model"
	"github.com/katorin/kotoba-cards/services"
)

// ByCategory partitions entries into the six fixed categories in display
// order. Within a category the input's relative order is preserved;
// categories with no entries are omitted. Entries carrying an unknown
// category value are bucketed under Other.
func ByCategory(entries []model.Entry) []services.Group {
	buckets := make(map[model.Category][]model.Entry, len(model.CategoryOrder))
	for _, e := range entries {
		c := e.Category
		if !c.Valid() {
			c = model.CategoryOther
		}
		buckets[c] = append(buckets[c], e)
	}

	out := make([]services.Group, 0, len(model.CategoryOrder))
	for _, c := range model.CategoryOrder {
		if b := buckets[c]; len(b) > 0 {
			out = append(out, services.Group{Category: c, Entries: b})
		}
	}
	return out
}
