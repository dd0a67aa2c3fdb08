package deck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/katorin/kotoba-cards/internal/errors"
	"github.com/katorin/kotoba-cards/model"
)

func newTestDeck(t *testing.T) *Deck {
	t.Helper()
	return New([]model.Entry{
		{Phonetic: "たべる", Logographic: "食べる", Definition: "to eat", Category: model.CategoryVerb},
		{Phonetic: "さびしい", Logographic: "寂しい", Definition: "lonely", Category: model.CategoryIAdjective},
	})
}

func TestNew_AssignsFreshIDs(t *testing.T) {
	d := newTestDeck(t)

	entries := d.ListEntries()
	require.Len(t, entries, 2)
	assert.NotEmpty(t, entries[0].ID)
	assert.NotEmpty(t, entries[1].ID)
	assert.NotEqual(t, entries[0].ID, entries[1].ID)

	// A second deck from the same seed gets different IDs.
	other := newTestDeck(t)
	assert.NotEqual(t, entries[0].ID, other.ListEntries()[0].ID)
}

func TestSearchEntries_Scenario(t *testing.T) {
	d := newTestDeck(t)
	first := d.ListEntries()[0]

	// Definition substring finds only the first entry.
	got := d.SearchEntries("eat")
	require.Len(t, got, 1)
	assert.Equal(t, first.ID, got[0].ID)

	// Mid-field phonetic substring.
	got = d.SearchEntries("べる")
	require.Len(t, got, 1)
	assert.Equal(t, first.ID, got[0].ID)

	// A newly added entry is searchable immediately.
	added, err := d.AddEntry("ねむい", "", "sleepy", model.CategoryIAdjective)
	require.NoError(t, err)
	got = d.SearchEntries("sleepy")
	require.Len(t, got, 1)
	assert.Equal(t, added.ID, got[0].ID)

	// After deletion the index no longer matches the removed entry.
	d.DeleteEntry(first.ID)
	assert.Empty(t, d.SearchEntries("eat"))
}

func TestSearchEntries_EmptyQueryReturnsAll(t *testing.T) {
	d := newTestDeck(t)

	got := d.SearchEntries("")
	assert.Equal(t, d.ListEntries(), got)
}

func TestSearchEntries_PreservesStoreOrder(t *testing.T) {
	d := New(nil)
	for _, def := range []string{"one fish", "two fish", "red fish"} {
		_, err := d.AddEntry("さかな", "魚", def, model.CategoryNoun)
		require.NoError(t, err)
	}

	got := d.SearchEntries("fish")
	require.Len(t, got, 3)
	assert.Equal(t, "one fish", got[0].Definition)
	assert.Equal(t, "two fish", got[1].Definition)
	assert.Equal(t, "red fish", got[2].Definition)
}

func TestSearchEntries_CaseInsensitive(t *testing.T) {
	d := newTestDeck(t)

	assert.Equal(t, d.SearchEntries("eat"), d.SearchEntries("EAT"))
}

func TestAddEntry_Validation(t *testing.T) {
	d := newTestDeck(t)
	before := d.ListEntries()

	_, err := d.AddEntry("", "", "a definition", model.CategoryNoun)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))

	_, err = d.AddEntry("ねむい", "", "   ", model.CategoryIAdjective)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))

	// Failed adds leave the store untouched.
	assert.Equal(t, before, d.ListEntries())
}

func TestAddEntry_DefaultsCategory(t *testing.T) {
	d := New(nil)

	e, err := d.AddEntry("でも", "", "but", "")
	require.NoError(t, err)
	assert.Equal(t, model.CategoryOther, e.Category)
}

func TestAddEntry_AppendsInOrder(t *testing.T) {
	d := newTestDeck(t)

	added, err := d.AddEntry("ねこ", "猫", "cat", model.CategoryNoun)
	require.NoError(t, err)

	entries := d.ListEntries()
	require.Len(t, entries, 3)
	assert.Equal(t, added.ID, entries[2].ID)
}

func TestDeleteEntry_MissingIsNoOp(t *testing.T) {
	d := newTestDeck(t)

	d.DeleteEntry("no-such-id")
	assert.Len(t, d.ListEntries(), 2)
}

func TestDeleteEntry_PreservesRemainingOrder(t *testing.T) {
	d := New(nil)
	var mid model.Entry
	for i, p := range []string{"いち", "に", "さん"} {
		e, err := d.AddEntry(p, "", "number", model.CategoryNoun)
		require.NoError(t, err)
		if i == 1 {
			mid = e
		}
	}

	d.DeleteEntry(mid.ID)
	entries := d.ListEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "いち", entries[0].Phonetic)
	assert.Equal(t, "さん", entries[1].Phonetic)
}

func TestGetEntry(t *testing.T) {
	d := newTestDeck(t)
	first := d.ListEntries()[0]

	e, err := d.GetEntry(first.ID)
	require.NoError(t, err)
	assert.Equal(t, first, e)

	_, err = d.GetEntry("no-such-id")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrEntryNotFound))
}

func TestSeed_IsValid(t *testing.T) {
	for _, e := range Seed() {
		assert.NotEmpty(t, e.Phonetic)
		assert.NotEmpty(t, e.Definition)
		assert.True(t, e.Category.Valid())
		assert.Empty(t, e.ID, "seed entries must not carry stable IDs")
	}
}
