// Package deckfile reads TOML deck files: an optional replacement for the
// built-in seed list. Deck files are read once at startup and never
// written back; nothing mutated during a session is persisted.
package deckfile

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	apperrors "github.com/katorin/kotoba-cards/internal/errors"
	"github.com/katorin/kotoba-cards/model"
)

// File is the on-disk deck format.
//
//	title = "JLPT N5 verbs"
//
//	[[entries]]
//	phonetic = "たべる"
//	logographic = "食べる"
//	definition = "to eat"
//	category = "verb"
type File struct {
	Title   string  `toml:"title"`
	Entries []Entry `toml:"entries"`
}

// Entry is one record of a deck file. IDs are never stored; they are
// assigned fresh at every load.
type Entry struct {
	Phonetic    string `toml:"phonetic"`
	Logographic string `toml:"logographic"`
	Definition  string `toml:"definition"`
	Category    string `toml:"category"`
}

// Load reads a deck file and converts its entries to model entries.
// Entries missing a phonetic or definition make the whole file invalid; a
// half-loaded deck would be confusing to discover mid-session.
func Load(path string) ([]model.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck file: %w", err)
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, apperrors.NewDeckFileError(path, fmt.Sprintf("parse error: %v", err))
	}
	if len(f.Entries) == 0 {
		return nil, apperrors.NewDeckFileError(path, apperrors.ErrEmptyDeck.Error())
	}

	out := make([]model.Entry, 0, len(f.Entries))
	for i, fe := range f.Entries {
		if strings.TrimSpace(fe.Phonetic) == "" {
			return nil, apperrors.NewDeckFileError(path, fmt.Sprintf("entry %d: phonetic cannot be empty", i+1))
		}
		if strings.TrimSpace(fe.Definition) == "" {
			return nil, apperrors.NewDeckFileError(path, fmt.Sprintf("entry %d: definition cannot be empty", i+1))
		}
		out = append(out, model.Entry{
			Phonetic:    strings.TrimSpace(fe.Phonetic),
			Logographic: strings.TrimSpace(fe.Logographic),
			Definition:  strings.TrimSpace(fe.Definition),
			Category:    model.ParseCategory(fe.Category),
		})
	}
	return out, nil
}
