// Package reading suggests kana readings and part-of-speech categories for
// Japanese surface text, backed by kagome's IPA dictionary. Suggestions
// feed the add-entry form; they are advisory and never block adding.
package reading

import (
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"github.com/katorin/kotoba-cards/model"
)

// Suggestion is the analyzer's best guess for a surface form.
type Suggestion struct {
	Reading  string // hiragana reading of the whole surface
	Category model.Category
}

// Analyzer performs morphological analysis over Japanese text.
type Analyzer struct {
	t *tokenizer.Tokenizer
}

// NewAnalyzer loads the IPA dictionary and builds a tokenizer. The
// dictionary is embedded in the kagome-dict/ipa package, so this never
// touches the network, but it is not free; build one Analyzer and reuse it.
func NewAnalyzer() (*Analyzer, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Analyzer{t: t}, nil
}

// Suggest analyzes the surface form and returns the concatenated hiragana
// reading plus a category guessed from the IPA part-of-speech labels.
// Tokens without a dictionary reading (rare kanji, symbols) fall back to
// their surface text.
func (a *Analyzer) Suggest(surface string) Suggestion {
	var b strings.Builder
	cat := model.CategoryOther

	for _, tok := range a.t.Tokenize(surface) {
		if tok.Class == tokenizer.DUMMY {
			continue
		}
		if r, ok := tok.Reading(); ok && r != "*" {
			b.WriteString(KatakanaToHiragana(r))
		} else {
			b.WriteString(KatakanaToHiragana(tok.Surface))
		}
		if cat == model.CategoryOther {
			cat = categoryFromPOS(tok.POS())
		}
	}

	return Suggestion{Reading: b.String(), Category: cat}
}

// categoryFromPOS maps IPA part-of-speech labels to an entry category.
// 名詞 with the 形容動詞語幹 sub-class is a na-adjective stem (e.g. 静か).
func categoryFromPOS(pos []string) model.Category {
	if len(pos) == 0 {
		return model.CategoryOther
	}
	switch pos[0] {
	case "動詞":
		return model.CategoryVerb
	case "形容詞":
		return model.CategoryIAdjective
	case "副詞":
		return model.CategoryAdverb
	case "名詞":
		if len(pos) > 1 && pos[1] == "形容動詞語幹" {
			return model.CategoryNaAdjective
		}
		return model.CategoryNoun
	default:
		return model.CategoryOther
	}
}

// KatakanaToHiragana converts katakana runes to their hiragana
// counterparts, leaving everything else (including the long-vowel mark ー)
// untouched. IPA readings come back in katakana; entry phonetics are kept
// in hiragana.
func KatakanaToHiragana(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if r >= 'ァ' && r <= 'ヶ' {
			runes[i] = r - ('ァ' - 'ぁ')
		}
	}
	return string(runes)
}
