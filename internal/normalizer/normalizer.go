// Package normalizer provides the canonical text form shared by index
// building and query matching.
package normalizer

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize maps text to the canonical form used by the search index:
// Unicode NFKC followed by lowercasing. NFKC folds half-width katakana to
// full-width and full-width Latin to ASCII, so "ｶﾀｶﾅ" and "ＡＢＣ" queries
// match their canonical spellings; lowercasing gives case-insensitive
// matching for Latin text.
func Normalize(text string) string {
	return strings.ToLower(norm.NFKC.String(text))
}
