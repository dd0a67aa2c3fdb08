package deck

import "github.com/katorin/kotoba-cards/model"

// Seed returns the built-in starter entries used when no deck file is
// configured. IDs are left empty; New assigns them.
func Seed() []model.Entry {
	return []model.Entry{
		{Phonetic: "たべる", Logographic: "食べる", Definition: "to eat", Category: model.CategoryVerb},
		{Phonetic: "のむ", Logographic: "飲む", Definition: "to drink", Category: model.CategoryVerb},
		{Phonetic: "ねこ", Logographic: "猫", Definition: "cat", Category: model.CategoryNoun},
		{Phonetic: "テレビ", Definition: "television", Category: model.CategoryNoun},
		{Phonetic: "さびしい", Logographic: "寂しい", Definition: "lonely", Category: model.CategoryIAdjective},
		{Phonetic: "たのしい", Logographic: "楽しい", Definition: "fun, enjoyable", Category: model.CategoryIAdjective},
		{Phonetic: "しずか", Logographic: "静か", Definition: "quiet", Category: model.CategoryNaAdjective},
		{Phonetic: "ゆっくり", Definition: "slowly, leisurely", Category: model.CategoryAdverb},
		{Phonetic: "でも", Definition: "but, however", Category: model.CategoryOther},
	}
}
