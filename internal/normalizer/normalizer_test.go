package normalizer

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty string", "", ""},
		{"lowercase ascii unchanged", "to eat", "to eat"},
		{"uppercase ascii lowered", "To EAT", "to eat"},
		{"hiragana unchanged", "たべる", "たべる"},
		{"katakana unchanged", "テレビ", "テレビ"},
		{"half-width katakana to full-width", "ﾃﾚﾋﾞ", "テレビ"},
		{"full-width latin to ascii", "ＴＶ", "tv"},
		{"full-width digits to ascii", "１２３", "123"},
		{"mixed scripts", "Tべル", "tべル"},
		{"kanji unchanged", "食べる", "食べる"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"ﾃﾚﾋﾞ", "To EAT", "たべる", "ＡＢＣ１２３"}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
