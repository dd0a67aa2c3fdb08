package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/katorin/kotoba-cards/internal/reading"
	"github.com/katorin/kotoba-cards/model"
)

// Form focus stops, top to bottom.
const (
	fieldPhonetic = iota
	fieldLogographic
	fieldDefinition
	fieldCategory
)

// addForm is the add-entry form: three text inputs and a category
// selector. Submitting goes through the deck, so validation errors come
// back as typed errors and are shown inline; the form never mutates state
// itself.
type addForm struct {
	inputs [3]textinput.Model
	focus  int
	catIdx int
	errMsg string
}

func newAddForm() addForm {
	var f addForm
	placeholders := [3]string{"たべる", "食べる (optional)", "to eat"}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 128
		f.inputs[i] = ti
	}
	f.inputs[fieldPhonetic].Focus()
	f.catIdx = len(model.CategoryOrder) - 1 // Other
	return f
}

func (f addForm) focusCmd() tea.Cmd {
	return textinput.Blink
}

func (f addForm) category() model.Category {
	return model.CategoryOrder[f.catIdx]
}

func (f addForm) values() (phonetic, logographic, definition string) {
	return f.inputs[fieldPhonetic].Value(),
		f.inputs[fieldLogographic].Value(),
		f.inputs[fieldDefinition].Value()
}

// Update routes a key to the form. submit is true when the user confirmed
// the form (enter on the category row, or ctrl+s anywhere).
func (f addForm) Update(msg tea.KeyMsg) (addForm, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+s":
		return f, nil, true
	case "tab", "down":
		f.setFocus(f.focus + 1)
		return f, nil, false
	case "shift+tab", "up":
		f.setFocus(f.focus - 1)
		return f, nil, false
	case "enter":
		if f.focus == fieldCategory {
			return f, nil, true
		}
		f.setFocus(f.focus + 1)
		return f, nil, false
	case "left":
		if f.focus == fieldCategory {
			f.catIdx = (f.catIdx + len(model.CategoryOrder) - 1) % len(model.CategoryOrder)
			return f, nil, false
		}
	case "right":
		if f.focus == fieldCategory {
			f.catIdx = (f.catIdx + 1) % len(model.CategoryOrder)
			return f, nil, false
		}
	}

	if f.focus < len(f.inputs) {
		var cmd tea.Cmd
		f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
		return f, cmd, false
	}
	return f, nil, false
}

// setFocus moves focus to the given stop, wrapping around, and keeps the
// text inputs' focus state in sync.
func (f *addForm) setFocus(focus int) {
	n := len(f.inputs) + 1 // three inputs plus the category row
	f.focus = ((focus % n) + n) % n
	for i := range f.inputs {
		if i == f.focus {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

// applySuggestion fills the phonetic field and category from the
// analyzer's reading of the logographic form. Only blank fields are
// touched; the user's own input always wins.
func (f *addForm) applySuggestion(analyzer *reading.Analyzer) {
	logographic := strings.TrimSpace(f.inputs[fieldLogographic].Value())
	if logographic == "" || strings.TrimSpace(f.inputs[fieldPhonetic].Value()) != "" {
		return
	}
	s := analyzer.Suggest(logographic)
	if s.Reading != "" {
		f.inputs[fieldPhonetic].SetValue(s.Reading)
	}
	if f.category() == model.CategoryOther && s.Category != model.CategoryOther {
		for i, c := range model.CategoryOrder {
			if c == s.Category {
				f.catIdx = i
				break
			}
		}
	}
}
