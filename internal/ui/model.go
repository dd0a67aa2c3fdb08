// Package ui implements the terminal interface: flippable vocabulary
// cards grouped by category, live substring search, an add-entry form and
// delete confirmation. The UI never touches the store or index directly;
// it holds a services.DeckAccessor and renders the snapshots it gets back.
package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/katorin/kotoba-cards/config"
	"github.com/katorin/kotoba-cards/internal/grouping"
	"github.com/katorin/kotoba-cards/internal/reading"
	"github.com/katorin/kotoba-cards/model"
	"github.com/katorin/kotoba-cards/services"
)

type mode int

const (
	modeBrowse mode = iota
	modeSearch
	modeAdd
	modeConfirmDelete
)

// Model is the Bubble Tea model for the whole application.
type Model struct {
	deck     services.DeckAccessor
	analyzer *reading.Analyzer // nil when reading hints are disabled or unavailable
	cfg      *config.Settings
	styles   Styles

	mode   mode
	width  int
	height int
	status string

	query       string // committed search filter; empty means no filtering
	searchInput textinput.Model
	form        addForm
	flipped     map[string]bool // entry ID -> definition side showing
	cursor      int             // index into visible
	deleteID    string          // pending delete target

	groups  []services.Group
	visible []model.Entry // groups flattened in display order
}

// New builds the initial model. The analyzer may be nil; the add form then
// simply offers no suggestions.
func New(deck services.DeckAccessor, analyzer *reading.Analyzer, cfg *config.Settings) Model {
	si := textinput.New()
	si.Prompt = "/"
	si.Placeholder = "search"
	si.CharLimit = 64

	m := Model{
		deck:        deck,
		analyzer:    analyzer,
		cfg:         cfg,
		styles:      NewStyles(cfg.UI.AccentColor),
		searchInput: si,
		form:        newAddForm(),
		flipped:     make(map[string]bool),
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// refresh re-runs the current search against the deck and regroups the
// result. Called after every mutation and filter change so the view always
// reflects the freshly rebuilt index.
func (m *Model) refresh() {
	entries := m.deck.SearchEntries(m.query)
	m.groups = grouping.ByCategory(entries)
	m.visible = m.visible[:0]
	for _, g := range m.groups {
		m.visible = append(m.visible, g.Entries...)
	}
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// selected returns the entry under the cursor.
func (m Model) selected() (model.Entry, bool) {
	if len(m.visible) == 0 || m.cursor >= len(m.visible) {
		return model.Entry{}, false
	}
	return m.visible[m.cursor], true
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeBrowse:
			return m.updateBrowse(msg)
		case modeSearch:
			return m.updateSearch(msg)
		case modeAdd:
			return m.updateAdd(msg)
		case modeConfirmDelete:
			return m.updateConfirmDelete(msg)
		}
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case "enter", " ":
		if e, ok := m.selected(); ok {
			m.flipped[e.ID] = !m.flipped[e.ID]
		}
	case "/":
		m.mode = modeSearch
		m.searchInput.SetValue(m.query)
		m.searchInput.CursorEnd()
		m.status = ""
		return m, m.searchInput.Focus()
	case "a":
		m.mode = modeAdd
		m.form = newAddForm()
		m.status = ""
		return m, m.form.focusCmd()
	case "d":
		if e, ok := m.selected(); ok {
			m.mode = modeConfirmDelete
			m.deleteID = e.ID
		}
	case "esc":
		if m.query != "" {
			m.query = ""
			m.refresh()
		}
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		// Abandon the filter entirely.
		m.mode = modeBrowse
		m.searchInput.Blur()
		m.query = ""
		m.refresh()
		return m, nil
	case "enter":
		m.mode = modeBrowse
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	// Live filtering: every keystroke re-queries the index.
	m.query = m.searchInput.Value()
	m.refresh()
	return m, cmd
}

func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.mode = modeBrowse
		return m, nil
	}

	prevFocus := m.form.focus
	form, cmd, submit := m.form.Update(msg)
	m.form = form

	// Leaving the logographic field with an empty phonetic: offer the
	// analyzer's reading and category guess.
	if m.analyzer != nil && !m.cfg.UI.NoReadingHints &&
		prevFocus == fieldLogographic && m.form.focus != fieldLogographic {
		m.form.applySuggestion(m.analyzer)
	}

	if submit {
		phonetic, logographic, definition := m.form.values()
		entry, err := m.deck.AddEntry(phonetic, logographic, definition, m.form.category())
		if err != nil {
			m.form.errMsg = err.Error()
			return m, cmd
		}
		m.mode = modeBrowse
		m.query = ""
		m.status = fmt.Sprintf("added %s", entry.Phonetic)
		m.refresh()
	}
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.deck.DeleteEntry(m.deleteID)
		delete(m.flipped, m.deleteID)
		m.deleteID = ""
		m.mode = modeBrowse
		m.status = "entry deleted"
		m.refresh()
	case "n", "esc":
		m.deleteID = ""
		m.mode = modeBrowse
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}
