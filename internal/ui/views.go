package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katorin/kotoba-cards/model"
)

// Styles bundles the lipgloss styles used by the renderer.
type Styles struct {
	Title        lipgloss.Style
	Header       lipgloss.Style
	Card         lipgloss.Style
	SelectedCard lipgloss.Style
	FlippedTag   lipgloss.Style
	Dim          lipgloss.Style
	Error        lipgloss.Style
	Status       lipgloss.Style
	Filter       lipgloss.Style
	FormLabel    lipgloss.Style
	FormFocused  lipgloss.Style
}

// NewStyles builds the style set around a single accent color.
func NewStyles(accent string) Styles {
	accentColor := lipgloss.Color(accent)
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(accentColor),
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).
			MarginTop(1),
		Card: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		SelectedCard: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).Padding(0, 1),
		FlippedTag:  lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		Filter:      lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		FormLabel:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12),
		FormFocused: lipgloss.NewStyle().Foreground(accentColor).Width(12),
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("kotoba-cards"))
	if m.query != "" {
		b.WriteString("  ")
		b.WriteString(m.styles.Filter.Render(fmt.Sprintf("[filter: %s]", m.query)))
	}
	if m.status != "" {
		b.WriteString("  ")
		b.WriteString(m.styles.Status.Render(m.status))
	}
	b.WriteString("\n")

	switch m.mode {
	case modeSearch:
		b.WriteString(m.searchInput.View())
		b.WriteString("\n")
	case modeAdd:
		b.WriteString(m.renderForm())
		b.WriteString("\n")
		b.WriteString(m.styles.Dim.Render("tab/enter next field · ctrl+s save · esc cancel"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.renderCards())

	if m.mode == modeConfirmDelete {
		label := m.deleteID
		if e, err := m.deck.GetEntry(m.deleteID); err == nil {
			label = e.Phonetic
		}
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("delete %s? (y/n)", label)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Dim.Render(m.helpLine()))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderCards() string {
	if len(m.visible) == 0 {
		if m.query != "" {
			return m.styles.Dim.Render("no entries match the filter")
		}
		return m.styles.Dim.Render("deck is empty — press a to add an entry")
	}

	var b strings.Builder
	idx := 0
	for _, g := range m.groups {
		b.WriteString(m.styles.Header.Render(fmt.Sprintf("%s (%d)", g.Category.Label(), len(g.Entries))))
		b.WriteString("\n")
		for _, e := range g.Entries {
			b.WriteString(m.renderCard(e, idx == m.cursor))
			b.WriteString("\n")
			idx++
		}
	}
	return b.String()
}

func (m Model) renderCard(e model.Entry, selected bool) string {
	var content string
	if m.flipped[e.ID] {
		content = e.Definition + " " + m.styles.FlippedTag.Render("◂")
	} else {
		content = e.Phonetic
		if e.Logographic != "" && !m.cfg.UI.HideLogographic {
			content += "  " + m.styles.Dim.Render(e.Logographic)
		}
	}
	if selected {
		return m.styles.SelectedCard.Render(content)
	}
	return m.styles.Card.Render(content)
}

func (m Model) renderForm() string {
	labels := []string{"phonetic", "logographic", "definition"}
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("new entry"))
	b.WriteString("\n")
	for i, in := range m.form.inputs {
		label := m.styles.FormLabel
		if m.form.focus == i {
			label = m.styles.FormFocused
		}
		b.WriteString(label.Render(labels[i]))
		b.WriteString(in.View())
		b.WriteString("\n")
	}

	catLabel := m.styles.FormLabel
	if m.form.focus == fieldCategory {
		catLabel = m.styles.FormFocused
	}
	b.WriteString(catLabel.Render("category"))
	b.WriteString(fmt.Sprintf("◂ %s ▸", m.form.category().Label()))
	b.WriteString("\n")

	if m.form.errMsg != "" {
		b.WriteString(m.styles.Error.Render(m.form.errMsg))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) helpLine() string {
	switch m.mode {
	case modeSearch:
		return "type to filter · enter keep · esc clear"
	case modeConfirmDelete:
		return "y confirm · n cancel"
	default:
		return "↑/↓ move · enter flip · / search · a add · d delete · esc clear filter · q quit"
	}
}
