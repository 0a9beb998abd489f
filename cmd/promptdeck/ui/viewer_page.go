package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"promptdeck/internal/catalog"
)

// closeViewerMsg asks the app to return to the catalog page.
type closeViewerMsg struct{}

// ViewerPageModel renders the modal carousel: one prompt at a time with
// wraparound navigation over the projection the viewer was opened from.
type ViewerPageModel struct {
	store    *catalog.Store
	carousel *catalog.Carousel

	width  int
	height int
	styles Styles
}

// NewViewerPageModel creates the carousel view over the shared store.
func NewViewerPageModel(store *catalog.Store, carousel *catalog.Carousel, styles Styles) ViewerPageModel {
	return ViewerPageModel{
		store:    store,
		carousel: carousel,
		styles:   styles,
	}
}

// SetSize resizes the page.
func (m *ViewerPageModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages.
func (m ViewerPageModel) Update(msg tea.Msg) (ViewerPageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return m, func() tea.Msg { return closeViewerMsg{} }
		case "left", "h":
			m.carousel.Prev(m.store)
			return m, nil
		case "right", "l":
			m.carousel.Next(m.store)
			return m, nil
		case "x":
			if p := m.carousel.Current(m.store); p != nil {
				id := p.ID
				return m, func() tea.Msg { return favoriteRequestedMsg{ID: id} }
			}
			return m, nil
		case "c", "enter":
			if p := m.carousel.Current(m.store); p != nil {
				id := p.ID
				return m, func() tea.Msg { return copyRequestedMsg{ID: id} }
			}
			return m, nil
		}
	}
	return m, nil
}

// View renders the current card. Counters always read from the live prompt,
// so a toggle answered while this card is displayed shows up immediately.
func (m ViewerPageModel) View() string {
	p := m.carousel.Current(m.store)
	if p == nil {
		return m.styles.Muted.Render("Нечего показывать")
	}

	i, n := m.carousel.Position(m.store)

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(p.Title))
	b.WriteString("  ")
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("%d / %d", i, n)))
	b.WriteString("\n")

	heart := "♡"
	if p.IsFavorite {
		heart = m.styles.Error.Render("♥")
	}
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("%s  %s %d  ⧉ %d", p.Category, heart, p.Favorites, p.Copies)))
	b.WriteString("\n\n")

	if p.Description != "" {
		b.WriteString(m.styles.Subtitle.Render(p.Description))
		b.WriteString("\n\n")
	}

	text := p.PromptText
	if text == "" {
		text = p.Description
	}
	card := m.styles.Card.Width(max(20, m.width-6)).Render(m.styles.Body.Render(text))
	b.WriteString(card)
	b.WriteString("\n\n")

	if len(p.Tags) > 0 {
		pills := make([]string, len(p.Tags))
		for i, t := range p.Tags {
			pills[i] = m.styles.Pill.Render("#" + t)
		}
		b.WriteString(strings.Join(pills, " "))
		b.WriteString("\n\n")
	}

	b.WriteString(m.styles.Footer.Render("←/→ листать · c копировать · x в избранное · esc назад"))
	return b.String()
}
