package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"promptdeck/internal/builder"
)

// builderCopyRequestedMsg asks the app to put the assembled prompt on the
// clipboard.
type builderCopyRequestedMsg struct {
	Text string
}

// BuilderPageModel is the step-by-step prompt constructor: five option
// groups, a progress bar and a live preview of the serialized text.
type BuilderPageModel struct {
	b      *builder.Builder
	groups []builder.Group

	groupIdx  int
	optionIdx int
	preview   bool

	width  int
	height int
	styles Styles
}

// NewBuilderPageModel creates the constructor with empty selections.
func NewBuilderPageModel(styles Styles) BuilderPageModel {
	b := builder.New()
	return BuilderPageModel{
		b:      b,
		groups: b.Groups(),
		styles: styles,
	}
}

// SetSize resizes the page.
func (m *BuilderPageModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Reset clears all selections and navigation state. Called every time the
// constructor is opened so selections never leak between visits.
func (m *BuilderPageModel) Reset() {
	m.b.Reset()
	m.groupIdx = 0
	m.optionIdx = 0
	m.preview = false
}

// Update handles messages.
func (m BuilderPageModel) Update(msg tea.Msg) (BuilderPageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			if m.groupIdx > 0 {
				m.groupIdx--
				m.optionIdx = 0
			}
			return m, nil
		case "right", "l":
			if m.groupIdx < len(m.groups)-1 {
				m.groupIdx++
				m.optionIdx = 0
			}
			return m, nil
		case "up", "k":
			if m.optionIdx > 0 {
				m.optionIdx--
			}
			return m, nil
		case "down", "j":
			if m.optionIdx < len(m.groups[m.groupIdx].Options)-1 {
				m.optionIdx++
			}
			return m, nil
		case " ", "enter":
			g := m.groups[m.groupIdx]
			m.b.Select(g.Key, g.Options[m.optionIdx].Value)
			return m, nil
		case "p":
			m.preview = !m.preview
			return m, nil
		case "r":
			m.b.Reset()
			return m, nil
		case "c":
			if text := m.b.Serialize(); text != "" {
				return m, func() tea.Msg { return builderCopyRequestedMsg{Text: text} }
			}
			return m, nil
		}
	}
	return m, nil
}

// View renders the page.
func (m BuilderPageModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Конструктор промпта"))
	b.WriteString("  ")
	b.WriteString(m.viewProgress())
	b.WriteString("\n")
	b.WriteString(m.viewGroupTabs())
	b.WriteString("\n\n")

	g := m.groups[m.groupIdx]
	b.WriteString(m.styles.Bold.Render(g.Icon + " " + g.Title))
	b.WriteString("  ")
	b.WriteString(m.styles.Subtitle.Render(g.Desc))
	b.WriteString("\n")

	for i, opt := range g.Options {
		cursor := "  "
		if i == m.optionIdx {
			cursor = m.styles.Title.Render("▸ ")
		}
		pill := m.styles.Pill.Render(opt.Icon + " " + opt.Value)
		if m.b.Selected(g.Key, opt.Value) {
			pill = m.styles.PillActive.Render(opt.Icon + " " + opt.Value)
		}
		b.WriteString(cursor + pill + "\n")
	}

	if m.preview {
		b.WriteString("\n")
		text := m.b.Serialize()
		if text == "" {
			b.WriteString(m.styles.Muted.Render("Пока ничего не выбрано"))
		} else {
			card := m.styles.Card.Width(max(20, m.width-6)).Render(text)
			b.WriteString(card)
			b.WriteString("\n")
			b.WriteString(m.styles.Muted.Render(fmt.Sprintf("%d символов", len([]rune(text)))))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render("←/→ группы · ↑/↓ варианты · пробел выбрать · p превью · c копировать · r сброс"))
	return b.String()
}

// viewProgress draws the fill bar with the rounded percentage.
func (m BuilderPageModel) viewProgress() string {
	pct := m.b.Progress()
	const cells = 20
	filled := pct * cells / 100
	bar := m.styles.ProgressBar.Render(strings.Repeat("█", filled)) +
		m.styles.Muted.Render(strings.Repeat("░", cells-filled))
	return bar + m.styles.Muted.Render(fmt.Sprintf(" %d%%", pct))
}

func (m BuilderPageModel) viewGroupTabs() string {
	tabs := make([]string, len(m.groups))
	for i, g := range m.groups {
		label := g.Icon + " " + g.Title
		if n := m.b.Count(g.Key); n > 0 {
			label += fmt.Sprintf(" (%d)", n)
		}
		if i == m.groupIdx {
			tabs[i] = m.styles.TabActive.Render(label)
		} else {
			tabs[i] = m.styles.TabInactive.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}
