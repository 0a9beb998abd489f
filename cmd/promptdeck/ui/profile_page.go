package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"promptdeck/internal/api"
	"promptdeck/internal/profile"
)

// referralCopyRequestedMsg asks the app to put the referral link on the
// clipboard.
type referralCopyRequestedMsg struct {
	Link string
}

// ProfilePageModel renders the viewer's account summary: generation
// counters, balances and the referral block.
type ProfilePageModel struct {
	profile       *api.Profile
	authenticated bool
	botUsername   string

	width  int
	height int
	styles Styles
}

// NewProfilePageModel creates the profile page in the anonymous state.
func NewProfilePageModel(botUsername string, styles Styles) ProfilePageModel {
	return ProfilePageModel{
		botUsername: botUsername,
		styles:      styles,
	}
}

// SetSize resizes the page.
func (m *ProfilePageModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetProfile installs the loaded profile. A nil profile keeps the page in
// anonymous mode with zero placeholders.
func (m *ProfilePageModel) SetProfile(p *api.Profile) {
	m.profile = p
	m.authenticated = p != nil
}

// Update handles messages.
func (m ProfilePageModel) Update(msg tea.Msg) (ProfilePageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "c":
			link := profile.ReferralLink(m.botUsername, profile.OrZero(m.profile))
			if link != "" {
				return m, func() tea.Msg { return referralCopyRequestedMsg{Link: link} }
			}
			return m, nil
		}
	}
	return m, nil
}

// View renders the page.
func (m ProfilePageModel) View() string {
	p := profile.OrZero(m.profile)

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Профиль"))
	if !m.authenticated {
		b.WriteString("  ")
		b.WriteString(m.styles.Warning.Render("гостевой режим"))
	}
	b.WriteString("\n\n")

	stat := func(label string, value any) string {
		return m.styles.Muted.Render(label+": ") + m.styles.Bold.Render(fmt.Sprint(value))
	}

	left := strings.Join([]string{
		stat("Генераций", p.TotalGenerations),
		stat("Успешных", p.DoneCount),
		stat("Не завершено", p.NotFinishedCount),
		stat("Отменено", p.CancelCount),
	}, "\n")

	right := strings.Join([]string{
		stat("Баланс", p.Balance),
		stat("Бонусы", p.BonusBalance),
		stat("Всего бонусов", p.BonusTotal),
		stat("Рефералов", p.ReferralsCount),
	}, "\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Card.Render(left), " ", m.styles.Card.Render(right)))
	b.WriteString("\n\n")

	b.WriteString(stat("Успешность", fmt.Sprintf("%d%%", profile.SuccessRate(p))))
	b.WriteString("  ")
	b.WriteString(m.styles.Muted.Render(profile.SuccessHint(p)))
	b.WriteString("\n")

	if reg := profile.FormatRegisteredAt(p.CreatedAt); reg != "" {
		b.WriteString(m.styles.Muted.Render("С нами с " + reg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if link := profile.ReferralLink(m.botUsername, p); link != "" {
		b.WriteString(m.styles.Bold.Render("Реферальная ссылка"))
		b.WriteString("\n")
		b.WriteString(m.styles.Body.Render(link))
		b.WriteString("\n")
		b.WriteString(m.styles.Footer.Render("c скопировать ссылку"))
	} else if m.authenticated {
		b.WriteString(m.styles.Muted.Render("Реферальный код ещё не выдан"))
	} else {
		b.WriteString(m.styles.Muted.Render("Войдите через Telegram, чтобы получить реферальную ссылку"))
	}

	return b.String()
}
