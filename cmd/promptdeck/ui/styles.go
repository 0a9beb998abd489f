// Package ui provides the terminal rendering layer of promptdeck: the
// catalog browser, the prompt viewer, the constructor and the profile pages.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. The client embeds in a chat-adjacent context, so the palette
// stays close to Telegram's blues with the bot's coral accent.
var (
	LightBackground = lipgloss.Color("#f4f4f5")
	LightForeground = lipgloss.Color("#18222d")
	LightPrimary    = lipgloss.Color("#2481cc")
	LightAccent     = lipgloss.Color("#ff6b6b")
	LightMuted      = lipgloss.Color("#8a99a8")
	LightBorder     = lipgloss.Color("#d9dee3")
	LightCard       = lipgloss.Color("#ffffff")

	DarkBackground = lipgloss.Color("#17212b")
	DarkForeground = lipgloss.Color("#f5f5f5")
	DarkPrimary    = lipgloss.Color("#6ab3f3")
	DarkAccent     = lipgloss.Color("#ff6b6b")
	DarkMuted      = lipgloss.Color("#708499")
	DarkBorder     = lipgloss.Color("#2b3a4d")
	DarkCard       = lipgloss.Color("#232e3c")

	// Semantic colors, same in both modes.
	ColorSuccess = lipgloss.Color("#10b981")
	ColorError   = lipgloss.Color("#ef4444")
	ColorWarning = lipgloss.Color("#ffc107")
)

// Theme holds the current color scheme.
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
		Border:     LightBorder,
		Card:       LightCard,
	}
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Card:       DarkCard,
		IsDark:     true,
	}
}

// DetectTheme picks a theme from PROMPTDECK_DARK_MODE or the terminal
// background, defaulting to dark.
func DetectTheme() Theme {
	switch os.Getenv("PROMPTDECK_DARK_MODE") {
	case "0":
		return LightTheme()
	case "1":
		return DarkTheme()
	}

	// COLORFGBG is "foreground;background"; low background indices are dark.
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if len(parts) == 2 {
			if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
				if bgIdx >= 7 && bgIdx != 8 {
					return LightTheme()
				}
			}
		}
	}
	return DarkTheme()
}

// Styles holds the styled components shared across pages.
type Styles struct {
	Theme Theme

	// Layout
	Header  lipgloss.Style
	Footer  lipgloss.Style
	Content lipgloss.Style

	// Text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	// Chips and counters
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	Badge       lipgloss.Style
	Pill        lipgloss.Style
	PillActive  lipgloss.Style

	// Status
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style

	// Components
	Card        lipgloss.Style
	CardFocused lipgloss.Style
	ProgressBar lipgloss.Style
	Divider     lipgloss.Style
}

// NewStyles creates a Styles instance for the given theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 2),

		Content: lipgloss.NewStyle().
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		TabActive: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			Bold(true),

		TabInactive: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		Badge: lipgloss.NewStyle().
			Background(theme.Accent).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			Bold(true),

		Pill: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Padding(0, 1),

		PillActive: lipgloss.NewStyle().
			Background(theme.Accent).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		CardFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Accent).
			Padding(0, 1),

		ProgressBar: lipgloss.NewStyle().
			Foreground(theme.Accent),

		Divider: lipgloss.NewStyle().
			Foreground(theme.Border),
	}
}

// DefaultStyles returns styles with the auto-detected theme.
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// RenderDivider returns a horizontal divider of the given width.
func (s Styles) RenderDivider(width int) string {
	if width <= 0 {
		return ""
	}
	return s.Divider.Render(strings.Repeat("─", width))
}
