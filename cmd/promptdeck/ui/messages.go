package ui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"promptdeck/internal/api"
	"promptdeck/internal/catalog"
)

// clipboardWriteAll is a variable so tests can mock clipboard access.
var clipboardWriteAll = clipboard.WriteAll

// promptsLoadedMsg carries the catalog fetched from the gateway.
type promptsLoadedMsg struct {
	Prompts []*catalog.Prompt
	Err     error
}

// profileLoadedMsg carries the viewer profile, nil for anonymous viewers.
type profileLoadedMsg struct {
	Profile *api.Profile
	Err     error
}

// favoriteToggledMsg is the gateway's answer to a favorite toggle.
type favoriteToggledMsg struct {
	ID     int
	WasFav bool
	Result api.FavoriteResult
	Err    error
}

// copyRecordedMsg is the gateway's answer to a copy event.
type copyRecordedMsg struct {
	ID     int
	Copies int
	Err    error
}

// clipboardWrittenMsg reports the outcome of a clipboard write.
type clipboardWrittenMsg struct {
	Label string
	Err   error
}

// tutorialTickMsg fires once after startup to show the tutorial overlay.
type tutorialTickMsg struct{}

// toastExpiredMsg hides a transient notification. Seq drops stale expiries
// when a newer toast replaced the one that scheduled it.
type toastExpiredMsg struct {
	Seq int
}

const (
	requestTimeout = 20 * time.Second
	toastDuration  = 2 * time.Second
)

func fetchPromptsCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		prompts, err := client.FetchPrompts(ctx)
		return promptsLoadedMsg{Prompts: prompts, Err: err}
	}
}

func fetchProfileCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		p, err := client.FetchProfile(ctx)
		return profileLoadedMsg{Profile: p, Err: err}
	}
}

func toggleFavoriteCmd(client *api.Client, id int, wasFav bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		res, err := client.ToggleFavorite(ctx, id)
		return favoriteToggledMsg{ID: id, WasFav: wasFav, Result: res, Err: err}
	}
}

func recordCopyCmd(client *api.Client, id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		copies, err := client.RecordCopy(ctx, id)
		return copyRecordedMsg{ID: id, Copies: copies, Err: err}
	}
}

func writeClipboardCmd(text, label string) tea.Cmd {
	return func() tea.Msg {
		return clipboardWrittenMsg{Label: label, Err: clipboardWriteAll(text)}
	}
}

func tutorialTickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return tutorialTickMsg{}
	})
}
