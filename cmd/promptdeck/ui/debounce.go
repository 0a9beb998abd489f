package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// searchDebouncedMsg fires after the debounce quiet period. Seq identifies
// which keystroke burst scheduled it; stale ticks are dropped in Update.
type searchDebouncedMsg struct {
	Seq int
}

// debouncer coalesces keystroke bursts inside the bubbletea event loop.
// Every keystroke bumps the sequence and schedules a tick; only the tick
// whose sequence still matches applies the query. Keeping the timer inside
// the loop means no mutex and no callbacks racing with Update.
type debouncer struct {
	seq      int
	duration time.Duration
}

func newDebouncer(duration time.Duration) debouncer {
	return debouncer{duration: duration}
}

// Trigger schedules a debounce tick for the current keystroke.
func (d *debouncer) Trigger() tea.Cmd {
	d.seq++
	seq := d.seq
	return tea.Tick(d.duration, func(time.Time) tea.Msg {
		return searchDebouncedMsg{Seq: seq}
	})
}

// Fired reports whether msg belongs to the latest Trigger call. Earlier
// ticks were superseded by newer keystrokes and must be ignored.
func (d *debouncer) Fired(msg searchDebouncedMsg) bool {
	return msg.Seq == d.seq
}

// Flush invalidates pending ticks so the caller can apply a value
// immediately (for example when search is cleared with Esc).
func (d *debouncer) Flush() {
	d.seq++
}
