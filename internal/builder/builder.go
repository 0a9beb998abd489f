// Package builder implements the guided prompt constructor: a fixed set of
// single- and multi-select choice groups whose accumulated state serializes
// deterministically into the natural-language prompt the bot expects.
package builder

import (
	"math"
	"strings"
)

const (
	// Preamble and closing are part of the wire contract with the bot.
	Preamble = "Сгенерируй фотореалистичное фото по описанию."
	Closing  = "Качество: high detail, sharp, natural skin texture."

	valueSeparator = ", "
)

// Builder accumulates selections across the fixed groups. The zero value is
// not usable; construct with New.
type Builder struct {
	groups []Group
	single map[string]string   // group key -> chosen value
	multi  map[string][]string // group key -> values in selection order
}

// New returns an all-empty constructor over the fixed group set.
func New() *Builder {
	return &Builder{
		groups: Groups(),
		single: make(map[string]string),
		multi:  make(map[string][]string),
	}
}

// Groups exposes the ordered group definitions for rendering.
func (b *Builder) Groups() []Group {
	return b.groups
}

// Select applies a choice. Single groups replace their slot outright; multi
// groups toggle membership (selected again removes it). Unknown group keys
// are ignored.
func (b *Builder) Select(groupKey, value string) {
	g := b.group(groupKey)
	if g == nil {
		return
	}
	if g.Mode == ModeSingle {
		b.single[groupKey] = value
		return
	}
	values := b.multi[groupKey]
	for i, v := range values {
		if v == value {
			b.multi[groupKey] = append(values[:i:i], values[i+1:]...)
			return
		}
	}
	b.multi[groupKey] = append(values, value)
}

// Selected reports whether the value is currently chosen in the group.
func (b *Builder) Selected(groupKey, value string) bool {
	g := b.group(groupKey)
	if g == nil {
		return false
	}
	if g.Mode == ModeSingle {
		return b.single[groupKey] == value
	}
	for _, v := range b.multi[groupKey] {
		if v == value {
			return true
		}
	}
	return false
}

// Count returns how many values the group currently holds (0 or 1 for
// single groups).
func (b *Builder) Count(groupKey string) int {
	g := b.group(groupKey)
	if g == nil {
		return 0
	}
	if g.Mode == ModeSingle {
		if strings.TrimSpace(b.single[groupKey]) != "" {
			return 1
		}
		return 0
	}
	return len(b.multi[groupKey])
}

// Current returns the single-group value, or "" when empty or not a single
// group.
func (b *Builder) Current(groupKey string) string {
	return b.single[groupKey]
}

// Serialize emits the prompt text: empty when nothing is selected, otherwise
// the preamble, one bulleted line per non-empty group in declared order
// (multi values joined in selection order), and the closing quality clause.
func (b *Builder) Serialize() string {
	var parts []string
	for _, g := range b.groups {
		switch g.Mode {
		case ModeSingle:
			if v := strings.TrimSpace(b.single[g.Key]); v != "" {
				parts = append(parts, "• "+g.Label+": "+v)
			}
		case ModeMulti:
			if values := b.multi[g.Key]; len(values) > 0 {
				parts = append(parts, "• "+g.Label+": "+strings.Join(values, valueSeparator))
			}
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return Preamble + "\n\n" + strings.Join(parts, "\n") + "\n\n" + Closing
}

// Progress returns the rounded percentage of groups with at least one value.
func (b *Builder) Progress() int {
	filled := 0
	for _, g := range b.groups {
		if b.Count(g.Key) > 0 {
			filled++
		}
	}
	return int(math.Round(float64(filled) / float64(len(b.groups)) * 100))
}

// Reset clears every slot. Called on explicit reset and every time the
// constructor view is opened, so no state leaks between sessions.
func (b *Builder) Reset() {
	b.single = make(map[string]string)
	b.multi = make(map[string][]string)
}

func (b *Builder) group(key string) *Group {
	for i := range b.groups {
		if b.groups[i].Key == key {
			return &b.groups[i]
		}
	}
	return nil
}
