package catalog

import (
	"sort"
	"strings"
)

// Project derives the visible subset of prompts for the given criteria.
// It is a pure function: the input slice is never modified, and the result
// shares the prompt pointers so in-place counter mutations stay visible.
//
// Filters apply conjunctively in a fixed order: favorites-only, categories,
// search. Sorting is stable, so records with equal sort keys keep their
// arrival order.
func Project(prompts []*Prompt, c Criteria) []*Prompt {
	filtered := make([]*Prompt, 0, len(prompts))
	filtered = append(filtered, prompts...)

	if c.OnlyFavorites {
		filtered = keep(filtered, func(p *Prompt) bool { return p.IsFavorite })
	}

	if cats := narrowedCategories(c.Categories); len(cats) > 0 {
		filtered = keep(filtered, func(p *Prompt) bool { return cats[p.Category] })
	}

	if query := strings.ToLower(strings.TrimSpace(c.Search)); query != "" {
		filtered = keep(filtered, func(p *Prompt) bool { return matchesQuery(p, query) })
	}

	if less := lessFor(c.Sort); less != nil {
		sort.SliceStable(filtered, func(i, j int) bool { return less(filtered[i], filtered[j]) })
	}

	return filtered
}

// ProjectIDs returns the projected order as ids; the reconciliation planner
// works on this form.
func ProjectIDs(prompts []*Prompt, c Criteria) []int {
	projected := Project(prompts, c)
	ids := make([]int, len(projected))
	for i, p := range projected {
		ids[i] = p.ID
	}
	return ids
}

// narrowedCategories returns the effective category filter set, or nil when
// no filtering applies. The sentinel tab alone (or an empty set) means no
// filter; otherwise the sentinel is discarded and the remaining labels filter.
func narrowedCategories(active map[string]bool) map[string]bool {
	if len(active) == 0 {
		return nil
	}
	if len(active) == 1 && active[CategoryAll] {
		return nil
	}
	cats := make(map[string]bool, len(active))
	for label, on := range active {
		if on && label != CategoryAll {
			cats[label] = true
		}
	}
	if len(cats) == 0 {
		return nil
	}
	return cats
}

func matchesQuery(p *Prompt, query string) bool {
	if strings.Contains(strings.ToLower(p.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), query) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// lessFor returns the strict ordering for a sort mode, or nil when the mode
// is unknown and the arrival order should be preserved as-is.
func lessFor(mode SortMode) func(a, b *Prompt) bool {
	switch mode {
	case SortDefault:
		return func(a, b *Prompt) bool {
			return a.Copies+a.Favorites > b.Copies+b.Favorites
		}
	case SortNew:
		return func(a, b *Prompt) bool { return a.ID > b.ID }
	case SortCopies:
		return func(a, b *Prompt) bool { return a.Copies > b.Copies }
	case SortFavorites:
		return func(a, b *Prompt) bool { return a.Favorites > b.Favorites }
	default:
		return nil
	}
}

func keep(prompts []*Prompt, pred func(*Prompt) bool) []*Prompt {
	out := prompts[:0]
	for _, p := range prompts {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}
