// Package catalog holds the in-memory prompt catalog: the authoritative
// prompt set, the active filter/sort/search criteria, the derived projection,
// and the carousel that indexes into it.
package catalog

// CategoryAll is the sentinel tab meaning "no category filter applied".
// It is the first tab in the UI and the default active category.
const CategoryAll = "все"

// CategoryNone is assigned to prompts whose source record carries no tags.
const CategoryNone = "без категории"

// Prompt is one catalog card. Copies, Favorites and IsFavorite are mutated in
// place by catalog actions; everything else is immutable after mapping.
type Prompt struct {
	ID          int
	Title       string
	Description string
	PromptText  string
	Image       string
	Category    string
	Tags        []string

	Copies     int
	Favorites  int
	IsFavorite bool
}

// SortMode selects the projection ordering.
type SortMode string

const (
	SortDefault   SortMode = "default"   // (copies + favorites) descending
	SortNew       SortMode = "new"       // id descending, proxy for recency
	SortCopies    SortMode = "copies"    // copies descending
	SortFavorites SortMode = "favorites" // favorites descending
)

// SortModes lists the cycle order used by the UI sort key.
var SortModes = []SortMode{SortDefault, SortNew, SortCopies, SortFavorites}

// Label returns the ru-RU display label for the sort mode.
func (m SortMode) Label() string {
	switch m {
	case SortNew:
		return "Сначала новые"
	case SortCopies:
		return "По копированиям"
	case SortFavorites:
		return "По избранному"
	default:
		return "По популярности"
	}
}

// Criteria is the full filter state the projection is derived from.
type Criteria struct {
	// Categories is the set of active category tabs. Empty, or exactly
	// {CategoryAll}, means no category filtering.
	Categories map[string]bool

	// Search is matched case-insensitively against title, description and
	// every tag.
	Search string

	Sort          SortMode
	OnlyFavorites bool
}

// DefaultCriteria returns the criteria the catalog starts with: the sentinel
// tab active, default sort, no search, all prompts.
func DefaultCriteria() Criteria {
	return Criteria{
		Categories: map[string]bool{CategoryAll: true},
		Sort:       SortDefault,
	}
}
