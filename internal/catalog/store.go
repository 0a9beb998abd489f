package catalog

// Store is the process-wide catalog model. All mutation happens on the UI
// event loop (bubbletea's Update), so the store carries no locking; the api
// layer only ever touches it through messages delivered to that loop.
type Store struct {
	Prompts  []*Prompt // arrival order from the last load
	Filtered []*Prompt // derived projection, recomputed via Refresh
	Criteria Criteria
	Loading  bool
}

// NewStore returns an empty catalog with the default criteria and the
// loading flag raised, matching the pre-first-load state of the client.
func NewStore() *Store {
	return &Store{
		Criteria: DefaultCriteria(),
		Loading:  true,
	}
}

// BeginLoad marks a reload in flight and clears the stale projection.
func (s *Store) BeginLoad() {
	s.Loading = true
	s.Filtered = nil
}

// FinishLoad replaces the prompt set wholesale and recomputes the projection.
// A failed fetch passes nil, which renders as the empty state rather than an
// error. The loading flag is cleared unconditionally.
func (s *Store) FinishLoad(prompts []*Prompt) {
	if prompts == nil {
		prompts = []*Prompt{}
	}
	s.Prompts = prompts
	s.Loading = false
	s.Refresh()
}

// Refresh recomputes the full projection from the current criteria.
func (s *Store) Refresh() {
	s.Filtered = Project(s.Prompts, s.Criteria)
}

// FindByID returns the prompt with the given id, or nil.
func (s *Store) FindByID(id int) *Prompt {
	for _, p := range s.Prompts {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// SetSearch updates the search query and refreshes the projection.
func (s *Store) SetSearch(query string) {
	s.Criteria.Search = query
	s.Refresh()
}

// SelectCategory activates a single category tab, replacing the active set.
// Selecting the sentinel returns to the unfiltered view.
func (s *Store) SelectCategory(label string) {
	s.Criteria.Categories = map[string]bool{label: true}
	s.Refresh()
}

// SetSort changes the sort mode and refreshes the projection.
func (s *Store) SetSort(mode SortMode) {
	s.Criteria.Sort = mode
	s.Refresh()
}

// ToggleOnlyFavorites flips the favorites-only filter and returns its new
// state.
func (s *Store) ToggleOnlyFavorites() bool {
	s.Criteria.OnlyFavorites = !s.Criteria.OnlyFavorites
	s.Refresh()
	return s.Criteria.OnlyFavorites
}

// Categories lists the tab labels: the sentinel first, then each distinct
// prompt category in arrival order.
func (s *Store) Categories() []string {
	labels := []string{CategoryAll}
	seen := map[string]bool{CategoryAll: true}
	for _, p := range s.Prompts {
		if !seen[p.Category] {
			seen[p.Category] = true
			labels = append(labels, p.Category)
		}
	}
	return labels
}

// FavoriteCount returns how many prompts the viewer has favorited, for the
// filter-toggle badge.
func (s *Store) FavoriteCount() int {
	n := 0
	for _, p := range s.Prompts {
		if p.IsFavorite {
			n++
		}
	}
	return n
}

// ApplyFavorite records a favorite-toggle outcome on the prompt. When the
// server returned no authoritative counter, the local value moves by exactly
// one in the direction of the new state, clamped at zero.
func (s *Store) ApplyFavorite(id int, isFavorite bool, count *int) *Prompt {
	p := s.FindByID(id)
	if p == nil {
		return nil
	}
	p.IsFavorite = isFavorite
	if count != nil {
		p.Favorites = *count
	} else if isFavorite {
		p.Favorites++
	} else if p.Favorites > 0 {
		p.Favorites--
	}
	return p
}

// ShouldRecordCopy reports whether a copy action must hit the network: only
// while the viewer's local copy count for the prompt is still zero.
func (s *Store) ShouldRecordCopy(id int) bool {
	p := s.FindByID(id)
	return p != nil && p.Copies == 0
}

// ApplyCopy installs the server's authoritative per-viewer copy counter.
func (s *Store) ApplyCopy(id, copies int) *Prompt {
	p := s.FindByID(id)
	if p == nil {
		return nil
	}
	p.Copies = copies
	return p
}
