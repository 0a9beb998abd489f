package catalog

// Carousel tracks the index of the prompt shown in the viewer. It indexes
// into the projection when that is non-empty, and falls back to the full set
// otherwise, so narrowing the filters to nothing while the viewer is open
// never strands it on a dead list.
type Carousel struct {
	index int
}

// Active returns the list the carousel currently walks.
func (c *Carousel) Active(s *Store) []*Prompt {
	if len(s.Filtered) > 0 {
		return s.Filtered
	}
	return s.Prompts
}

// Open positions the carousel on the prompt with the given id. It reports
// whether the id was found; when it was not, the index is left untouched.
func (c *Carousel) Open(s *Store, id int) bool {
	list := c.Active(s)
	for i, p := range list {
		if p.ID == id {
			c.index = i
			return true
		}
	}
	return false
}

// Current returns the prompt under the carousel, or nil when the active list
// is empty.
func (c *Carousel) Current(s *Store) *Prompt {
	list := c.Active(s)
	if len(list) == 0 {
		return nil
	}
	if c.index >= len(list) {
		// The projection shrank underneath us; clamp rather than wrap.
		c.index = len(list) - 1
	}
	return list[c.index]
}

// Next advances with wraparound. A single-element list wraps to itself.
func (c *Carousel) Next(s *Store) *Prompt {
	list := c.Active(s)
	if len(list) == 0 {
		return nil
	}
	c.index = (c.index + 1) % len(list)
	return list[c.index]
}

// Prev retreats with wraparound.
func (c *Carousel) Prev(s *Store) *Prompt {
	list := c.Active(s)
	if len(list) == 0 {
		return nil
	}
	c.index = (c.index - 1 + len(list)) % len(list)
	return list[c.index]
}

// Position returns the 1-based index and total for the "i / n" counter.
func (c *Carousel) Position(s *Store) (int, int) {
	list := c.Active(s)
	if len(list) == 0 {
		return 0, 0
	}
	return c.index + 1, len(list)
}
