package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func carouselStore() *Store {
	s := NewStore()
	s.FinishLoad([]*Prompt{
		{ID: 1, Category: "a"},
		{ID: 2, Category: "b"},
		{ID: 3, Category: "a"},
	})
	// Neutralize sorting so the walk order is predictable.
	s.SetSort(SortMode("none"))
	return s
}

func TestCarousel_OpenByID(t *testing.T) {
	s := carouselStore()
	var c Carousel

	require.True(t, c.Open(s, 2))
	assert.Equal(t, 2, c.Current(s).ID)

	i, n := c.Position(s)
	assert.Equal(t, 2, i)
	assert.Equal(t, 3, n)

	// Missing id: no-op, index untouched.
	assert.False(t, c.Open(s, 42))
	assert.Equal(t, 2, c.Current(s).ID)
}

func TestCarousel_FullCycleReturnsToStart(t *testing.T) {
	s := carouselStore()
	var c Carousel
	require.True(t, c.Open(s, 1))

	n := len(c.Active(s))
	for i := 0; i < n; i++ {
		c.Next(s)
	}
	assert.Equal(t, 1, c.Current(s).ID)
}

func TestCarousel_PrevThenNextIsIdentity(t *testing.T) {
	s := carouselStore()
	var c Carousel
	require.True(t, c.Open(s, 2))

	c.Prev(s)
	c.Next(s)
	assert.Equal(t, 2, c.Current(s).ID)
}

func TestCarousel_PrevWrapsFromFirst(t *testing.T) {
	s := carouselStore()
	var c Carousel
	require.True(t, c.Open(s, 1))

	assert.Equal(t, 3, c.Prev(s).ID)
}

func TestCarousel_SingleElementWrapsToItself(t *testing.T) {
	s := NewStore()
	s.FinishLoad([]*Prompt{{ID: 7}})
	var c Carousel
	require.True(t, c.Open(s, 7))

	assert.Equal(t, 7, c.Next(s).ID)
	assert.Equal(t, 7, c.Prev(s).ID)
}

func TestCarousel_FallsBackToFullSetWhenProjectionEmpty(t *testing.T) {
	s := carouselStore()
	var c Carousel
	require.True(t, c.Open(s, 1))

	// Filter everything away while the viewer is open.
	s.SetSearch("ничего не найдётся")
	require.Empty(t, s.Filtered)

	assert.Len(t, c.Active(s), 3)
	assert.NotNil(t, c.Current(s))
	assert.NotNil(t, c.Next(s))
}

func TestCarousel_EmptyCatalog(t *testing.T) {
	s := NewStore()
	s.FinishLoad(nil)
	var c Carousel

	assert.Nil(t, c.Current(s))
	assert.Nil(t, c.Next(s))
	assert.Nil(t, c.Prev(s))
	i, n := c.Position(s)
	assert.Zero(t, i)
	assert.Zero(t, n)
}

func TestCarousel_ClampsWhenProjectionShrinks(t *testing.T) {
	s := carouselStore()
	var c Carousel
	require.True(t, c.Open(s, 3)) // index 2

	s.SelectCategory("b") // projection now [2], length 1
	require.Len(t, s.Filtered, 1)

	assert.Equal(t, 2, c.Current(s).ID)
}
