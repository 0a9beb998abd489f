package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func testPrompts() []*Prompt {
	return []*Prompt{
		{ID: 1, Title: "Неоновый портрет", Description: "портрет в неоне", Category: "портрет", Tags: []string{"портрет", "неон"}, Copies: 5, Favorites: 2},
		{ID: 2, Title: "Городская улица", Description: "вечерний город", Category: "город", Tags: []string{"город"}, Copies: 1, Favorites: 9},
		{ID: 3, Title: "Пляжное фото", Description: "золотой час", Category: "природа", Tags: []string{"природа", "пляж"}, Copies: 3, Favorites: 3, IsFavorite: true},
	}
}

func ids(ps []*Prompt) []int {
	out := make([]int, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestProject_DefaultSort(t *testing.T) {
	prompts := []*Prompt{
		{ID: 1, Category: "a", Copies: 5, Favorites: 2},
		{ID: 2, Category: "b", Copies: 1, Favorites: 9},
	}
	c := DefaultCriteria()

	got := ids(Project(prompts, c))
	if diff := cmp.Diff([]int{2, 1}, got); diff != "" {
		t.Errorf("default sort order mismatch (-want +got):\n%s", diff)
	}

	c.Sort = SortCopies
	got = ids(Project(prompts, c))
	if diff := cmp.Diff([]int{1, 2}, got); diff != "" {
		t.Errorf("copies sort order mismatch (-want +got):\n%s", diff)
	}
}

func TestProject_SentinelCategoryPassesEverything(t *testing.T) {
	prompts := testPrompts()
	c := DefaultCriteria()
	assert.Len(t, Project(prompts, c), 3)

	// An empty category set behaves like the sentinel.
	c.Categories = map[string]bool{}
	assert.Len(t, Project(prompts, c), 3)
}

func TestProject_CategoryNarrowing(t *testing.T) {
	prompts := testPrompts()
	c := DefaultCriteria()
	c.Categories = map[string]bool{"город": true}

	got := Project(prompts, c)
	assert.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)

	// Sentinel mixed with real labels is discarded, labels still filter.
	c.Categories = map[string]bool{CategoryAll: true, "природа": true}
	got = Project(prompts, c)
	assert.Len(t, got, 1)
	assert.Equal(t, 3, got[0].ID)
}

func TestProject_SearchMatchesTitleDescriptionAndTags(t *testing.T) {
	prompts := testPrompts()
	c := DefaultCriteria()

	c.Search = "НЕОН"
	assert.ElementsMatch(t, []int{1}, ids(Project(prompts, c)))

	c.Search = "  вечерний  "
	assert.ElementsMatch(t, []int{2}, ids(Project(prompts, c)))

	c.Search = "пляж"
	assert.ElementsMatch(t, []int{3}, ids(Project(prompts, c)))

	c.Search = "ничего такого"
	assert.Empty(t, Project(prompts, c))
}

func TestProject_OnlyFavorites(t *testing.T) {
	prompts := testPrompts()
	c := DefaultCriteria()
	c.OnlyFavorites = true

	got := Project(prompts, c)
	assert.Len(t, got, 1)
	assert.Equal(t, 3, got[0].ID)
}

func TestProject_StableOnTies(t *testing.T) {
	prompts := []*Prompt{
		{ID: 10, Copies: 2, Favorites: 2},
		{ID: 11, Copies: 3, Favorites: 1},
		{ID: 12, Copies: 1, Favorites: 3},
	}
	c := DefaultCriteria() // every record sums to 4

	got := ids(Project(prompts, c))
	if diff := cmp.Diff([]int{10, 11, 12}, got); diff != "" {
		t.Errorf("tied records must keep arrival order (-want +got):\n%s", diff)
	}
}

func TestProject_UnknownSortKeepsOrder(t *testing.T) {
	prompts := testPrompts()
	c := DefaultCriteria()
	c.Sort = SortMode("whatever")

	got := ids(Project(prompts, c))
	if diff := cmp.Diff([]int{1, 2, 3}, got); diff != "" {
		t.Errorf("unknown sort must not reorder (-want +got):\n%s", diff)
	}
}

func TestProject_DoesNotMutateInput(t *testing.T) {
	prompts := testPrompts()
	c := DefaultCriteria()
	c.Sort = SortNew

	Project(prompts, c)
	if diff := cmp.Diff([]int{1, 2, 3}, ids(prompts)); diff != "" {
		t.Errorf("input slice was reordered (-want +got):\n%s", diff)
	}
}

func TestProject_SubsetProperty(t *testing.T) {
	prompts := testPrompts()
	c := DefaultCriteria()
	c.Search = "о" // matches broadly

	byID := map[int]*Prompt{}
	for _, p := range prompts {
		byID[p.ID] = p
	}
	for _, p := range Project(prompts, c) {
		assert.Same(t, byID[p.ID], p, "projection must share pointers with the source set")
	}
}
