package query

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/memeverse/memeverse/internal/model"
)

func catalog() []model.Meme {
	return []model.Meme{
		{ID: "a", Name: "Grumpy Cat", Category: "Classic", Likes: 5, CreatedAt: "2026-07-01T00:00:00Z"},
		{ID: "b", Name: "Doge", Category: "Trending", Likes: 10, CreatedAt: "2026-07-03T00:00:00Z"},
		{ID: "c", Name: "Distracted Boyfriend", Category: "Classic", Likes: 8, CreatedAt: "2026-07-02T00:00:00Z"},
		{ID: "d", Name: "Surprised Pikachu", Category: "New", Likes: 8, CreatedAt: "2026-07-04T00:00:00Z"},
	}
}

func ids(memes []model.Meme) []string {
	out := make([]string, len(memes))
	for i, m := range memes {
		out[i] = m.ID
	}
	return out
}

func TestApplyFilterAllKeepsEverything(t *testing.T) {
	result := Apply(catalog(), Params{Filter: FilterAll})
	require.Len(t, result, 4)
}

func TestApplyFilterIsCaseInsensitive(t *testing.T) {
	result := Apply(catalog(), Params{Filter: "classic"})
	require.Equal(t, []string{"a", "c"}, ids(result))
}

func TestApplyFilterUnknownCategoryYieldsEmpty(t *testing.T) {
	result := Apply(catalog(), Params{Filter: "Dank"})
	require.Empty(t, result)
}

func TestApplySearchSubstringCaseInsensitive(t *testing.T) {
	result := Apply(catalog(), Params{Filter: FilterAll, Search: "cat"})
	require.Equal(t, []string{"a"}, ids(result))

	result = Apply(catalog(), Params{Filter: FilterAll, Search: "DOGE"})
	require.Equal(t, []string{"b"}, ids(result))
}

func TestApplySearchMissYieldsEmpty(t *testing.T) {
	result := Apply(catalog(), Params{Filter: FilterAll, Search: "no such meme"})
	require.Empty(t, result)
}

func TestApplySortLikesDescending(t *testing.T) {
	result := Apply(catalog(), Params{Filter: FilterAll, SortKey: SortLikes, SortOrder: OrderDesc})
	// c and d tie on 8 likes; stable sort keeps input order c before d
	require.Equal(t, []string{"b", "c", "d", "a"}, ids(result))
}

func TestApplySortLikesAscending(t *testing.T) {
	result := Apply(catalog(), Params{Filter: FilterAll, SortKey: SortLikes, SortOrder: OrderAsc})
	require.Equal(t, []string{"a", "c", "d", "b"}, ids(result))
}

func TestApplySortDate(t *testing.T) {
	result := Apply(catalog(), Params{Filter: FilterAll, SortKey: SortDate, SortOrder: OrderDesc})
	require.Equal(t, []string{"d", "b", "c", "a"}, ids(result))

	result = Apply(catalog(), Params{Filter: FilterAll, SortKey: SortDate, SortOrder: OrderAsc})
	require.Equal(t, []string{"a", "c", "b", "d"}, ids(result))
}

func TestApplySortNoneKeepsInputOrder(t *testing.T) {
	result := Apply(catalog(), Params{Filter: FilterAll, SortKey: SortNone})
	require.Equal(t, []string{"a", "b", "c", "d"}, ids(result))
}

func TestApplyTwoMemeScenario(t *testing.T) {
	memes := []model.Meme{
		{ID: "a", Name: "A", Likes: 5},
		{ID: "b", Name: "B", Likes: 10},
	}
	result := Apply(memes, Params{Filter: FilterAll, SortKey: SortLikes, SortOrder: OrderDesc})
	require.Equal(t, []string{"b", "a"}, ids(result))
}

func TestSortStateSelection(t *testing.T) {
	s := NewSortState()
	s.Select(SortLikes)
	require.Equal(t, SortLikes, s.Key)
	require.Equal(t, OrderDesc, s.Order)

	// re-selecting the active key flips direction
	s.Select(SortLikes)
	require.Equal(t, OrderAsc, s.Order)
	s.Select(SortLikes)
	require.Equal(t, OrderDesc, s.Order)

	// a key change resets to descending
	s.Select(SortLikes)
	require.Equal(t, OrderAsc, s.Order)
	s.Select(SortDate)
	require.Equal(t, SortDate, s.Key)
	require.Equal(t, OrderDesc, s.Order)
}

func TestCursorGrowAndClamp(t *testing.T) {
	c := NewCursor(12, 8)
	require.Equal(t, 10, c.Window(10))
	require.Equal(t, 12, c.Window(50))

	c.Grow(50)
	require.Equal(t, 20, c.Window(50))
	c.Grow(22)
	require.Equal(t, 22, c.Window(22))
	// fully revealed: no further growth
	c.Grow(22)
	require.Equal(t, 22, c.Window(22))

	c.Reset()
	require.Equal(t, 12, c.Window(50))
}
