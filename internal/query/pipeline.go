// Package query implements the explore view: a pure
// filter -> search -> sort -> paginate pipeline over the catalog, plus
// the per-client session state driving it.
package query

import (
	"sort"
	"strings"
	"time"

	"github.com/memeverse/memeverse/internal/model"
)

type SortKey string

const (
	SortNone  SortKey = "none"
	SortLikes SortKey = "likes"
	SortDate  SortKey = "date"
)

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// FilterAll disables category filtering.
const FilterAll = "all"

type Params struct {
	Filter    string    `json:"filter"`
	Search    string    `json:"search"`
	SortKey   SortKey   `json:"sort_key"`
	SortOrder SortOrder `json:"sort_order"`
}

// Apply runs filter, search and sort over the input, in that order.
// The sort is stable: ties keep input order. The input is not mutated.
func Apply(memes []model.Meme, p Params) []model.Meme {
	result := make([]model.Meme, 0, len(memes))
	filter := strings.ToLower(p.Filter)
	term := strings.ToLower(p.Search)
	for _, m := range memes {
		if filter != "" && filter != FilterAll && strings.ToLower(m.Category) != filter {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(m.Name), term) {
			continue
		}
		result = append(result, m)
	}
	switch p.SortKey {
	case SortLikes:
		sort.SliceStable(result, func(i, j int) bool {
			if p.SortOrder == OrderAsc {
				return result[i].Likes < result[j].Likes
			}
			return result[i].Likes > result[j].Likes
		})
	case SortDate:
		keys := make([]int64, len(result))
		for i := range result {
			keys[i] = parseCreatedAt(result[i].CreatedAt)
		}
		idx := make([]int, len(result))
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(i, j int) bool {
			if p.SortOrder == OrderAsc {
				return keys[idx[i]] < keys[idx[j]]
			}
			return keys[idx[i]] > keys[idx[j]]
		})
		sorted := make([]model.Meme, len(result))
		for i, j := range idx {
			sorted[i] = result[j]
		}
		result = sorted
	}
	return result
}

func parseCreatedAt(value string) int64 {
	if value == "" {
		return 0
	}
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return 0
	}
	return ts.UnixMilli()
}

// SortState implements the selection semantics of the explore sort
// buttons: re-selecting the active key flips direction, switching to
// another key resets direction to descending.
type SortState struct {
	Key   SortKey
	Order SortOrder
}

func NewSortState() SortState {
	return SortState{Key: SortNone, Order: OrderDesc}
}

func (s *SortState) Select(key SortKey) {
	if s.Key == key {
		if s.Order == OrderAsc {
			s.Order = OrderDesc
		} else {
			s.Order = OrderAsc
		}
		return
	}
	s.Key = key
	s.Order = OrderDesc
}

// Cursor is the monotone reveal cursor of the infinite scroll: it
// starts at the page size, grows by the page step when the user hits
// the current end, and only ever shrinks via Reset.
type Cursor struct {
	start int
	step  int
	n     int
}

func NewCursor(start, step int) Cursor {
	return Cursor{start: start, step: step, n: start}
}

func (c *Cursor) Reset() {
	c.n = c.start
}

// Grow advances the cursor by one step, capped at total. Once the
// whole result is revealed further calls are no-ops.
func (c *Cursor) Grow(total int) {
	if c.n >= total {
		return
	}
	c.n += c.step
	if c.n > total {
		c.n = total
	}
}

// Window clamps the cursor to the result length.
func (c *Cursor) Window(total int) int {
	if c.n > total {
		return total
	}
	return c.n
}
