package upstream

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/memeverse/memeverse/internal/model"
)

func TestNormalizeSynthesizesMissingFields(t *testing.T) {
	n := NewNormalizer()
	meme := n.Normalize(RawMeme{ID: "42", Name: "Test", URL: "https://example.com/42.jpg", Width: 500, Height: 500, BoxCount: 2})
	require.Equal(t, "42", meme.ID)
	require.GreaterOrEqual(t, meme.Likes, 0)
	require.Less(t, meme.Likes, 1000)
	require.Contains(t, model.Categories, meme.Category)
	require.NotEmpty(t, meme.CreatedAt)
	created, err := time.Parse(time.RFC3339, meme.CreatedAt)
	require.NoError(t, err)
	require.True(t, created.Before(time.Now().Add(time.Second)))
	require.True(t, created.After(time.Now().Add(-116*24*time.Hour)))
}

func TestNormalizeIsDeterministicPerID(t *testing.T) {
	// Same id must receive identical synthesized fields across reloads.
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	n := &Normalizer{Now: func() time.Time { return now }}
	raw := RawMeme{ID: "181913649", Name: "Drake Hotline Bling"}
	first := n.Normalize(raw)
	second := n.Normalize(raw)
	require.Equal(t, first.Likes, second.Likes)
	require.Equal(t, first.Category, second.Category)
	require.Equal(t, first.CreatedAt, second.CreatedAt)
}

func TestNormalizeDistinctIDsDiverge(t *testing.T) {
	n := NewNormalizer()
	var sameLikes = true
	base := n.Normalize(RawMeme{ID: "seed-0"}).Likes
	for i := 1; i < 20; i++ {
		if n.Normalize(RawMeme{ID: "seed-" + string(rune('a'+i))}).Likes != base {
			sameLikes = false
			break
		}
	}
	require.False(t, sameLikes)
}

func TestNormalizeTrendingPinsCategory(t *testing.T) {
	n := NewNormalizer()
	memes := n.NormalizeTrending([]RawMeme{{ID: "1"}, {ID: "2"}, {ID: "3"}})
	for _, m := range memes {
		require.Equal(t, "Trending", m.Category)
	}
}
