package upstream

import (
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/memeverse/memeverse/internal/model"
)

// Synthesized creation dates are backdated up to 10^10 ms (~115 days).
const maxBackdateMillis = 10_000_000_000

// Normalizer maps raw upstream records into the internal meme shape,
// synthesizing the fields the upstream does not carry: likes in
// [0,1000), a category from model.Categories, and a backdated creation
// timestamp.
//
// By default synthesis is seeded from the meme id, so the same id
// receives identical synthesized fields on every reload. Jitter
// restores fresh randomness per call, which makes repeated loads of
// the same catalog disagree with each other.
type Normalizer struct {
	Jitter bool
	Now    func() time.Time
}

func NewNormalizer() *Normalizer {
	return &Normalizer{Now: time.Now}
}

func (n *Normalizer) Normalize(raw RawMeme) model.Meme {
	rng := n.source(raw.ID)
	return model.Meme{
		ID:        raw.ID,
		Name:      raw.Name,
		URL:       raw.URL,
		Width:     raw.Width,
		Height:    raw.Height,
		BoxCount:  raw.BoxCount,
		Likes:     rng.Intn(1000),
		Category:  model.Categories[rng.Intn(len(model.Categories))],
		Comments:  []model.Comment{},
		CreatedAt: n.backdate(rng),
	}
}

func (n *Normalizer) NormalizeAll(raws []RawMeme) []model.Meme {
	memes := make([]model.Meme, 0, len(raws))
	for _, raw := range raws {
		memes = append(memes, n.Normalize(raw))
	}
	return memes
}

// NormalizeTrending is Normalize with the category pinned to
// "Trending". Used for the trending prefix of the catalog.
func (n *Normalizer) NormalizeTrending(raws []RawMeme) []model.Meme {
	memes := n.NormalizeAll(raws)
	for i := range memes {
		memes[i].Category = "Trending"
	}
	return memes
}

func (n *Normalizer) source(id string) *rand.Rand {
	if n.Jitter {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(id))
	return rand.New(rand.NewSource(int64(h.Sum64())))
}

func (n *Normalizer) backdate(rng *rand.Rand) string {
	now := time.Now()
	if n.Now != nil {
		now = n.Now()
	}
	offset := time.Duration(rng.Int63n(maxBackdateMillis)) * time.Millisecond
	return now.Add(-offset).UTC().Format(time.RFC3339)
}
