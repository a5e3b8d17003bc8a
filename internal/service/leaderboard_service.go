package service

import (
	"sort"

	"github.com/memeverse/memeverse/internal/model"
	"github.com/memeverse/memeverse/internal/store"
)

const topMemesCount = 10

// LeaderboardService derives the top memes by like count. The
// top-contributor list is fabricated placeholder data with no backing
// computation.
type LeaderboardService struct {
	store *store.Store
}

func NewLeaderboardService(st *store.Store) *LeaderboardService {
	return &LeaderboardService{store: st}
}

// TopMemes returns up to ten memes ordered by likes descending, ties
// kept in catalog order.
func (s *LeaderboardService) TopMemes() []model.Meme {
	memes := s.store.Catalog()
	sort.SliceStable(memes, func(i, j int) bool {
		return memes[i].Likes > memes[j].Likes
	})
	if len(memes) > topMemesCount {
		memes = memes[:topMemesCount]
	}
	return memes
}

func (s *LeaderboardService) TopContributors() []model.Contributor {
	return []model.Contributor{
		{ID: "1", Name: "MemeKing", AvatarURL: "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?auto=format&fit=crop&w=200&q=80", Points: 12500, Rank: 1, MemesCount: 45},
		{ID: "2", Name: "LaughFactory", AvatarURL: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?auto=format&fit=crop&w=200&q=80", Points: 10200, Rank: 2, MemesCount: 38},
		{ID: "3", Name: "MemeQueen", AvatarURL: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?auto=format&fit=crop&w=200&q=80", Points: 9800, Rank: 3, MemesCount: 32},
		{ID: "4", Name: "JokeMaster", AvatarURL: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?auto=format&fit=crop&w=200&q=80", Points: 8500, Rank: 4, MemesCount: 29},
		{ID: "5", Name: "FunnyBones", AvatarURL: "https://images.unsplash.com/photo-1534528741775-53994a69daeb?auto=format&fit=crop&w=200&q=80", Points: 7200, Rank: 5, MemesCount: 25},
	}
}
