// Package store is the single source of truth for meme state. Every
// meme lives exactly once in an owned id map; the catalog, trending
// and user-upload collections are ordered id views over that map, so a
// like or comment mutation is visible in every view at once.
package store

import (
	"sort"
	"sync"

	"github.com/memeverse/memeverse/internal/model"
)

type Store struct {
	mu        sync.Mutex
	memes     map[string]*model.Meme
	catalog   []string
	trending  []string
	userMemes []string
	liked     map[string]struct{}
	currentID string
}

func New() *Store {
	return &Store{
		memes: make(map[string]*model.Meme),
		liked: make(map[string]struct{}),
	}
}

// ReplaceCatalog swaps in a freshly normalized catalog. Records owned
// only by other views (user uploads, stale trending entries) survive.
func (s *Store) ReplaceCatalog(memes []model.Meme) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(memes))
	for i := range memes {
		m := cloneMeme(memes[i])
		s.memes[m.ID] = &m
		ids = append(ids, m.ID)
	}
	// user uploads stay on top of the catalog across reloads
	s.catalog = append(append([]string{}, s.userMemes...), ids...)
}

// ReplaceTrending swaps the trending view and upserts its records.
func (s *Store) ReplaceTrending(memes []model.Meme) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(memes))
	for i := range memes {
		m := cloneMeme(memes[i])
		s.memes[m.ID] = &m
		ids = append(ids, m.ID)
	}
	s.trending = ids
}

// Get returns the meme by id from the in-memory state only. A hit
// moves the current-meme pointer.
func (s *Store) Get(id string) (model.Meme, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.memes[id]
	if !ok {
		return model.Meme{}, false
	}
	s.currentID = id
	return cloneMeme(*m), true
}

// PutCurrent upserts a record fetched on demand and points the
// current-meme pointer at it, without adding it to any view.
func (s *Store) PutCurrent(meme model.Meme) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := cloneMeme(meme)
	s.memes[m.ID] = &m
	s.currentID = m.ID
}

// ToggleLike flips LikedSet membership for id and moves the like count
// with it: +1 on insert, -1 on removal clamped at zero. Because the
// record is owned once, every view observes the same count. Returns
// the new membership state and count.
func (s *Store) ToggleLike(id string) (liked bool, likes int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.memes[id]
	if _, ok := s.liked[id]; ok {
		delete(s.liked, id)
		if m != nil && m.Likes > 0 {
			m.Likes--
		}
	} else {
		s.liked[id] = struct{}{}
		if m != nil {
			m.Likes++
		}
		liked = true
	}
	if m != nil {
		likes = m.Likes
	}
	return liked, likes
}

// AddComment appends to the meme's comment sequence. Unknown ids are a
// silent no-op; the false return lets callers surface not-found.
func (s *Store) AddComment(id string, comment model.Comment) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.memes[id]
	if !ok {
		return false
	}
	m.Comments = append(m.Comments, comment)
	return true
}

// AddUserMeme prepends to both the user-upload view and the catalog.
// Id uniqueness is the caller's job.
func (s *Store) AddUserMeme(meme model.Meme) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := cloneMeme(meme)
	s.memes[m.ID] = &m
	s.userMemes = append([]string{m.ID}, s.userMemes...)
	s.catalog = append([]string{m.ID}, s.catalog...)
}

// SetLiked rehydrates LikedSet from persisted state. Last call wins.
func (s *Store) SetLiked(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.liked = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		s.liked[id] = struct{}{}
	}
}

// LikedIDs returns the liked set in sorted order.
func (s *Store) LikedIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.liked))
	for id := range s.liked {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *Store) IsLiked(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.liked[id]
	return ok
}

func (s *Store) Catalog() []model.Meme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view(s.catalog)
}

func (s *Store) Trending() []model.Meme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view(s.trending)
}

func (s *Store) UserMemes() []model.Meme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view(s.userMemes)
}

// LikedMemes returns the memes of the liked set that resolve in the
// owned map, in catalog order.
func (s *Store) LikedMemes() []model.Meme {
	s.mu.Lock()
	defer s.mu.Unlock()
	memes := make([]model.Meme, 0, len(s.liked))
	for _, id := range s.catalog {
		if _, ok := s.liked[id]; !ok {
			continue
		}
		if m, ok := s.memes[id]; ok {
			memes = append(memes, cloneMeme(*m))
		}
	}
	return memes
}

// Current returns the currently viewed meme, if any.
func (s *Store) Current() (model.Meme, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentID == "" {
		return model.Meme{}, false
	}
	m, ok := s.memes[s.currentID]
	if !ok {
		return model.Meme{}, false
	}
	return cloneMeme(*m), true
}

func (s *Store) view(ids []string) []model.Meme {
	memes := make([]model.Meme, 0, len(ids))
	for _, id := range ids {
		if m, ok := s.memes[id]; ok {
			memes = append(memes, cloneMeme(*m))
		}
	}
	return memes
}

func cloneMeme(m model.Meme) model.Meme {
	if m.Comments != nil {
		comments := make([]model.Comment, len(m.Comments))
		copy(comments, m.Comments)
		m.Comments = comments
	}
	return m
}
