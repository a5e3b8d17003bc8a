package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/memeverse/memeverse/internal/likedstore"
	"github.com/memeverse/memeverse/internal/model"
	appErr "github.com/memeverse/memeverse/internal/pkg/errors"
	"github.com/memeverse/memeverse/internal/store"
	"github.com/memeverse/memeverse/internal/upstream"
)

// FetchStatus mirrors the catalog hydration lifecycle consumed by the
// UI. A failed fetch is not retried automatically.
type FetchStatus string

const (
	StatusIdle      FetchStatus = "idle"
	StatusLoading   FetchStatus = "loading"
	StatusSucceeded FetchStatus = "succeeded"
	StatusFailed    FetchStatus = "failed"
)

type MemeService struct {
	upstream     *upstream.Client
	store        *store.Store
	liked        likedstore.Store
	normalizer   *upstream.Normalizer
	trendingSize int

	statusMu  sync.Mutex
	status    FetchStatus
	lastError string
}

func NewMemeService(client *upstream.Client, st *store.Store, liked likedstore.Store, normalizer *upstream.Normalizer, trendingSize int) *MemeService {
	if trendingSize <= 0 {
		trendingSize = 10
	}
	return &MemeService{
		upstream:     client,
		store:        st,
		liked:        liked,
		normalizer:   normalizer,
		trendingSize: trendingSize,
		status:       StatusIdle,
	}
}

// Refresh hydrates the catalog and the trending prefix from upstream.
func (s *MemeService) Refresh(ctx context.Context) error {
	s.setStatus(StatusLoading, "")
	raws, err := s.upstream.GetMemes(ctx)
	if err != nil {
		s.setStatus(StatusFailed, err.Error())
		logutil.GetLogger(ctx).Error("catalog refresh failed", zap.Error(err))
		return err
	}
	s.store.ReplaceCatalog(s.normalizer.NormalizeAll(raws))
	prefix := raws
	if len(prefix) > s.trendingSize {
		prefix = prefix[:s.trendingSize]
	}
	s.store.ReplaceTrending(s.normalizer.NormalizeTrending(prefix))
	s.setStatus(StatusSucceeded, "")
	logutil.GetLogger(ctx).Info("catalog refreshed", zap.Int("memes", len(raws)))
	return nil
}

// GetByID serves from memory when possible; otherwise it fetches the
// catalog fresh and searches there. A miss on both sides is NotFound.
// Successful lookups move the current-meme pointer.
func (s *MemeService) GetByID(ctx context.Context, id string) (model.Meme, error) {
	if meme, ok := s.store.Get(id); ok {
		return meme, nil
	}
	raws, err := s.upstream.GetMemes(ctx)
	if err != nil {
		return model.Meme{}, err
	}
	for _, raw := range raws {
		if raw.ID != id {
			continue
		}
		meme := s.normalizer.Normalize(raw)
		s.store.PutCurrent(meme)
		return meme, nil
	}
	return model.Meme{}, appErr.ErrNotFound
}

// ToggleLike flips the like state and persists the liked set before
// returning. Persistence runs on every toggle, including unlikes.
func (s *MemeService) ToggleLike(ctx context.Context, id string) (bool, int, error) {
	liked, likes := s.store.ToggleLike(id)
	if err := s.liked.Save(ctx, s.store.LikedIDs()); err != nil {
		logutil.GetLogger(ctx).Error("persist liked set failed", zap.Error(err))
		return liked, likes, err
	}
	return liked, likes, nil
}

// AddComment validates and appends a comment to the meme.
func (s *MemeService) AddComment(ctx context.Context, memeID, text, user string) (model.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return model.Comment{}, appErr.ErrInvalid
	}
	comment := model.Comment{
		ID:        newID(),
		Text:      text,
		User:      user,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if !s.store.AddComment(memeID, comment) {
		return model.Comment{}, appErr.ErrNotFound
	}
	return comment, nil
}

type UploadInput struct {
	Name     string
	URL      string
	Category string
	Uploader string
}

// Upload creates a locally constructed meme record. There is no real
// upload transport; the record lives in memory for the process
// lifetime.
func (s *MemeService) Upload(ctx context.Context, input UploadInput) (model.Meme, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.URL) == "" {
		return model.Meme{}, appErr.ErrInvalid
	}
	meme := model.Meme{
		ID:         newID(),
		Name:       input.Name,
		URL:        input.URL,
		Width:      500,
		Height:     500,
		BoxCount:   2,
		Category:   input.Category,
		Likes:      0,
		Comments:   []model.Comment{},
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
		UploadedBy: input.Uploader,
	}
	s.store.AddUserMeme(meme)
	logutil.GetLogger(ctx).Info("user meme added", zap.String("id", meme.ID), zap.String("name", meme.Name))
	return meme, nil
}

// InitLikedState rehydrates the liked set from the persistence slot.
// Safe to call repeatedly; the latest load wins.
func (s *MemeService) InitLikedState(ctx context.Context) error {
	ids, err := s.liked.Load(ctx)
	if err != nil {
		return err
	}
	s.store.SetLiked(ids)
	return nil
}

func (s *MemeService) Catalog() []model.Meme {
	return s.store.Catalog()
}

func (s *MemeService) Trending() []model.Meme {
	return s.store.Trending()
}

func (s *MemeService) UserMemes() []model.Meme {
	return s.store.UserMemes()
}

func (s *MemeService) LikedMemes() []model.Meme {
	return s.store.LikedMemes()
}

func (s *MemeService) IsLiked(id string) bool {
	return s.store.IsLiked(id)
}

func (s *MemeService) Status() (FetchStatus, string) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	return s.status, s.lastError
}

func (s *MemeService) setStatus(status FetchStatus, message string) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status = status
	s.lastError = message
}
