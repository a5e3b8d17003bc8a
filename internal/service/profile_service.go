package service

import (
	"strings"
	"sync"
	"time"

	"github.com/memeverse/memeverse/internal/config"
	"github.com/memeverse/memeverse/internal/model"
	appErr "github.com/memeverse/memeverse/internal/pkg/errors"
)

// ProfileService holds the single demo profile. There is no identity
// system behind it: no auth, no session, one user.
type ProfileService struct {
	mu   sync.Mutex
	user model.User
}

func NewProfileService(cfg config.ProfileConfig) *ProfileService {
	return &ProfileService{
		user: model.User{
			ID:        "1",
			Name:      cfg.Name,
			Email:     cfg.Email,
			Bio:       cfg.Bio,
			AvatarURL: cfg.AvatarURL,
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
		},
	}
}

func (s *ProfileService) Profile() model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// UpdateProfile changes name and bio. An empty name aborts with no
// partial effect.
func (s *ProfileService) UpdateProfile(name, bio string) (model.User, error) {
	if strings.TrimSpace(name) == "" {
		return model.User{}, appErr.ErrInvalid
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user.Name = name
	s.user.Bio = bio
	return s.user, nil
}
