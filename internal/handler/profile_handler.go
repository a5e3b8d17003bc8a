package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/memeverse/memeverse/internal/pkg/errcode"
	"github.com/memeverse/memeverse/internal/pkg/response"
	"github.com/memeverse/memeverse/internal/service"
)

type ProfileHandler struct {
	profile *service.ProfileService
	memes   *service.MemeService
}

func NewProfileHandler(profile *service.ProfileService, memes *service.MemeService) *ProfileHandler {
	return &ProfileHandler{profile: profile, memes: memes}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	response.Success(c, h.profile.Profile())
}

type profileUpdateRequest struct {
	Name string `json:"name"`
	Bio  string `json:"bio"`
}

func (h *ProfileHandler) Update(c *gin.Context) {
	var req profileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errcode.ErrInvalid, "invalid request")
		return
	}
	user, err := h.profile.UpdateProfile(req.Name, req.Bio)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, user)
}

func (h *ProfileHandler) Memes(c *gin.Context) {
	response.Success(c, gin.H{"memes": h.memes.UserMemes()})
}

func (h *ProfileHandler) Liked(c *gin.Context) {
	response.Success(c, gin.H{"memes": h.memes.LikedMemes()})
}
