package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/memeverse/memeverse/internal/pkg/errcode"
	"github.com/memeverse/memeverse/internal/pkg/response"
	"github.com/memeverse/memeverse/internal/service"
)

type MemeHandler struct {
	memes   *service.MemeService
	profile *service.ProfileService
}

func NewMemeHandler(memes *service.MemeService, profile *service.ProfileService) *MemeHandler {
	return &MemeHandler{memes: memes, profile: profile}
}

func (h *MemeHandler) List(c *gin.Context) {
	status, _ := h.memes.Status()
	response.Success(c, gin.H{
		"memes":  h.memes.Catalog(),
		"status": status,
	})
}

func (h *MemeHandler) Trending(c *gin.Context) {
	response.Success(c, gin.H{"memes": h.memes.Trending()})
}

func (h *MemeHandler) Get(c *gin.Context) {
	id := c.Param("id")
	meme, err := h.memes.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{
		"meme":  meme,
		"liked": h.memes.IsLiked(id),
	})
}

func (h *MemeHandler) Like(c *gin.Context) {
	liked, likes, err := h.memes.ToggleLike(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"liked": liked, "likes": likes})
}

type commentRequest struct {
	Text string `json:"text"`
	User string `json:"user"`
}

func (h *MemeHandler) Comment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errcode.ErrInvalid, "invalid request")
		return
	}
	user := req.User
	if user == "" {
		user = h.profile.Profile().Name
	}
	comment, err := h.memes.AddComment(c.Request.Context(), c.Param("id"), req.Text, user)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, comment)
}

type uploadRequest struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Category string `json:"category"`
}

func (h *MemeHandler) Upload(c *gin.Context) {
	var req uploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errcode.ErrInvalid, "invalid request")
		return
	}
	meme, err := h.memes.Upload(c.Request.Context(), service.UploadInput{
		Name:     req.Name,
		URL:      req.URL,
		Category: req.Category,
		Uploader: h.profile.Profile().Name,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, meme)
}

func (h *MemeHandler) Status(c *gin.Context) {
	status, message := h.memes.Status()
	response.Success(c, gin.H{"status": status, "error": message})
}
