package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/memeverse/memeverse/internal/pkg/errcode"
	"github.com/memeverse/memeverse/internal/pkg/response"
	"github.com/memeverse/memeverse/internal/query"
	"github.com/memeverse/memeverse/internal/service"
)

type ExploreHandler struct {
	memes    *service.MemeService
	sessions *query.Manager
}

func NewExploreHandler(memes *service.MemeService, sessions *query.Manager) *ExploreHandler {
	return &ExploreHandler{memes: memes, sessions: sessions}
}

func (h *ExploreHandler) view(c *gin.Context, session *query.Session) {
	window, total, params := session.View(h.memes.Catalog())
	response.Success(c, gin.H{
		"memes":  window,
		"count":  len(window),
		"total":  total,
		"params": params,
	})
}

func (h *ExploreHandler) Get(c *gin.Context) {
	h.view(c, h.sessions.Get(sessionID(c)))
}

type filterRequest struct {
	Filter string `json:"filter"`
}

func (h *ExploreHandler) SetFilter(c *gin.Context) {
	var req filterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errcode.ErrInvalid, "invalid request")
		return
	}
	session := h.sessions.Get(sessionID(c))
	session.SetFilter(req.Filter)
	h.view(c, session)
}

type searchRequest struct {
	Term string `json:"term"`
}

// SetSearch commits through the session debouncer: the response shows
// the state as of now, the term lands after the quiet window.
func (h *ExploreHandler) SetSearch(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errcode.ErrInvalid, "invalid request")
		return
	}
	session := h.sessions.Get(sessionID(c))
	session.SetSearch(req.Term)
	h.view(c, session)
}

type sortRequest struct {
	Key string `json:"key"`
}

func (h *ExploreHandler) SetSort(c *gin.Context) {
	var req sortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errcode.ErrInvalid, "invalid request")
		return
	}
	key := query.SortKey(req.Key)
	switch key {
	case query.SortNone, query.SortLikes, query.SortDate:
	default:
		response.Error(c, errcode.ErrInvalid, "sort key must be none, likes or date")
		return
	}
	session := h.sessions.Get(sessionID(c))
	session.SelectSort(key)
	h.view(c, session)
}

func (h *ExploreHandler) More(c *gin.Context) {
	session := h.sessions.Get(sessionID(c))
	session.More()
	h.view(c, session)
}
