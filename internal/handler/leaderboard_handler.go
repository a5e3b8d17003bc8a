package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/memeverse/memeverse/internal/pkg/response"
	"github.com/memeverse/memeverse/internal/service"
)

type LeaderboardHandler struct {
	leaderboard *service.LeaderboardService
}

func NewLeaderboardHandler(leaderboard *service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboard: leaderboard}
}

func (h *LeaderboardHandler) Get(c *gin.Context) {
	response.Success(c, gin.H{
		"memes":        h.leaderboard.TopMemes(),
		"contributors": h.leaderboard.TopContributors(),
	})
}
