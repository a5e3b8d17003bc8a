package handler

import (
	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	Memes       *MemeHandler
	Explore     *ExploreHandler
	Profile     *ProfileHandler
	Leaderboard *LeaderboardHandler
}

func RegisterRoutes(api *gin.RouterGroup, deps RouterDeps) {
	api.GET("/memes", deps.Memes.List)
	api.GET("/memes/trending", deps.Memes.Trending)
	api.GET("/memes/:id", deps.Memes.Get)
	api.POST("/memes/:id/like", deps.Memes.Like)
	api.POST("/memes/:id/comments", deps.Memes.Comment)
	api.POST("/memes/upload", deps.Memes.Upload)

	api.GET("/explore", deps.Explore.Get)
	api.POST("/explore/filter", deps.Explore.SetFilter)
	api.POST("/explore/search", deps.Explore.SetSearch)
	api.POST("/explore/sort", deps.Explore.SetSort)
	api.POST("/explore/more", deps.Explore.More)

	api.GET("/profile", deps.Profile.Get)
	api.PUT("/profile", deps.Profile.Update)
	api.GET("/profile/memes", deps.Profile.Memes)
	api.GET("/profile/liked", deps.Profile.Liked)

	api.GET("/leaderboard", deps.Leaderboard.Get)
	api.GET("/status", deps.Memes.Status)
}
