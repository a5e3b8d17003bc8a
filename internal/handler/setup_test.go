package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/xxxsen/common/webapi"

	"github.com/memeverse/memeverse/internal/config"
	"github.com/memeverse/memeverse/internal/handler"
	"github.com/memeverse/memeverse/internal/likedstore"
	"github.com/memeverse/memeverse/internal/middleware"
	"github.com/memeverse/memeverse/internal/query"
	"github.com/memeverse/memeverse/internal/service"
	"github.com/memeverse/memeverse/internal/store"
	"github.com/memeverse/memeverse/internal/upstream"
)

type apiResult struct {
	Code int                    `json:"code"`
	Msg  string                 `json:"msg"`
	Data map[string]interface{} `json:"data"`
}

func upstreamServer(t *testing.T, count int) *httptest.Server {
	t.Helper()
	memes := make([]map[string]interface{}, 0, count)
	for i := 0; i < count; i++ {
		memes = append(memes, map[string]interface{}{
			"id":        fmt.Sprintf("id-%02d", i),
			"name":      fmt.Sprintf("Meme %02d", i),
			"url":       fmt.Sprintf("https://i.imgflip.com/%02d.jpg", i),
			"width":     500,
			"height":    500,
			"box_count": 2,
		})
	}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"memes": memes},
		})
	}))
}

func setupRouter(t *testing.T, memeCount int) (http.Handler, *service.MemeService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := upstreamServer(t, memeCount)
	t.Cleanup(srv.Close)

	liked, err := likedstore.New(config.LikedStoreConfig{
		Type: "local",
		Data: map[string]interface{}{"path": filepath.Join(t.TempDir(), "liked.json")},
	})
	require.NoError(t, err)

	client := upstream.NewClient(srv.URL, time.Second, 0)
	memeStore := store.New()
	memeService := service.NewMemeService(client, memeStore, liked, upstream.NewNormalizer(), 10)
	profileService := service.NewProfileService(config.ProfileConfig{Name: "Meme Lover", Bio: "I love creating and sharing memes!"})
	leaderboardService := service.NewLeaderboardService(memeStore)
	// zero search delay: commits are synchronous in tests
	sessions := query.NewManager(query.Options{}, 16, time.Minute)

	deps := handler.RouterDeps{
		Memes:       handler.NewMemeHandler(memeService, profileService),
		Explore:     handler.NewExploreHandler(memeService, sessions),
		Profile:     handler.NewProfileHandler(profileService, memeService),
		Leaderboard: handler.NewLeaderboardHandler(leaderboardService),
	}

	engine, err := webapi.NewEngine(
		"/api/v1",
		"",
		webapi.WithRegister(func(group *gin.RouterGroup) {
			handler.RegisterRoutes(group, deps)
		}),
		webapi.WithExtraMiddlewares(
			middleware.RequestID(),
			middleware.CORS(nil),
		),
	)
	require.NoError(t, err)
	return engine, memeService
}

func doJSON(t *testing.T, router http.Handler, method, path string, body string, headers map[string]string) apiResult {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)

	var result apiResult
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	return result
}
