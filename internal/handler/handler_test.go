package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/memeverse/memeverse/internal/pkg/errcode"
)

func TestListAndTrending(t *testing.T) {
	router, svc := setupRouter(t, 25)
	require.NoError(t, svc.Refresh(context.Background()))

	result := doJSON(t, router, http.MethodGet, "/api/v1/memes", "", nil)
	require.Equal(t, 0, result.Code)
	require.Len(t, result.Data["memes"], 25)
	require.Equal(t, "succeeded", result.Data["status"])

	result = doJSON(t, router, http.MethodGet, "/api/v1/memes/trending", "", nil)
	require.Len(t, result.Data["memes"], 10)
}

func TestGetMemeAndNotFound(t *testing.T) {
	router, svc := setupRouter(t, 5)
	require.NoError(t, svc.Refresh(context.Background()))

	result := doJSON(t, router, http.MethodGet, "/api/v1/memes/id-02", "", nil)
	require.Equal(t, 0, result.Code)
	meme := result.Data["meme"].(map[string]interface{})
	require.Equal(t, "Meme 02", meme["name"])
	require.Equal(t, false, result.Data["liked"])

	result = doJSON(t, router, http.MethodGet, "/api/v1/memes/missing", "", nil)
	require.Equal(t, errcode.ErrNotFound, result.Code)
}

func TestLikeRoundTrip(t *testing.T) {
	router, svc := setupRouter(t, 5)
	require.NoError(t, svc.Refresh(context.Background()))
	base := svc.Catalog()[0].Likes

	result := doJSON(t, router, http.MethodPost, "/api/v1/memes/id-00/like", "", nil)
	require.Equal(t, true, result.Data["liked"])
	require.Equal(t, float64(base+1), result.Data["likes"])

	result = doJSON(t, router, http.MethodPost, "/api/v1/memes/id-00/like", "", nil)
	require.Equal(t, false, result.Data["liked"])
	require.Equal(t, float64(base), result.Data["likes"])
}

func TestCommentValidation(t *testing.T) {
	router, svc := setupRouter(t, 5)
	require.NoError(t, svc.Refresh(context.Background()))

	result := doJSON(t, router, http.MethodPost, "/api/v1/memes/id-00/comments", `{"text":"   "}`, nil)
	require.Equal(t, errcode.ErrInvalid, result.Code)

	result = doJSON(t, router, http.MethodPost, "/api/v1/memes/id-00/comments", `{"text":"first!"}`, nil)
	require.Equal(t, 0, result.Code)
	require.Equal(t, "first!", result.Data["text"])
	require.Equal(t, "Meme Lover", result.Data["user"])
}

func TestUpload(t *testing.T) {
	router, svc := setupRouter(t, 3)
	require.NoError(t, svc.Refresh(context.Background()))

	result := doJSON(t, router, http.MethodPost, "/api/v1/memes/upload", `{"name":"","url":""}`, nil)
	require.Equal(t, errcode.ErrInvalid, result.Code)

	result = doJSON(t, router, http.MethodPost, "/api/v1/memes/upload", `{"name":"Mine","url":"https://example.com/m.jpg","category":"New"}`, nil)
	require.Equal(t, 0, result.Code)
	require.Equal(t, "Mine", result.Data["name"])
	require.Equal(t, "Meme Lover", result.Data["uploaded_by"])

	result = doJSON(t, router, http.MethodGet, "/api/v1/profile/memes", "", nil)
	require.Len(t, result.Data["memes"], 1)
}

func TestExploreFlow(t *testing.T) {
	router, svc := setupRouter(t, 40)
	require.NoError(t, svc.Refresh(context.Background()))
	headers := map[string]string{"X-Session-Id": "client-a"}

	result := doJSON(t, router, http.MethodGet, "/api/v1/explore", "", headers)
	require.Equal(t, float64(12), result.Data["count"])
	require.Equal(t, float64(40), result.Data["total"])

	result = doJSON(t, router, http.MethodPost, "/api/v1/explore/more", "", headers)
	require.Equal(t, float64(20), result.Data["count"])

	// search committed synchronously (zero delay) and cursor reset
	result = doJSON(t, router, http.MethodPost, "/api/v1/explore/search", `{"term":"Meme 0"}`, headers)
	require.Equal(t, float64(10), result.Data["total"])
	require.Equal(t, float64(10), result.Data["count"])

	result = doJSON(t, router, http.MethodPost, "/api/v1/explore/search", `{"term":""}`, headers)
	require.Equal(t, float64(40), result.Data["total"])
	require.Equal(t, float64(12), result.Data["count"])

	result = doJSON(t, router, http.MethodPost, "/api/v1/explore/sort", `{"key":"likes"}`, headers)
	params := result.Data["params"].(map[string]interface{})
	require.Equal(t, "likes", params["sort_key"])
	require.Equal(t, "desc", params["sort_order"])

	result = doJSON(t, router, http.MethodPost, "/api/v1/explore/sort", `{"key":"likes"}`, headers)
	params = result.Data["params"].(map[string]interface{})
	require.Equal(t, "asc", params["sort_order"])

	result = doJSON(t, router, http.MethodPost, "/api/v1/explore/sort", `{"key":"bogus"}`, headers)
	require.Equal(t, errcode.ErrInvalid, result.Code)

	// a different session has independent state
	other := doJSON(t, router, http.MethodGet, "/api/v1/explore", "", map[string]string{"X-Session-Id": "client-b"})
	otherParams := other.Data["params"].(map[string]interface{})
	require.Equal(t, "none", otherParams["sort_key"])
}

func TestProfileUpdate(t *testing.T) {
	router, _ := setupRouter(t, 3)

	result := doJSON(t, router, http.MethodPut, "/api/v1/profile", `{"name":"","bio":"x"}`, nil)
	require.Equal(t, errcode.ErrInvalid, result.Code)

	result = doJSON(t, router, http.MethodPut, "/api/v1/profile", `{"name":"Chief Memer","bio":"memes all day"}`, nil)
	require.Equal(t, 0, result.Code)
	require.Equal(t, "Chief Memer", result.Data["name"])

	result = doJSON(t, router, http.MethodGet, "/api/v1/profile", "", nil)
	require.Equal(t, "Chief Memer", result.Data["name"])
}

func TestLeaderboard(t *testing.T) {
	router, svc := setupRouter(t, 25)
	require.NoError(t, svc.Refresh(context.Background()))

	result := doJSON(t, router, http.MethodGet, "/api/v1/leaderboard", "", nil)
	memes := result.Data["memes"].([]interface{})
	require.Len(t, memes, 10)
	likes := make([]float64, 0, len(memes))
	for _, m := range memes {
		likes = append(likes, m.(map[string]interface{})["likes"].(float64))
	}
	for i := 1; i < len(likes); i++ {
		require.GreaterOrEqual(t, likes[i-1], likes[i])
	}
	require.Len(t, result.Data["contributors"], 5)
}

func TestStatusEndpoint(t *testing.T) {
	router, _ := setupRouter(t, 3)
	result := doJSON(t, router, http.MethodGet, "/api/v1/status", "", nil)
	require.Equal(t, "idle", result.Data["status"])
}
