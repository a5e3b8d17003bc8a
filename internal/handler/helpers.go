package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/memeverse/memeverse/internal/pkg/errcode"
	appErr "github.com/memeverse/memeverse/internal/pkg/errors"
	"github.com/memeverse/memeverse/internal/pkg/response"
)

func handleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	requestID, _ := c.Get("request_id")
	logutil.GetLogger(c.Request.Context()).Warn("request failed",
		zap.Any("request_id", requestID),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	switch {
	case errors.Is(err, appErr.ErrNotFound):
		response.Error(c, errcode.ErrNotFound, "meme not found")
	case errors.Is(err, appErr.ErrInvalid):
		response.Error(c, errcode.ErrInvalid, "invalid request")
	case errors.Is(err, appErr.ErrFetchFailed):
		response.Error(c, errcode.ErrUpstreamFailed, "upstream fetch failed")
	default:
		response.Error(c, errcode.ErrInternal, "internal error")
	}
}

// sessionID picks the explore session key: an explicit header when the
// client sends one, otherwise the client address.
func sessionID(c *gin.Context) string {
	if id := c.GetHeader("X-Session-Id"); id != "" {
		return id
	}
	return c.ClientIP()
}
