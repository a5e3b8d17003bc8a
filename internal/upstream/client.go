// Package upstream talks to the imgflip-style meme source: a single
// read-only endpoint returning the whole catalog at once. No retries,
// no backoff; a failed call surfaces as ErrFetchFailed and the caller
// decides what to do with it.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	appErr "github.com/memeverse/memeverse/internal/pkg/errors"
)

const catalogCacheKey = "catalog"

// RawMeme is the upstream record shape. Likes, category and creation
// date do not exist upstream; normalization synthesizes them.
type RawMeme struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	BoxCount int    `json:"box_count"`
}

type getMemesResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Memes []RawMeme `json:"memes"`
	} `json:"data"`
}

type Client struct {
	baseURL string
	client  *http.Client
	cache   *expirable.LRU[string, []RawMeme]
}

// NewClient builds a catalog client. cacheTTL > 0 keeps the decoded
// catalog around so lookup-miss refetches do not hammer the upstream.
func NewClient(baseURL string, timeout, cacheTTL time.Duration) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
	if cacheTTL > 0 {
		c.cache = expirable.NewLRU[string, []RawMeme](1, nil, cacheTTL)
	}
	return c
}

// GetMemes fetches the full catalog. The upstream has no pagination;
// everything arrives in one response.
func (c *Client) GetMemes(ctx context.Context) ([]RawMeme, error) {
	if c.cache != nil {
		if cached, ok := c.cache.Get(catalogCacheKey); ok {
			return cached, nil
		}
	}
	endpoint := c.baseURL + "/get_memes"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", appErr.ErrFetchFailed, err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", appErr.ErrFetchFailed, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: %s: %s", appErr.ErrFetchFailed, resp.Status, strings.TrimSpace(string(body)))
	}
	var out getMemesResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", appErr.ErrFetchFailed, err)
	}
	if !out.Success {
		return nil, fmt.Errorf("%w: upstream reported failure", appErr.ErrFetchFailed)
	}
	if c.cache != nil {
		c.cache.Add(catalogCacheKey, out.Data.Memes)
	}
	return out.Data.Memes, nil
}
