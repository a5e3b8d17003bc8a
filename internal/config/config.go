package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xxxsen/common/logger"
)

type Config struct {
	Port             int              `json:"port"`
	LogConfig        logger.LogConfig `json:"log_config"`
	Upstream         UpstreamConfig   `json:"upstream"`
	LikedStore       LikedStoreConfig `json:"liked_store"`
	Explore          ExploreConfig    `json:"explore"`
	RefreshCron      string           `json:"refresh_cron"`
	CORSAllowOrigins []string         `json:"cors_allow_origins"`
	Profile          ProfileConfig    `json:"profile"`
}

type UpstreamConfig struct {
	BaseURL         string `json:"base_url"`
	TimeoutSeconds  int    `json:"timeout_seconds"`
	CacheTTLSeconds int    `json:"cache_ttl_seconds"`
	TrendingSize    int    `json:"trending_size"`
}

type LikedStoreConfig struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type ExploreConfig struct {
	PageSize          int `json:"page_size"`
	PageStep          int `json:"page_step"`
	SearchDebounceMS  int `json:"search_debounce_ms"`
	SessionTTLMinutes int `json:"session_ttl_minutes"`
}

type ProfileConfig struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Port == 0 {
		return nil, fmt.Errorf("port is required")
	}
	if cfg.LogConfig.Level == "" {
		cfg.LogConfig.Level = "info"
	}
	if cfg.Upstream.BaseURL == "" {
		cfg.Upstream.BaseURL = "https://api.imgflip.com"
	}
	if cfg.Upstream.TimeoutSeconds <= 0 {
		cfg.Upstream.TimeoutSeconds = 10
	}
	if cfg.Upstream.CacheTTLSeconds < 0 {
		cfg.Upstream.CacheTTLSeconds = 0
	}
	if cfg.Upstream.TrendingSize <= 0 {
		cfg.Upstream.TrendingSize = 10
	}
	if cfg.LikedStore.Type == "" {
		cfg.LikedStore.Type = "local"
	}
	if cfg.LikedStore.Type == "local" && cfg.LikedStore.Data == nil {
		cfg.LikedStore.Data = map[string]interface{}{"path": "liked_memes.json"}
	}
	if cfg.Explore.PageSize <= 0 {
		cfg.Explore.PageSize = 12
	}
	if cfg.Explore.PageStep <= 0 {
		cfg.Explore.PageStep = 8
	}
	if cfg.Explore.SearchDebounceMS < 0 {
		cfg.Explore.SearchDebounceMS = 0
	} else if cfg.Explore.SearchDebounceMS == 0 {
		cfg.Explore.SearchDebounceMS = 500
	}
	if cfg.Explore.SessionTTLMinutes <= 0 {
		cfg.Explore.SessionTTLMinutes = 30
	}
	if cfg.RefreshCron == "" {
		cfg.RefreshCron = "*/30 * * * *"
	}
	if cfg.Profile.Name == "" {
		cfg.Profile.Name = "Meme Lover"
	}
	if cfg.Profile.Bio == "" {
		cfg.Profile.Bio = "I love creating and sharing memes!"
	}
	return &cfg, nil
}
