package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logger"
	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/common/webapi"
	"go.uber.org/zap"

	"github.com/memeverse/memeverse/internal/config"
	"github.com/memeverse/memeverse/internal/handler"
	"github.com/memeverse/memeverse/internal/job"
	"github.com/memeverse/memeverse/internal/likedstore"
	"github.com/memeverse/memeverse/internal/middleware"
	"github.com/memeverse/memeverse/internal/query"
	"github.com/memeverse/memeverse/internal/schedule"
	"github.com/memeverse/memeverse/internal/service"
	"github.com/memeverse/memeverse/internal/store"
	"github.com/memeverse/memeverse/internal/upstream"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "memeverse",
		Short: "memeverse backend server",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run memeverse server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				return fmt.Errorf("--config is required")
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger.Init(
				cfg.LogConfig.File,
				cfg.LogConfig.Level,
				int(cfg.LogConfig.FileCount),
				int(cfg.LogConfig.FileSize),
				int(cfg.LogConfig.KeepDays),
				cfg.LogConfig.Console,
			)
			logutil.GetLogger(context.Background()).Info("config loaded", zap.String("config", configPath))
			return runServer(cfg)
		},
	}

	runCmd.Flags().StringVar(&configPath, "config", "", "path to config.json")
	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		logutil.GetLogger(context.Background()).Fatal("startup error", zap.Error(err))
	}
}

func runServer(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logutil.GetLogger(ctx).Info(
		"starting server",
		zap.Int("port", cfg.Port),
		zap.String("upstream", cfg.Upstream.BaseURL),
		zap.String("liked_store", cfg.LikedStore.Type),
	)

	liked, err := likedstore.New(cfg.LikedStore)
	if err != nil {
		return fmt.Errorf("init liked store: %w", err)
	}

	client := upstream.NewClient(
		cfg.Upstream.BaseURL,
		time.Duration(cfg.Upstream.TimeoutSeconds)*time.Second,
		time.Duration(cfg.Upstream.CacheTTLSeconds)*time.Second,
	)
	memeStore := store.New()
	memeService := service.NewMemeService(client, memeStore, liked, upstream.NewNormalizer(), cfg.Upstream.TrendingSize)
	profileService := service.NewProfileService(cfg.Profile)
	leaderboardService := service.NewLeaderboardService(memeStore)

	if err := memeService.InitLikedState(ctx); err != nil {
		return fmt.Errorf("load liked state: %w", err)
	}
	// a failed initial hydration is not fatal: the status flag carries
	// it and the refresh job retries on schedule
	if err := memeService.Refresh(ctx); err != nil {
		logutil.GetLogger(ctx).Warn("initial catalog fetch failed", zap.Error(err))
	}

	sessions := query.NewManager(query.Options{
		PageSize:    cfg.Explore.PageSize,
		PageStep:    cfg.Explore.PageStep,
		SearchDelay: time.Duration(cfg.Explore.SearchDebounceMS) * time.Millisecond,
	}, 0, time.Duration(cfg.Explore.SessionTTLMinutes)*time.Minute)

	deps := handler.RouterDeps{
		Memes:       handler.NewMemeHandler(memeService, profileService),
		Explore:     handler.NewExploreHandler(memeService, sessions),
		Profile:     handler.NewProfileHandler(profileService, memeService),
		Leaderboard: handler.NewLeaderboardHandler(leaderboardService),
	}

	scheduler := schedule.NewCronScheduler()
	if err := scheduler.AddJob(job.NewCatalogRefreshJob(memeService), cfg.RefreshCron); err != nil {
		return fmt.Errorf("schedule catalog refresh: %w", err)
	}
	scheduler.Start(ctx)
	defer scheduler.Stop()

	engine, err := webapi.NewEngine(
		"/api/v1",
		fmt.Sprintf("0.0.0.0:%d", cfg.Port),
		webapi.WithRegister(func(group *gin.RouterGroup) {
			handler.RegisterRoutes(group, deps)
		}),
		webapi.WithExtraMiddlewares(
			middleware.RequestID(),
			middleware.CORS(cfg.CORSAllowOrigins),
			gzip.Gzip(gzip.DefaultCompression),
		),
	)
	if err != nil {
		return fmt.Errorf("init web engine: %w", err)
	}
	logutil.GetLogger(ctx).Info("http server listening", zap.String("addr", fmt.Sprintf("0.0.0.0:%d", cfg.Port)))

	go func() {
		if err := engine.Run(); err != nil && err != http.ErrServerClosed {
			logutil.GetLogger(context.Background()).Error("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logutil.GetLogger(context.Background()).Info("server stopping...")
	return nil
}
