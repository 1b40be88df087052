package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"wellbeing-video-service/internal/config"
	"wellbeing-video-service/internal/database"
	"wellbeing-video-service/internal/handler"
	"wellbeing-video-service/internal/middleware"
	"wellbeing-video-service/internal/repository"
	"wellbeing-video-service/internal/service"
	"wellbeing-video-service/internal/youtube"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	startupCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// Optional PostgreSQL run log
	var (
		runStore service.RunStore
		runList  handler.RunLister
	)
	if cfg.DB.Enabled {
		db, err := database.NewPostgres(startupCtx, cfg.DB)
		if err != nil {
			slog.Error("run log disabled, PostgreSQL unavailable", "error", err)
		} else {
			defer db.Close()
			repo := repository.NewRunRepository(db)
			runStore, runList = repo, repo
		}
	}

	// Optional Redis rate limiter
	var limiter fiber.Handler
	if cfg.Redis.Enabled {
		rdb, err := database.NewRedis(startupCtx, cfg.Redis)
		if err != nil {
			slog.Error("rate limiting disabled, Redis unavailable", "error", err)
		} else {
			defer rdb.Close()
			rl := middleware.NewRateLimiter(middleware.NewRedisCounter(rdb), cfg.RateLimit.Max, cfg.RateLimit.WindowSeconds)
			limiter = rl.Handler()
		}
	}

	if cfg.YouTube.APIKey == "" {
		slog.Warn("YOUTUBE_API_KEY not set, every search will return no videos")
	}

	// Initialize layers
	yt := youtube.NewClient(youtube.Options{
		APIKey:            cfg.YouTube.APIKey,
		BaseURL:           cfg.YouTube.BaseURL,
		Timeout:           cfg.YouTube.Timeout,
		RequestsPerSecond: cfg.YouTube.RequestsPerSecond,
	})
	svc := service.NewRecommendationService(yt, runStore, cfg.ParallelCatalog)
	tool := service.NewToolService(svc)
	h := handler.NewRecommendationHandler(tool, runList)

	// Load swagger spec
	swaggerYAML, err := os.ReadFile("docs/swagger.yaml")
	if err != nil {
		slog.Warn("swagger spec not found, swagger UI will be unavailable", "error", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      "wellbeing-video-service",
		ServerHeader: "wellbeing-video-service",
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	if swaggerYAML != nil {
		handler.RegisterSwagger(app, "Wellbeing Video Service", swaggerYAML)
	}

	// Routes
	app.Get("/health", h.Health)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api/v1")
	api.Get("/tools", h.ListTools)
	api.Get("/runs", h.ListRuns)
	if limiter != nil {
		api.Post("/tools/"+service.ToolName, limiter, h.RecommendYouTubeVideos)
	} else {
		api.Post("/tools/"+service.ToolName, h.RecommendYouTubeVideos)
	}

	go func() {
		slog.Info("wellbeing-video-service starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server error", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down wellbeing-video-service")
	_ = app.Shutdown()
}
