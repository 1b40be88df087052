package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"wellbeing-video-service/internal/config"
)

// NewRedis connects to the Redis instance that backs the tool endpoint's
// rate-limit counters. Nothing else is stored there; recommendation results
// are never cached.
func NewRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:       cfg.Addr,
		Password:   cfg.Password,
		DB:         cfg.DB,
		ClientName: "wellbeing-video-service-ratelimit",
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	slog.Info("connected to Redis rate-limit backend", "addr", cfg.Addr, "db", cfg.DB)
	return client, nil
}
