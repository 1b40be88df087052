package database

import (
	"context"
	"strings"
	"testing"
	"time"

	"wellbeing-video-service/internal/config"
)

func TestNewRedis_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	// Port 1 is reserved and nothing listens on it.
	client, err := NewRedis(ctx, config.RedisConfig{Enabled: true, Addr: "127.0.0.1:1"})
	if err == nil {
		client.Close()
		t.Fatal("expected error for unreachable Redis")
	}
	if client != nil {
		t.Error("client should be nil on failed ping")
	}
	if !strings.Contains(err.Error(), "failed to connect to Redis") {
		t.Errorf("err=%v", err)
	}
}
