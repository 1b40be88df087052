package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	DB        DBConfig
	Redis     RedisConfig
	YouTube   YouTubeConfig
	RateLimit RateLimitConfig
	Port      string `validate:"required,numeric"`
	LogLevel  string `validate:"oneof=debug info warn error"`
	// ParallelCatalog fans out per-query catalog retrieval concurrently.
	ParallelCatalog bool
}

type DBConfig struct {
	Enabled     bool
	Host        string `validate:"required_if=Enabled true"`
	Port        int    `validate:"min=0,max=65535"`
	User        string
	Password    string
	DBName      string `validate:"required_if=Enabled true"`
	SSLMode     string
	SSLRootCert string
}

func (d DBConfig) DSN() string {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
	if d.SSLRootCert != "" {
		dsn += fmt.Sprintf(" sslrootcert=%s", d.SSLRootCert)
	}
	return dsn
}

type RedisConfig struct {
	Enabled  bool
	Addr     string `validate:"required_if=Enabled true"`
	Password string
	DB       int `validate:"min=0"`
}

// YouTubeConfig holds the catalog credential and client tuning. An empty
// APIKey is allowed: every search then returns no videos.
type YouTubeConfig struct {
	APIKey            string
	BaseURL           string        `validate:"required,url"`
	Timeout           time.Duration `validate:"gt=0"`
	RequestsPerSecond float64       `validate:"gte=0"`
}

type RateLimitConfig struct {
	Max           int `validate:"min=1"`
	WindowSeconds int `validate:"min=1"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	dbPort, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "3"))
	timeoutSec, _ := strconv.Atoi(getEnv("YOUTUBE_TIMEOUT_SECONDS", "15"))
	rps, _ := strconv.ParseFloat(getEnv("YOUTUBE_REQUESTS_PER_SECOND", "5"), 64)
	rateMax, _ := strconv.Atoi(getEnv("RATE_LIMIT_MAX", "60"))
	rateWindow, _ := strconv.Atoi(getEnv("RATE_LIMIT_WINDOW_SECONDS", "60"))

	cfg := &Config{
		DB: DBConfig{
			Enabled:     getBool("DB_ENABLED", false),
			Host:        getEnv("DB_HOST", "localhost"),
			Port:        dbPort,
			User:        getEnv("DB_USER", "postgres"),
			Password:    getEnv("DB_PASSWORD", "postgres"),
			DBName:      getEnv("DB_NAME", "wellbeing_video_service"),
			SSLMode:     getEnv("DB_SSLMODE", "verify-ca"),
			SSLRootCert: getEnv("DB_SSLROOTCERT", ""),
		},
		Redis: RedisConfig{
			Enabled:  getBool("REDIS_ENABLED", false),
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		YouTube: YouTubeConfig{
			APIKey:            os.Getenv("YOUTUBE_API_KEY"),
			BaseURL:           getEnv("YOUTUBE_BASE_URL", "https://www.googleapis.com/youtube/v3"),
			Timeout:           time.Duration(timeoutSec) * time.Second,
			RequestsPerSecond: rps,
		},
		RateLimit: RateLimitConfig{
			Max:           rateMax,
			WindowSeconds: rateWindow,
		},
		Port:            getEnv("SERVER_PORT", "8084"),
		LogLevel:        strings.ToLower(getEnv("LOG_LEVEL", "info")),
		ParallelCatalog: getBool("CATALOG_PARALLEL", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the struct tags of cfg.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// SlogLevel returns the configured log level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
