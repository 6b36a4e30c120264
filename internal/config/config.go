// internal/config/config.go
//
// All runtime configuration is read once at process start and passed down
// explicitly. Request handlers never consult the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config carries everything the server needs at startup.
type Config struct {
	ListenAddr string

	DatabaseURL string

	// RedisAddr may be empty, in which case the leaderboard mirror is
	// disabled and reads fall back to SQL.
	RedisAddr string
	RedisDB   int

	// JWTSecret signs and verifies session tokens. Empty is fatal.
	JWTSecret string
	TokenTTL  time.Duration
}

// ErrMissingSecret is returned when JWT_SECRET is absent. The caller must
// treat it as fatal rather than serve degraded requests.
var ErrMissingSecret = errors.New("JWT_SECRET environment variable is not set")

// Load builds a Config from the environment (godotenv has already folded
// any .env file in by the time mains call this).
func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr:  ":" + getEnv("PORT", "3000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		TokenTTL:    7 * 24 * time.Hour,
	}

	if cfg.JWTSecret == "" {
		return nil, ErrMissingSecret
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s",
			getEnv("POSTGRES_USER", "postgres"),
			getEnv("POSTGRES_PASSWORD", "postgres"),
			getEnv("PG_HOST", "localhost"),
			getEnv("PG_PORT", "5432"),
			getEnv("PG_DATABASE", "quizparty"),
		)
	}

	if db := os.Getenv("REDIS_DB"); db != "" {
		n, err := strconv.Atoi(db)
		if err != nil {
			return nil, fmt.Errorf("failed to parse REDIS_DB: %w", err)
		}
		cfg.RedisDB = n
	}

	if ttl := os.Getenv("TOKEN_EXPIRE_TIME"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("failed to parse TOKEN_EXPIRE_TIME: %w", err)
		}
		cfg.TokenTTL = d
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}
