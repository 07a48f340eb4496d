package config

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// Config holds everything the gateway reads from the environment.
type Config struct {
	ListenAddr     string
	BackendBaseURL string
	BackendTimeout time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	SessionTTL time.Duration
}

// Load reads .env (if present) and builds the configuration with defaults
// suitable for local development.
func Load() *Config {
	// Missing .env is fine in container deployments where env vars come
	// from the orchestrator.
	_ = godotenv.Load()

	return &Config{
		ListenAddr:     getEnv("LISTEN_ADDR", ":8080"),
		BackendBaseURL: getEnv("BACKEND_BASE_URL", "http://localhost:8081/api/v1"),
		BackendTimeout: getDuration("BACKEND_TIMEOUT", 10*time.Second),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        getInt("REDIS_DB", 0),
		SessionTTL:     getDuration("SESSION_TTL", 72*time.Hour),
	}
}

// NewRedisClient connects to Redis using the loaded configuration. Returns
// nil when no address is configured or the server cannot be reached, so the
// caller can degrade to the in-memory token store.
func (c *Config) NewRedisClient() *redis.Client {
	if c.RedisAddr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     c.RedisAddr,
		Password: c.RedisPassword,
		DB:       c.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return client
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
