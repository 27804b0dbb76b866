package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds application configuration loaded from environment variables
// Provide sane defaults for local development.
type Config struct {
	AppName string
	Env     string // development, staging, production

	// Snapshot storage
	StorageBackend string // file, redis, memory
	StateDir       string // file backend: one JSON file per snapshot key

	// Redis (when StorageBackend == "redis")
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Identity backend
	IdentityBackendURL string
	IdentityTimeout    time.Duration

	// Store defaults
	BaseCurrency    string
	DefaultLanguage string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		return d
	}
	return def
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		AppName: getenv("APP_NAME", "storefront-state"),
		Env:     getenv("APP_ENV", "development"),

		StorageBackend: getenv("STORAGE_BACKEND", "file"),
		StateDir:       getenv("STATE_DIR", ".storefront"),

		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		RedisDB:       getint("REDIS_DB", 0),

		IdentityBackendURL: getenv("IDENTITY_BACKEND_URL", ""),
		IdentityTimeout:    getdur("IDENTITY_TIMEOUT", 10*time.Second),

		BaseCurrency:    getenv("BASE_CURRENCY", "USD"),
		DefaultLanguage: getenv("DEFAULT_LANGUAGE", "en"),
	}
}

// IsDevelopment reports whether the app runs in development mode.
// Development mode enables the seeded identity table and local registration.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
