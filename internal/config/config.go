package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr                  string
	DBPath                string
	LogLevel              string
	NotifyWorkerCount     int
	NotifyQueueSize       int
	ProgressionWebhookURL string
	DefaultSessionSize    int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:                  envOr("ADDR", ":8080"),
		DBPath:                envOr("DB_PATH", "file:keydrill.db"),
		LogLevel:              envOr("LOG_LEVEL", "INFO"),
		NotifyWorkerCount:     envIntOr("NOTIFY_WORKER_COUNT", 1),
		NotifyQueueSize:       envIntOr("NOTIFY_QUEUE_SIZE", 32),
		ProgressionWebhookURL: envOr("PROGRESSION_WEBHOOK_URL", ""),
		DefaultSessionSize:    envIntOr("DEFAULT_SESSION_SIZE", 20),
	}
}

// Validate checks the configuration and reports every problem found.
func (c Config) Validate() error {
	var problems []string
	if c.Addr == "" {
		problems = append(problems, "ADDR cannot be empty")
	}
	if c.DBPath == "" {
		problems = append(problems, "DB_PATH cannot be empty")
	}
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		problems = append(problems, fmt.Sprintf("LOG_LEVEL %q is not one of DEBUG, INFO, WARN, ERROR", c.LogLevel))
	}
	if c.NotifyWorkerCount < 1 {
		problems = append(problems, "NOTIFY_WORKER_COUNT must be at least 1")
	}
	if c.NotifyQueueSize < 1 {
		problems = append(problems, "NOTIFY_QUEUE_SIZE must be at least 1")
	}
	if c.DefaultSessionSize < 0 {
		problems = append(problems, "DEFAULT_SESSION_SIZE cannot be negative")
	}
	if c.ProgressionWebhookURL != "" {
		u, err := url.Parse(c.ProgressionWebhookURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			problems = append(problems, fmt.Sprintf("PROGRESSION_WEBHOOK_URL %q must be an http(s) URL", c.ProgressionWebhookURL))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
