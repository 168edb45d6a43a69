// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Store backends
const (
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreJSON     = "json"
)

// Defaults
const (
	DefaultPort         = 4000
	DefaultDBPath       = "./vpm.db"
	DefaultJSONPath     = "./data/data.json"
	DefaultGeminiModel  = "gemini-1.5-flash"
	DefaultAIRateLimit  = 20
	DefaultAITimeout    = 30 * time.Second
	DefaultShutdownWait = 10 * time.Second
)

type Config struct {
	Port         int
	Store        string
	DBPath       string
	DatabaseURL  string
	JSONPath     string
	ClientOrigin string

	GeminiAPIKey string
	GeminiModel  string
	AIRateLimit  int
	AITimeout    time.Duration

	ShutdownWait time.Duration
}

// AIEnabled reports whether an API key for the text-generation service is set.
func (c Config) AIEnabled() bool {
	return c.GeminiAPIKey != ""
}

// ParseFlags loads the env file, then validates flags and fills the rest
// from the environment and defaults.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var envFile string

	fs := flag.NewFlagSet("vpm", flag.ContinueOnError)

	fs.StringVar(&envFile, "env", ".env", "Env file to load (ignored if missing)")

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.ClientOrigin, "origin", "", "Allowed CORS origin (default: any)")

	// Storage
	fs.StringVar(&cfg.Store, "s", "", "Store backend (sqlite, postgres or json)")
	fs.StringVar(&cfg.DBPath, "db-path", "", "SQLite database file")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "PostgreSQL database URL")
	fs.StringVar(&cfg.JSONPath, "j", "", "JSON document path")

	// AI (prefer env for the key)
	fs.StringVar(&cfg.GeminiAPIKey, "gemini-key", "", "Gemini API key (prefer env)")
	fs.StringVar(&cfg.GeminiModel, "gemini-model", "", "Gemini model name")
	fs.IntVar(&cfg.AIRateLimit, "ai-rate", 0, "AI requests allowed per minute")
	fs.DurationVar(&cfg.AITimeout, "ai-timeout", 0, "Timeout for one AI call")

	fs.DurationVar(&cfg.ShutdownWait, "shutdown-wait", 0, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := loadEnvFile(envFile); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		port, err := envInt("PORT", DefaultPort)
		if err != nil {
			return Config{}, err
		}
		cfg.Port = port
	}
	if cfg.ClientOrigin == "" {
		cfg.ClientOrigin = os.Getenv("CLIENT_ORIGIN")
	}

	if cfg.Store == "" {
		cfg.Store = envString("STORE", StoreSQLite)
	}
	if cfg.DBPath == "" {
		cfg.DBPath = envString("DB_PATH", DefaultDBPath)
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.JSONPath == "" {
		cfg.JSONPath = envString("JSON_PATH", DefaultJSONPath)
	}

	switch cfg.Store {
	case StoreSQLite, StoreJSON:
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required for postgres store (use -d or DATABASE_URL env)")
		}
	default:
		return Config{}, fmt.Errorf("unknown store %q (want sqlite, postgres or json)", cfg.Store)
	}

	if cfg.GeminiAPIKey == "" {
		cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.GeminiModel == "" {
		cfg.GeminiModel = envString("GEMINI_MODEL", DefaultGeminiModel)
	}
	if cfg.AIRateLimit == 0 {
		limit, err := envInt("AI_RATE_LIMIT", DefaultAIRateLimit)
		if err != nil {
			return Config{}, err
		}
		cfg.AIRateLimit = limit
	}
	if cfg.AIRateLimit < 0 {
		return Config{}, errors.New("AI rate limit must be positive")
	}
	if cfg.AITimeout == 0 {
		timeout, err := envDuration("AI_TIMEOUT", DefaultAITimeout)
		if err != nil {
			return Config{}, err
		}
		cfg.AITimeout = timeout
	}
	if cfg.ShutdownWait == 0 {
		cfg.ShutdownWait = DefaultShutdownWait
	}

	return cfg, nil
}

// loadEnvFile does not override variables that are already set.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", key)
	}
	return n, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", key)
	}
	return d, nil
}
