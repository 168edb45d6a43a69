// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Before reading the environment it loads an env file (default .env) with
github.com/joho/godotenv. A missing file is ignored and variables that are
already set are not overridden.

# Config Fields

  - Port: Server listen port (default: 4000)
  - Store: sqlite, postgres or json (default: sqlite)
  - DBPath: SQLite file (default: ./vpm.db)
  - DatabaseURL: PostgreSQL connection string (required for postgres)
  - JSONPath: JSON document (default: ./data/data.json)
  - ClientOrigin: Allowed CORS origin (default: any)
  - GeminiAPIKey: Enables the AI routes when set
  - GeminiModel: Model name (default: gemini-1.5-flash)
  - AIRateLimit: AI requests per minute (default: 20)
  - AITimeout: Timeout for one AI call (default: 30s)

# CLI Flags

	-env            Env file
	-p              Server port
	-origin         CORS origin
	-s              Store backend
	-db-path        SQLite file
	-d              PostgreSQL URL
	-j              JSON document path
	-gemini-key     Gemini API key
	-gemini-model   Gemini model
	-ai-rate        AI requests per minute
	-ai-timeout     AI call timeout
	-shutdown-wait  Graceful shutdown timeout

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	CLIENT_ORIGIN  → -origin
	STORE          → -s
	DB_PATH        → -db-path
	DATABASE_URL   → -d
	JSON_PATH      → -j
	GEMINI_API_KEY → -gemini-key
	GEMINI_MODEL   → -gemini-model
	AI_RATE_LIMIT  → -ai-rate
	AI_TIMEOUT     → -ai-timeout

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error when:

  - PORT or AI_RATE_LIMIT is not an integer
  - AI_TIMEOUT is not a duration
  - the store is unknown
  - the postgres store has no DATABASE_URL
*/
package cliparse
