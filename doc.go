// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Vendor Performance Manager API
server.

The server tracks government vendors, the evaluations departments file
against them, and a derived risk label (High Risk, Neutral, Preferred). A
set of AI routes turns vendor history into briefs and recommendations.

# Starting the Server

With defaults (SQLite at ./vpm.db, port 4000):

	go run .

Or with flags:

	go run . -p 4000 -s postgres -d "postgres://..."
	go run . -s json -j ./data/data.json

Settings are read from flags, then the environment, then a .env file.

# Configuration

  - PORT (-p): Server port (default: 4000)
  - STORE (-s): sqlite, postgres or json (default: sqlite)
  - DB_PATH (-db-path): SQLite file (default: ./vpm.db)
  - DATABASE_URL (-d): PostgreSQL connection string, required for postgres
  - JSON_PATH (-j): JSON document (default: ./data/data.json)
  - CLIENT_ORIGIN (-origin): Allowed CORS origin (default: any)
  - GEMINI_API_KEY (-gemini-key): Enables the AI routes
  - GEMINI_MODEL (-gemini-model): Model name (default: gemini-1.5-flash)
  - AI_RATE_LIMIT (-ai-rate): AI requests per minute (default: 20)
  - AI_TIMEOUT (-ai-timeout): Per-call model timeout (default: 30s)

Demo data is loaded with cmd/seed.

# Architecture

  - handlers: HTTP request handlers (vendors, AI)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, rate limiting, JSON helpers
  - models: Domain and request/response types
  - risk: Average, label and ordering rules
  - store: Store interface with SQL and JSON document backends
  - ai: Prompt building and model client
  - seed: Demo data generation
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
