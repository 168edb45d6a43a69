// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"fmt"
	"log/slog"

	"github.com/danielhkuo/vpm/cliparse"
	"github.com/danielhkuo/vpm/db"
)

// Open builds the store selected by cfg. Relational stores get their
// schema created; the JSON store touches nothing until the first write.
func Open(cfg cliparse.Config) (Store, error) {
	switch cfg.Store {
	case cliparse.StoreJSON:
		slog.Info("using JSON document store", "path", cfg.JSONPath)
		return NewJSONStore(cfg.JSONPath), nil

	case cliparse.StoreSQLite, cliparse.StorePostgres:
		dialect, dsn := db.DialectSQLite, cfg.DBPath
		if cfg.Store == cliparse.StorePostgres {
			dialect, dsn = db.DialectPostgres, cfg.DatabaseURL
		}

		conn, err := db.Open(dialect, dsn)
		if err != nil {
			return nil, err
		}
		if err := db.CreateSchema(conn, dialect); err != nil {
			conn.Close()
			return nil, err
		}

		slog.Info("using relational store", "dialect", dialect)
		return NewSQLStore(conn), nil
	}

	return nil, fmt.Errorf("unknown store %q", cfg.Store)
}
