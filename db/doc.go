// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the relational database and creates its schema.

# Opening

Open registers nothing itself beyond importing the drivers; it maps a
dialect to a driver name and pings the connection:

	conn, err := db.Open(db.DialectSQLite, "./vpm.db")

Dialects:

  - sqlite: modernc.org/sqlite (pure Go, no cgo), one open connection
  - postgres: github.com/lib/pq

# Schema Creation

CreateSchema initializes both tables for the given dialect:

	if err := db.CreateSchema(conn, db.DialectSQLite); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - vendors: id, name, industry, description
  - evaluations: id, vendor_id, department, four 1-5 criteria scores,
    overall_score, rationale, created_at

# Relationships

	vendors 1──* evaluations

The link is not enforced. Evaluations may reference a vendor id that does
not exist; they are stored and simply never joined.

# Indexes

  - evaluations.vendor_id
*/
package db
