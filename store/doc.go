// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists vendors and evaluations behind one Store interface.

# Backends

  - SQLStore: vendors and evaluations tables over database/sql (SQLite or
    PostgreSQL). Ids are assigned by the engine.
  - JSONStore: a single document {"vendors": [...], "evaluations": [...]}
    rewritten wholesale on every write. Ids are max(id)+1.

Open picks one from the configuration:

	s, err := store.Open(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer s.Close()

# Derived State

ListVendors never stores averages. Every call recomputes avg_score and the
risk label from the current evaluations (see package risk) and sorts by the
raw average, highest first.

# Errors

  - ErrInvalidInput: vendor name is empty
  - ErrNotFound: GetVendor on an unknown id
  - ErrStorage: wraps any I/O, query or decode failure

# Concurrency

The relational store relies on the engine to serialize writes.

The JSON store does read-modify-write under a process-wide mutex. It is not
safe for several processes to write the same document: each can compute the
same next id and the last writer wins.

AddEvaluation never checks that the vendor exists. Orphaned evaluations are
stored and ignored by every read.
*/
package store
