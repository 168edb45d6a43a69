// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"testing"
)

func TestCreateSchema_Idempotent(t *testing.T) {
	conn, err := Open(DialectSQLite, "file::memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	for i := 0; i < 2; i++ {
		if err := CreateSchema(conn, DialectSQLite); err != nil {
			t.Fatalf("CreateSchema call %d: %v", i+1, err)
		}
	}

	var n int
	err = conn.QueryRow(`
		SELECT COUNT(*) FROM sqlite_master
		WHERE type = 'table' AND name IN ('vendors', 'evaluations')
	`).Scan(&n)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("expected 2 tables, got %d", n)
	}
}

func TestCreateSchema_OrphanEvaluationAccepted(t *testing.T) {
	conn, err := Open(DialectSQLite, "file::memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	if err := CreateSchema(conn, DialectSQLite); err != nil {
		t.Fatal(err)
	}

	_, err = conn.Exec(`
		INSERT INTO evaluations (vendor_id, department, quality, cost_adherence, schedule, management, overall_score)
		VALUES (999, 'CRA', 3, 3, 3, 3, 3.0)
	`)
	if err != nil {
		t.Errorf("orphan evaluation rejected: %v", err)
	}
}

func TestUnsupportedDialect(t *testing.T) {
	if _, err := Open("oracle", "x"); err == nil {
		t.Error("expected error for unsupported dialect")
	}
	if err := CreateSchema(nil, "oracle"); err == nil {
		t.Error("expected error for unsupported dialect")
	}
}
