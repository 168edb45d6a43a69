// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielhkuo/vpm/models"
	"github.com/danielhkuo/vpm/risk"
)

// SQLStore keeps vendors and evaluations in two relational tables.
// Ids come from the engine's auto-increment, so concurrent writers in one
// process never collide.
type SQLStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLStore wraps an open connection whose schema already exists.
func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db, now: time.Now}
}

func (s *SQLStore) ListVendors(ctx context.Context) ([]models.VendorSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT v.id, v.name, v.industry, v.description,
		       COALESCE(AVG(e.overall_score), 0) AS avg_score
		FROM vendors v
		LEFT JOIN evaluations e ON v.id = e.vendor_id
		GROUP BY v.id, v.name, v.industry, v.description
		ORDER BY avg_score DESC, v.id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: query vendors: %w", ErrStorage, err)
	}
	defer rows.Close()

	summaries := []models.VendorSummary{}
	for rows.Next() {
		var v models.Vendor
		var avg float64
		if err := rows.Scan(&v.ID, &v.Name, &v.Industry, &v.Description, &avg); err != nil {
			return nil, fmt.Errorf("%w: scan vendor: %w", ErrStorage, err)
		}
		summaries = append(summaries, risk.FromAverage(v, avg))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate vendors: %w", ErrStorage, err)
	}

	return summaries, nil
}

func (s *SQLStore) GetVendor(ctx context.Context, id int64) (models.Vendor, []models.Evaluation, error) {
	var v models.Vendor
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, industry, description
		FROM vendors
		WHERE id = $1
	`, id).Scan(&v.ID, &v.Name, &v.Industry, &v.Description)

	if errors.Is(err, sql.ErrNoRows) {
		return models.Vendor{}, nil, ErrNotFound
	}
	if err != nil {
		return models.Vendor{}, nil, fmt.Errorf("%w: query vendor: %w", ErrStorage, err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, vendor_id, department, quality, cost_adherence, schedule,
		       management, overall_score, rationale, created_at
		FROM evaluations
		WHERE vendor_id = $1
		ORDER BY created_at DESC, id DESC
	`, id)
	if err != nil {
		return models.Vendor{}, nil, fmt.Errorf("%w: query evaluations: %w", ErrStorage, err)
	}
	defer rows.Close()

	evals := []models.Evaluation{}
	for rows.Next() {
		var e models.Evaluation
		if err := rows.Scan(
			&e.ID, &e.VendorID, &e.Department, &e.Quality, &e.CostAdherence,
			&e.Schedule, &e.Management, &e.OverallScore, &e.Rationale, &e.CreatedAt,
		); err != nil {
			return models.Vendor{}, nil, fmt.Errorf("%w: scan evaluation: %w", ErrStorage, err)
		}
		evals = append(evals, e)
	}
	if err := rows.Err(); err != nil {
		return models.Vendor{}, nil, fmt.Errorf("%w: iterate evaluations: %w", ErrStorage, err)
	}

	return v, evals, nil
}

func (s *SQLStore) CreateVendor(ctx context.Context, nv models.NewVendor) (int64, error) {
	nv, err := validateVendor(nv)
	if err != nil {
		return 0, err
	}

	var id int64
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO vendors (name, industry, description)
		VALUES ($1, $2, $3)
		RETURNING id
	`, nv.Name, nv.Industry, nv.Description).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%w: insert vendor: %w", ErrStorage, err)
	}

	slog.Info("vendor created", "vendor_id", id, "name", nv.Name)
	return id, nil
}

func (s *SQLStore) AddEvaluation(ctx context.Context, vendorID int64, ne models.NewEvaluation) (int64, error) {
	createdAt := ne.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.now()
	}

	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO evaluations
		(vendor_id, department, quality, cost_adherence, schedule, management, overall_score, rationale, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`, vendorID, ne.Department, ne.Quality, ne.CostAdherence, ne.Schedule,
		ne.Management, ne.OverallScore, ne.Rationale, createdAt.UTC()).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%w: insert evaluation: %w", ErrStorage, err)
	}

	slog.Info("evaluation added", "vendor_id", vendorID, "evaluation_id", id)
	return id, nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
