// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"strings"

	"github.com/danielhkuo/vpm/models"
)

var (
	// ErrNotFound is returned when no vendor has the requested id.
	ErrNotFound = errors.New("vendor not found")

	// ErrInvalidInput is returned when a required field is missing.
	ErrInvalidInput = errors.New("invalid input")

	// ErrStorage wraps every I/O, query or decode failure of a backend.
	ErrStorage = errors.New("storage failure")
)

// Store persists vendors and their evaluations.
type Store interface {
	// ListVendors returns every vendor with its derived summary,
	// best average first.
	ListVendors(ctx context.Context) ([]models.VendorSummary, error)

	// GetVendor returns the vendor and its evaluations, newest first.
	GetVendor(ctx context.Context, id int64) (models.Vendor, []models.Evaluation, error)

	// CreateVendor stores a vendor and returns its new id.
	CreateVendor(ctx context.Context, v models.NewVendor) (int64, error)

	// AddEvaluation appends an evaluation. The vendor id is not checked.
	AddEvaluation(ctx context.Context, vendorID int64, e models.NewEvaluation) (int64, error)

	Close() error
}

func validateVendor(v models.NewVendor) (models.NewVendor, error) {
	v.Name = strings.TrimSpace(v.Name)
	if v.Name == "" {
		return v, errors.Join(ErrInvalidInput, &models.FieldError{Field: "name"})
	}
	return v, nil
}
