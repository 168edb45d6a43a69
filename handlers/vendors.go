// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/vpm/middleware"
	"github.com/danielhkuo/vpm/models"
	"github.com/danielhkuo/vpm/store"
)

type VendorHandler struct {
	store store.Store
}

func NewVendorHandler(s store.Store) *VendorHandler {
	return &VendorHandler{store: s}
}

// ListVendors handles GET /vendors
func (h *VendorHandler) ListVendors(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.store.ListVendors(r.Context())
	if err != nil {
		slog.Error("failed to list vendors", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, summaries)
}

// GetVendor handles GET /vendors/{id}
func (h *VendorHandler) GetVendor(w http.ResponseWriter, r *http.Request) {
	vendorID, ok := parseVendorID(w, r)
	if !ok {
		return
	}

	vendor, evals, err := h.store.GetVendor(r.Context(), vendorID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Vendor not found")
		return
	}
	if err != nil {
		slog.Error("failed to get vendor", "vendor_id", vendorID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VendorDetail{
		Vendor:      vendor,
		Evaluations: evals,
	})
}

// CreateVendor handles POST /vendors
func (h *VendorHandler) CreateVendor(w http.ResponseWriter, r *http.Request) {
	var req models.CreateVendorRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if err := req.Validate(); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.store.CreateVendor(r.Context(), req.ToNewVendor())
	if errors.Is(err, store.ErrInvalidInput) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	if err != nil {
		slog.Error("failed to create vendor", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create vendor")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CreatedResponse{ID: id})
}

// AddEvaluation handles POST /vendors/{id}/evaluations
// The vendor is not required to exist.
func (h *VendorHandler) AddEvaluation(w http.ResponseWriter, r *http.Request) {
	vendorID, ok := parseVendorID(w, r)
	if !ok {
		return
	}

	var req models.AddEvaluationRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := req.Validate(); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.store.AddEvaluation(r.Context(), vendorID, req.ToNewEvaluation())
	if err != nil {
		slog.Error("failed to add evaluation", "vendor_id", vendorID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save evaluation")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CreatedResponse{ID: id})
}

func parseVendorID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.PathValue("id")
	if raw == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "vendor id is required")
		return 0, false
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "vendor id must be a positive integer")
		return 0, false
	}
	return id, true
}
