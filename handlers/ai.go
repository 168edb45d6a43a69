// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/vpm/ai"
	"github.com/danielhkuo/vpm/middleware"
	"github.com/danielhkuo/vpm/models"
)

// AIHandler serves the AI routes. A nil service means no model is
// configured and every route answers 503.
type AIHandler struct {
	svc *ai.Service
}

func NewAIHandler(svc *ai.Service) *AIHandler {
	return &AIHandler{svc: svc}
}

type validator interface {
	Validate() error
}

// decode parses and validates the body. It writes the error response and
// returns false on failure.
func (h *AIHandler) decode(w http.ResponseWriter, r *http.Request, req any) bool {
	if h.svc == nil {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "AI features are not configured")
		return false
	}

	if err := middleware.ParseJSONBody(r, req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return false
	}

	if v, ok := req.(validator); ok {
		if err := v.Validate(); err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
			return false
		}
	}
	return true
}

// fail maps a generation error to a response. message is the client-facing
// text, matching what the client shows on failure.
func fail(w http.ResponseWriter, op string, err error, message string) {
	if errors.Is(err, ai.ErrUnparseable) {
		slog.Error("AI reply could not be parsed", "op", op, "error", err)
	} else {
		slog.Error("AI request failed", "op", op, "error", err)
	}
	middleware.ErrorResponse(w, http.StatusBadGateway, message)
}

// SuggestScore handles POST /ai/suggest-score
func (h *AIHandler) SuggestScore(w http.ResponseWriter, r *http.Request) {
	var req models.SuggestScoreRequest
	if !h.decode(w, r, &req) {
		return
	}

	scores, err := h.svc.SuggestScore(r.Context(), req)
	if err != nil {
		fail(w, "suggest-score", err, "AI scoring failed")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, scores)
}

// ExecutiveBrief handles POST /ai/executive-brief
func (h *AIHandler) ExecutiveBrief(w http.ResponseWriter, r *http.Request) {
	var req models.VendorHistoryRequest
	if !h.decode(w, r, &req) {
		return
	}

	brief, err := h.svc.ExecutiveBrief(r.Context(), *req.Vendor, req.Evaluations)
	if err != nil {
		fail(w, "executive-brief", err, "AI brief failed")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.BriefResponse{Brief: brief})
}

// WhatIf handles POST /ai/what-if
func (h *AIHandler) WhatIf(w http.ResponseWriter, r *http.Request) {
	var req models.WhatIfRequest
	if !h.decode(w, r, &req) {
		return
	}

	analysis, err := h.svc.WhatIf(r.Context(), *req.Vendor, req.Evaluations, *req.Weights)
	if err != nil {
		fail(w, "what-if", err, "AI what-if failed")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.AnalysisResponse{Analysis: analysis})
}

// RiskExplain handles POST /ai/risk-explain
func (h *AIHandler) RiskExplain(w http.ResponseWriter, r *http.Request) {
	var req models.RiskExplainRequest
	if !h.decode(w, r, &req) {
		return
	}

	explanation, err := h.svc.RiskExplain(r.Context(), req.Evaluations)
	if err != nil {
		fail(w, "risk-explain", err, "AI risk explain failed")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ExplanationResponse{Explanation: explanation})
}

// PolicyCheck handles POST /ai/policy-check
func (h *AIHandler) PolicyCheck(w http.ResponseWriter, r *http.Request) {
	var req models.PolicyCheckRequest
	if !h.decode(w, r, &req) {
		return
	}

	decision, err := h.svc.PolicyCheck(r.Context(), req.Rationale)
	if err != nil {
		fail(w, "policy-check", err, "AI policy check failed")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.DecisionResponse{Decision: decision})
}

// RecommendVendor handles POST /ai/recommend-vendor
func (h *AIHandler) RecommendVendor(w http.ResponseWriter, r *http.Request) {
	var req models.RecommendVendorRequest
	if !h.decode(w, r, &req) {
		return
	}

	recommendation, err := h.svc.RecommendVendor(r.Context(), *req.VendorA, *req.VendorB)
	if err != nil {
		fail(w, "recommend-vendor", err, "AI recommendation failed")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.RecommendationResponse{Recommendation: recommendation})
}
