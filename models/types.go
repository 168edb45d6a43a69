// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"errors"
	"strings"
	"time"
)

// Risk labels
const (
	RiskHigh      = "High Risk"
	RiskNeutral   = "Neutral"
	RiskPreferred = "Preferred"
)

// ErrMissingField is wrapped by Validate when a required field is absent.
var ErrMissingField = errors.New("missing required field")

// Domain types

type Vendor struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Industry    string `json:"industry"`
	Description string `json:"description"`
}

type Evaluation struct {
	ID            int64     `json:"id"`
	VendorID      int64     `json:"vendor_id"`
	Department    string    `json:"department"`
	Quality       int       `json:"quality"`
	CostAdherence int       `json:"cost_adherence"`
	Schedule      int       `json:"schedule"`
	Management    int       `json:"management"`
	OverallScore  float64   `json:"overall_score"`
	Rationale     string    `json:"rationale"`
	CreatedAt     time.Time `json:"created_at"`
}

// VendorSummary is derived on every listing and never stored.
type VendorSummary struct {
	Vendor
	AvgScore string  `json:"avg_score"`
	Risk     string  `json:"risk"`
	RawAvg   float64 `json:"-"`
}

type VendorDetail struct {
	Vendor      Vendor       `json:"vendor"`
	Evaluations []Evaluation `json:"evaluations"`
}

// NewVendor holds the caller-supplied fields of a vendor.
type NewVendor struct {
	Name        string
	Industry    string
	Description string
}

// NewEvaluation holds the caller-supplied fields of an evaluation.
// A zero CreatedAt is stamped by the store.
type NewEvaluation struct {
	Department    string
	Quality       int
	CostAdherence int
	Schedule      int
	Management    int
	OverallScore  float64
	Rationale     string
	CreatedAt     time.Time
}

// Request types

type CreateVendorRequest struct {
	Name        *string `json:"name"`
	Industry    *string `json:"industry"`
	Description *string `json:"description"`
}

func (r CreateVendorRequest) Validate() error {
	if r.Name == nil || strings.TrimSpace(*r.Name) == "" {
		return fieldError("name")
	}
	return nil
}

func (r CreateVendorRequest) ToNewVendor() NewVendor {
	return NewVendor{
		Name:        strings.TrimSpace(*r.Name),
		Industry:    deref(r.Industry),
		Description: deref(r.Description),
	}
}

// Score ranges are not enforced here; only presence is.
type AddEvaluationRequest struct {
	Department    *string    `json:"department"`
	Quality       *int       `json:"quality"`
	CostAdherence *int       `json:"cost_adherence"`
	Schedule      *int       `json:"schedule"`
	Management    *int       `json:"management"`
	OverallScore  *float64   `json:"overall_score"`
	Rationale     *string    `json:"rationale"`
	CreatedAt     *time.Time `json:"created_at"`
}

func (r AddEvaluationRequest) Validate() error {
	switch {
	case r.Department == nil || *r.Department == "":
		return fieldError("department")
	case r.Quality == nil:
		return fieldError("quality")
	case r.CostAdherence == nil:
		return fieldError("cost_adherence")
	case r.Schedule == nil:
		return fieldError("schedule")
	case r.Management == nil:
		return fieldError("management")
	case r.OverallScore == nil:
		return fieldError("overall_score")
	}
	return nil
}

func (r AddEvaluationRequest) ToNewEvaluation() NewEvaluation {
	e := NewEvaluation{
		Department:    *r.Department,
		Quality:       *r.Quality,
		CostAdherence: *r.CostAdherence,
		Schedule:      *r.Schedule,
		Management:    *r.Management,
		OverallScore:  *r.OverallScore,
		Rationale:     deref(r.Rationale),
	}
	if r.CreatedAt != nil {
		e.CreatedAt = *r.CreatedAt
	}
	return e
}

type SuggestScoreRequest struct {
	VendorName          string `json:"vendorName"`
	ContractSummary     string `json:"contractSummary"`
	IncidentDescription string `json:"incidentDescription"`
}

func (r SuggestScoreRequest) Validate() error {
	if r.VendorName == "" {
		return fieldError("vendorName")
	}
	return nil
}

type VendorHistoryRequest struct {
	Vendor      *Vendor      `json:"vendor"`
	Evaluations []Evaluation `json:"evaluations"`
}

func (r VendorHistoryRequest) Validate() error {
	if r.Vendor == nil {
		return fieldError("vendor")
	}
	return nil
}

// Weights are relative; they need not sum to 1.
type Weights struct {
	Quality       float64 `json:"quality"`
	CostAdherence float64 `json:"cost_adherence"`
	Schedule      float64 `json:"schedule"`
	Management    float64 `json:"management"`
}

type WhatIfRequest struct {
	Vendor      *Vendor      `json:"vendor"`
	Evaluations []Evaluation `json:"evaluations"`
	Weights     *Weights     `json:"weights"`
}

func (r WhatIfRequest) Validate() error {
	if r.Vendor == nil {
		return fieldError("vendor")
	}
	if r.Weights == nil {
		return fieldError("weights")
	}
	return nil
}

type RiskExplainRequest struct {
	Evaluations []Evaluation `json:"evaluations"`
}

type PolicyCheckRequest struct {
	Rationale string `json:"rationale"`
}

func (r PolicyCheckRequest) Validate() error {
	if strings.TrimSpace(r.Rationale) == "" {
		return fieldError("rationale")
	}
	return nil
}

type RecommendVendorRequest struct {
	VendorA *VendorSummary `json:"vendorA"`
	VendorB *VendorSummary `json:"vendorB"`
}

func (r RecommendVendorRequest) Validate() error {
	if r.VendorA == nil {
		return fieldError("vendorA")
	}
	if r.VendorB == nil {
		return fieldError("vendorB")
	}
	return nil
}

// Response types

type CreatedResponse struct {
	ID int64 `json:"id"`
}

type ScoreSuggestion struct {
	Quality       int     `json:"quality"`
	CostAdherence int     `json:"cost_adherence"`
	Schedule      int     `json:"schedule"`
	Management    int     `json:"management"`
	OverallScore  float64 `json:"overall_score"`
	Rationale     string  `json:"rationale"`
}

type BriefResponse struct {
	Brief string `json:"brief"`
}

type AnalysisResponse struct {
	Analysis string `json:"analysis"`
}

type ExplanationResponse struct {
	Explanation string `json:"explanation"`
}

type DecisionResponse struct {
	Decision string `json:"decision"`
}

type RecommendationResponse struct {
	Recommendation string `json:"recommendation"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func fieldError(name string) error {
	return &FieldError{Field: name}
}

// FieldError names the missing request field.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return e.Field + " is required"
}

func (e *FieldError) Unwrap() error {
	return ErrMissingField
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
