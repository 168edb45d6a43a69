// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/danielhkuo/vpm/models"
)

// riskExplainLimit caps how many evaluations are sent for a risk explanation.
const riskExplainLimit = 10

// Service builds prompts and interprets replies for each AI route.
type Service struct {
	gen Generator
}

func NewService(gen Generator) *Service {
	return &Service{gen: gen}
}

// SuggestScore asks for criteria scores and decodes the JSON reply.
func (s *Service) SuggestScore(ctx context.Context, req models.SuggestScoreRequest) (models.ScoreSuggestion, error) {
	text, err := s.gen.Generate(ctx, suggestScorePrompt(req))
	if err != nil {
		return models.ScoreSuggestion{}, err
	}

	raw, err := ExtractJSON(text)
	if err != nil {
		return models.ScoreSuggestion{}, err
	}

	var out models.ScoreSuggestion
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return models.ScoreSuggestion{}, fmt.Errorf("%w: %w", ErrUnparseable, err)
	}
	return out, nil
}

func (s *Service) ExecutiveBrief(ctx context.Context, v models.Vendor, evals []models.Evaluation) (string, error) {
	return s.gen.Generate(ctx, executiveBriefPrompt(v, evals))
}

func (s *Service) WhatIf(ctx context.Context, v models.Vendor, evals []models.Evaluation, w models.Weights) (string, error) {
	return s.gen.Generate(ctx, whatIfPrompt(v, evals, w))
}

// RiskExplain only considers the most recent evaluations.
func (s *Service) RiskExplain(ctx context.Context, evals []models.Evaluation) (string, error) {
	if len(evals) > riskExplainLimit {
		evals = evals[:riskExplainLimit]
	}
	return s.gen.Generate(ctx, riskExplainPrompt(evals))
}

func (s *Service) PolicyCheck(ctx context.Context, rationale string) (string, error) {
	return s.gen.Generate(ctx, policyCheckPrompt(rationale))
}

func (s *Service) RecommendVendor(ctx context.Context, a, b models.VendorSummary) (string, error) {
	return s.gen.Generate(ctx, recommendVendorPrompt(a, b))
}
