// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package risk derives a vendor's average score and risk label from its
// evaluation history. Everything here is pure and recomputed per request.
package risk

import (
	"sort"
	"strconv"

	"github.com/danielhkuo/vpm/models"
)

// Thresholds for the three-tier label.
const (
	HighRiskBelow      = 2.5
	PreferredAtOrAbove = 4.0
)

// Average returns sum/n, or 0 for an empty slice.
func Average(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}

// Classify maps an average to a risk label. An average of exactly 0 means
// the vendor has no scored history and is Neutral.
func Classify(avg float64) string {
	switch {
	case avg != 0 && avg < HighRiskBelow:
		return models.RiskHigh
	case avg >= PreferredAtOrAbove:
		return models.RiskPreferred
	default:
		return models.RiskNeutral
	}
}

// Format renders an average with two decimals, e.g. "3.00".
func Format(avg float64) string {
	return strconv.FormatFloat(avg, 'f', 2, 64)
}

// FromAverage builds a summary when the average was computed elsewhere
// (for example by SQL AVG).
func FromAverage(v models.Vendor, avg float64) models.VendorSummary {
	return models.VendorSummary{
		Vendor:   v,
		AvgScore: Format(avg),
		Risk:     Classify(avg),
		RawAvg:   avg,
	}
}

// Summarize computes a vendor's summary from its evaluations.
func Summarize(v models.Vendor, evals []models.Evaluation) models.VendorSummary {
	scores := make([]float64, len(evals))
	for i, e := range evals {
		scores[i] = e.OverallScore
	}
	return FromAverage(v, Average(scores))
}

// SortSummaries orders by raw average descending, then id ascending.
func SortSummaries(s []models.VendorSummary) {
	sort.SliceStable(s, func(i, j int) bool {
		if s[i].RawAvg != s[j].RawAvg {
			return s[i].RawAvg > s[j].RawAvg
		}
		return s[i].ID < s[j].ID
	})
}
