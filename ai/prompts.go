// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ai

import (
	"fmt"
	"strings"

	"github.com/danielhkuo/vpm/models"
	"github.com/danielhkuo/vpm/risk"
)

const preamble = "You are helping the Government of Canada evaluate a vendor.\n"

func suggestScorePrompt(req models.SuggestScoreRequest) string {
	return preamble + `
Rate this vendor on a 1-5 integer scale for:
- quality
- cost_adherence
- schedule
- management

Then provide:
- overall_score (1-5 integer)
- a short rationale (2-3 sentences, plain text)

Return ONLY valid JSON in this format:
{
  "quality": 1-5,
  "cost_adherence": 1-5,
  "schedule": 1-5,
  "management": 1-5,
  "overall_score": 1-5,
  "rationale": "..."
}

Vendor: ` + req.VendorName + `
Contract summary: ` + req.ContractSummary + `
Performance description: ` + req.IncidentDescription + "\n"
}

func executiveBriefPrompt(v models.Vendor, evals []models.Evaluation) string {
	var b strings.Builder
	b.WriteString(preamble)
	b.WriteString(`
Write a concise executive brief (at most 150 words, plain text) for a
senior procurement official. Cover overall performance, notable strengths,
recurring issues and a recommendation on continued use.

`)
	writeVendor(&b, v)
	writeHistory(&b, evals)
	return b.String()
}

func whatIfPrompt(v models.Vendor, evals []models.Evaluation, w models.Weights) string {
	var b strings.Builder
	b.WriteString(preamble)
	fmt.Fprintf(&b, `
Re-weight the evaluation criteria as follows and explain, in plain text and
at most 150 words, how the vendor's standing would change:
- quality: %g
- cost_adherence: %g
- schedule: %g
- management: %g

Weighted average under these weights: %s

`, w.Quality, w.CostAdherence, w.Schedule, w.Management, risk.Format(WeightedAverage(evals, w)))
	writeVendor(&b, v)
	writeHistory(&b, evals)
	return b.String()
}

func riskExplainPrompt(evals []models.Evaluation) string {
	var b strings.Builder
	b.WriteString(preamble)
	b.WriteString(`
Explain in plain language (3-5 sentences) the main risk drivers visible in
these recent evaluations. Name the weakest criteria and any trend over time.

`)
	writeHistory(&b, evals)
	return b.String()
}

func policyCheckPrompt(rationale string) string {
	return preamble + `
Review the following evaluation rationale for compliance with public-sector
procurement policy: it must be factual, relate to contract performance, and
contain no personal information, discriminatory language or unsupported
allegations.

Answer with "Compliant" or "Needs revision" on the first line, followed by a
one or two sentence justification.

Rationale: ` + rationale + "\n"
}

func recommendVendorPrompt(a, b models.VendorSummary) string {
	var sb strings.Builder
	sb.WriteString(preamble)
	sb.WriteString(`
Compare the two vendors below and recommend one for an upcoming contract.
Answer in plain text, at most 120 words, naming the recommended vendor first.

`)
	for _, v := range []models.VendorSummary{a, b} {
		fmt.Fprintf(&sb, "Vendor: %s (%s)\nAverage score: %s\nRisk: %s\nDescription: %s\n\n",
			v.Name, v.Industry, v.AvgScore, v.Risk, v.Description)
	}
	return sb.String()
}

func writeVendor(b *strings.Builder, v models.Vendor) {
	fmt.Fprintf(b, "Vendor: %s\nIndustry: %s\nDescription: %s\n\n", v.Name, v.Industry, v.Description)
}

func writeHistory(b *strings.Builder, evals []models.Evaluation) {
	if len(evals) == 0 {
		b.WriteString("Evaluations: none recorded\n")
		return
	}
	b.WriteString("Evaluations (newest first):\n")
	for _, e := range evals {
		fmt.Fprintf(b, "- %s %s: quality=%d cost=%d schedule=%d management=%d overall=%g. %s\n",
			e.CreatedAt.Format("2006-01-02"), e.Department, e.Quality, e.CostAdherence,
			e.Schedule, e.Management, e.OverallScore, e.Rationale)
	}
}

// WeightedAverage averages the four criteria of every evaluation using the
// given relative weights. It returns 0 when there is nothing to weigh.
func WeightedAverage(evals []models.Evaluation, w models.Weights) float64 {
	total := w.Quality + w.CostAdherence + w.Schedule + w.Management
	if total <= 0 || len(evals) == 0 {
		return 0
	}

	scores := make([]float64, len(evals))
	for i, e := range evals {
		scores[i] = (float64(e.Quality)*w.Quality +
			float64(e.CostAdherence)*w.CostAdherence +
			float64(e.Schedule)*w.Schedule +
			float64(e.Management)*w.Management) / total
	}
	return risk.Average(scores)
}
