// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"github.com/danielhkuo/vpm/models"
	"github.com/danielhkuo/vpm/store"
)

// ErrNotEmpty is returned by Load when the store already holds vendors.
var ErrNotEmpty = errors.New("store already contains vendors")

// Evaluation counts and history window for generated vendors
const (
	MinEvaluations = 6
	MaxEvaluations = 14
	HistoryDays    = 180
)

// Performance bands
const (
	BandLow  = "low"
	BandMid  = "mid"
	BandHigh = "high"
)

var bandBase = map[string]float64{
	BandLow:  2.1,
	BandMid:  3.2,
	BandHigh: 4.3,
}

var vendorRows = []models.NewVendor{
	{Name: "MapleTech Solutions", Industry: "IT Services", Description: "Cloud migration and application development for public sector."},
	{Name: "TrueNorth Construction", Industry: "Construction", Description: "Bridges, roads, and public infrastructure projects."},
	{Name: "CanHealth Supplies", Industry: "Medical Supplies", Description: "PPE and hospital equipment distribution."},
	{Name: "Aurora Analytics", Industry: "Data & AI", Description: "Advanced analytics and ML platforms for agencies."},
	{Name: "Boreal Networks", Industry: "Telecom", Description: "Wide-area network and connectivity for remote sites."},
	{Name: "Polar Consulting", Industry: "Management Consulting", Description: "Change management and strategic advisory."},
	{Name: "PrairieSoft", Industry: "Software", Description: "Custom enterprise systems and integration."},
	{Name: "Harbour Security", Industry: "Security", Description: "Facility and cyber security services."},
	{Name: "Northern Lights Media", Industry: "Communications", Description: "Public outreach and media production."},
	{Name: "St. Laurent Logistics", Industry: "Logistics", Description: "Supply chain and warehousing solutions."},
	{Name: "Cascadia CleanTech", Industry: "Green Tech", Description: "Energy efficiency retrofits and solar installations."},
	{Name: "Frontier Drones", Industry: "Aerospace", Description: "Aerial surveying and emergency response support."},
	{Name: "BlueSpruce Labs", Industry: "IT Services", Description: "DevOps, observability, and SRE enablement."},
	{Name: "Granite Civil Works", Industry: "Construction", Description: "Water treatment and municipal works."},
	{Name: "Capitol Printworks", Industry: "Print & Office", Description: "Secure printing and records digitization."},
	{Name: "Snowy Owl Cyber", Industry: "Cybersecurity", Description: "Pen-testing and incident response retainers."},
	{Name: "Lakeside Staffing", Industry: "Staffing", Description: "Temporary staffing and talent acquisition."},
	{Name: "Summit Learning", Industry: "Training", Description: "Leadership development and training programs."},
	{Name: "True North Foods", Industry: "Catering", Description: "Event catering and on-site canteen services."},
	{Name: "Great Bear IT", Industry: "IT Services", Description: "Legacy modernization and API gateways."},
	{Name: "Muskoka Marine", Industry: "Transportation", Description: "Marine transport and ferry maintenance."},
	{Name: "Arctic DataVault", Industry: "Cloud", Description: "Secure data archival and backup services."},
	{Name: "Timberline Hardware", Industry: "Hardware", Description: "End-user devices and peripherals procurement."},
	{Name: "Cedar Ridge Labs", Industry: "R&D", Description: "Prototyping and rapid experimentation services."},
}

var departments = []string{
	"PSPC", "CRA", "IRCC", "DND", "ESDC", "HC", "ISED", "Transport Canada", "Environment Canada",
}

var rationales = []string{
	"Met deliverables with minor schedule slips due to dependency issues.",
	"Exceeded expectations in quality and stakeholder communication.",
	"Cost variance observed; vendor provided credible mitigation plan.",
	"On-time and on-budget with stable performance across teams.",
	"Security incident reported and remediated; monitoring improved.",
	"Change requests impacted schedule; collaboration remained strong.",
	"Slight quality regressions; vendor agreed to corrective actions.",
	"Demonstrated strong risk management and transparent reporting.",
	"Delays due to supply constraints; recovery plan implemented.",
	"Outstanding leadership and proactive coordination across departments.",
}

// VendorSeed is one generated vendor and its evaluation history.
type VendorSeed struct {
	Vendor      models.NewVendor
	Band        string
	Evaluations []models.NewEvaluation
}

// Data is a full demo data set in insertion order.
type Data struct {
	Vendors []VendorSeed
}

// Count returns the number of vendors and evaluations in d.
func (d Data) Count() (vendors, evaluations int) {
	for _, v := range d.Vendors {
		evaluations += len(v.Evaluations)
	}
	return len(d.Vendors), evaluations
}

// BandFor returns the performance band of the vendor at index idx.
// Every sixth vendor is low, then every fifth is high.
func BandFor(idx int) string {
	switch {
	case idx%6 == 0:
		return BandLow
	case idx%5 == 0:
		return BandHigh
	default:
		return BandMid
	}
}

// Generate builds the demo data set. Evaluation dates fall within
// HistoryDays before now.
func Generate(rng *rand.Rand, now time.Time) Data {
	data := Data{Vendors: make([]VendorSeed, 0, len(vendorRows))}

	for idx, v := range vendorRows {
		band := BandFor(idx)
		base := bandBase[band]

		n := MinEvaluations + rng.IntN(MaxEvaluations-MinEvaluations+1)
		evals := make([]models.NewEvaluation, 0, n)
		for range n {
			quality := score(base, rng.Float64()-0.5, 1)
			cost := score(base, rng.Float64()-0.5, 1)
			schedule := score(base, rng.Float64()-0.6, 1.2)
			management := score(base, rng.Float64()-0.5, 1)

			evals = append(evals, models.NewEvaluation{
				Department:    departments[rng.IntN(len(departments))],
				Quality:       quality,
				CostAdherence: cost,
				Schedule:      schedule,
				Management:    management,
				OverallScore:  Overall(quality, cost, schedule, management),
				Rationale:     rationales[rng.IntN(len(rationales))],
				CreatedAt:     now.AddDate(0, 0, -rng.IntN(HistoryDays+1)).UTC().Truncate(time.Second),
			})
		}

		data.Vendors = append(data.Vendors, VendorSeed{Vendor: v, Band: band, Evaluations: evals})
	}

	return data
}

// Overall is the mean of the four criteria rounded to one decimal.
func Overall(quality, cost, schedule, management int) float64 {
	mean := float64(quality+cost+schedule+management) / 4
	return math.Round(mean*10) / 10
}

func score(base, jitter, spread float64) int {
	return min(max(int(math.Round(base+jitter*spread)), 1), 5)
}

// Load writes data through s. It refuses a store that already has vendors
// so ids line up with insertion order.
func Load(ctx context.Context, s store.Store, data Data) error {
	existing, err := s.ListVendors(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return fmt.Errorf("%w (%d found)", ErrNotEmpty, len(existing))
	}

	for _, v := range data.Vendors {
		id, err := s.CreateVendor(ctx, v.Vendor)
		if err != nil {
			return fmt.Errorf("failed to create vendor %q: %w", v.Vendor.Name, err)
		}
		for _, e := range v.Evaluations {
			if _, err := s.AddEvaluation(ctx, id, e); err != nil {
				return fmt.Errorf("failed to add evaluation for %q: %w", v.Vendor.Name, err)
			}
		}
	}

	vendors, evals := data.Count()
	slog.Info("demo data loaded", "vendors", vendors, "evaluations", evals)
	return nil
}
