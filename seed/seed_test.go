// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/danielhkuo/vpm/models"
	"github.com/danielhkuo/vpm/testutil"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestGenerate(t *testing.T) {
	data := Generate(rand.New(rand.NewPCG(1, 2)), now)

	if len(data.Vendors) != 24 {
		t.Fatalf("Expected 24 vendors, got %d", len(data.Vendors))
	}

	oldest := now.AddDate(0, 0, -HistoryDays)
	for idx, v := range data.Vendors {
		if v.Band != BandFor(idx) {
			t.Errorf("Vendor %d: expected band %s, got %s", idx, BandFor(idx), v.Band)
		}
		if n := len(v.Evaluations); n < MinEvaluations || n > MaxEvaluations {
			t.Errorf("Vendor %d: %d evaluations out of range", idx, n)
		}
		for _, e := range v.Evaluations {
			for _, s := range []int{e.Quality, e.CostAdherence, e.Schedule, e.Management} {
				if s < 1 || s > 5 {
					t.Errorf("Vendor %d: score %d out of range", idx, s)
				}
			}
			if e.OverallScore != Overall(e.Quality, e.CostAdherence, e.Schedule, e.Management) {
				t.Errorf("Vendor %d: overall %v does not match criteria", idx, e.OverallScore)
			}
			if e.CreatedAt.Before(oldest) || e.CreatedAt.After(now) {
				t.Errorf("Vendor %d: created_at %v outside history window", idx, e.CreatedAt)
			}
			if e.Department == "" || e.Rationale == "" {
				t.Errorf("Vendor %d: empty department or rationale", idx)
			}
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(rand.New(rand.NewPCG(7, 7)), now)
	b := Generate(rand.New(rand.NewPCG(7, 7)), now)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("Same seed produced different data (-a +b):\n%s", diff)
	}
}

func TestBandFor(t *testing.T) {
	testCases := []struct {
		idx  int
		band string
	}{
		{0, BandLow},
		{1, BandMid},
		{5, BandHigh},
		{6, BandLow},
		{10, BandHigh},
		{30, BandLow},
		{23, BandMid},
	}

	for _, tc := range testCases {
		if got := BandFor(tc.idx); got != tc.band {
			t.Errorf("BandFor(%d) = %s, want %s", tc.idx, got, tc.band)
		}
	}
}

func TestOverall(t *testing.T) {
	testCases := []struct {
		scores   [4]int
		expected float64
	}{
		{[4]int{3, 3, 3, 3}, 3},
		{[4]int{4, 3, 3, 3}, 3.3},
		{[4]int{4, 4, 3, 3}, 3.5},
		{[4]int{5, 4, 4, 4}, 4.3},
		{[4]int{1, 1, 1, 2}, 1.3},
	}

	for _, tc := range testCases {
		s := tc.scores
		if got := Overall(s[0], s[1], s[2], s[3]); got != tc.expected {
			t.Errorf("Overall(%v) = %v, want %v", s, got, tc.expected)
		}
	}
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	s := testutil.SetupTestJSONStore(t)
	data := Generate(rand.New(rand.NewPCG(3, 4)), now)

	if err := Load(ctx, s, data); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	summaries, err := s.ListVendors(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(summaries) != len(data.Vendors) {
		t.Fatalf("Expected %d vendors, got %d", len(data.Vendors), len(summaries))
	}

	// Ids follow insertion order
	v, evals, err := s.GetVendor(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if v.Name != "MapleTech Solutions" {
		t.Errorf("Expected first vendor MapleTech Solutions, got %s", v.Name)
	}
	if len(evals) != len(data.Vendors[0].Evaluations) {
		t.Errorf("Expected %d evaluations, got %d", len(data.Vendors[0].Evaluations), len(evals))
	}
}

func TestLoad_RefusesNonEmptyStore(t *testing.T) {
	ctx := context.Background()
	s := testutil.SetupTestStore(t)
	testutil.CreateTestVendor(t, s, "Existing", "IT")

	err := Load(ctx, s, Data{Vendors: []VendorSeed{{Vendor: models.NewVendor{Name: "New"}}}})
	if !errors.Is(err, ErrNotEmpty) {
		t.Fatalf("Expected ErrNotEmpty, got %v", err)
	}

	list, _ := s.ListVendors(ctx)
	if len(list) != 1 {
		t.Errorf("Expected store untouched, got %d vendors", len(list))
	}
}
