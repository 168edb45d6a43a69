// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/danielhkuo/vpm/models"
	"github.com/danielhkuo/vpm/store"
	"github.com/danielhkuo/vpm/testutil"
)

// TestVendorWorkflow runs the evaluation workflow end to end on both backends:
// 1. Create vendor
// 2. Record two evaluations
// 3. Check the listing label
// 4. Check the detail history
// 5. Add a strong evaluation and check the label moves
func TestVendorWorkflow(t *testing.T) {
	backends := map[string]func(*testing.T) store.Store{
		"sqlite": testutil.SetupTestStore,
		"json":   testutil.SetupTestJSONStore,
	}

	for name, setup := range backends {
		t.Run(name, func(t *testing.T) {
			handler := NewVendorHandler(setup(t))

			// Step 1: Create a vendor
			req := testutil.MakeRequest("POST", "/vendors", map[string]string{
				"name":        "Acme",
				"industry":    "IT",
				"description": "Managed services",
			}, nil)
			w := httptest.NewRecorder()
			handler.CreateVendor(w, req)
			if w.Code != http.StatusCreated {
				t.Fatalf("Step 1 - Create vendor failed: %d - %s", w.Code, w.Body.String())
			}
			var created models.CreatedResponse
			testutil.AssertJSON(t, w, &created)
			id := strconv.FormatInt(created.ID, 10)

			// Step 2: Two weak evaluations
			for _, score := range []float64{2, 2.5} {
				w := addEvaluation(t, handler, id, score)
				if w.Code != http.StatusCreated {
					t.Fatalf("Step 2 - Add evaluation failed: %d - %s", w.Code, w.Body.String())
				}
			}

			// Step 3: Listing shows the average and label
			summary := findSummary(t, handler, created.ID)
			if summary.AvgScore != "2.25" || summary.Risk != models.RiskHigh {
				t.Errorf("Step 3 - Expected 2.25/High Risk, got %s/%s", summary.AvgScore, summary.Risk)
			}

			// Step 4: Detail returns the vendor with its history
			req = testutil.MakeRequest("GET", "/vendors/"+id, nil, nil)
			req.SetPathValue("id", id)
			w = httptest.NewRecorder()
			handler.GetVendor(w, req)
			testutil.AssertStatus(t, w, http.StatusOK)
			var detail models.VendorDetail
			testutil.AssertJSON(t, w, &detail)
			if detail.Vendor.Description != "Managed services" || len(detail.Evaluations) != 2 {
				t.Errorf("Step 4 - Unexpected detail: %+v", detail)
			}

			// Step 5: A strong evaluation moves the average to exactly 2.5
			addEvaluation(t, handler, id, 3)
			summary = findSummary(t, handler, created.ID)
			if summary.AvgScore != "2.50" || summary.Risk != models.RiskNeutral {
				t.Errorf("Step 5 - Expected 2.50/Neutral, got %s/%s", summary.AvgScore, summary.Risk)
			}
		})
	}
}

func addEvaluation(t *testing.T, h *VendorHandler, id string, score float64) *httptest.ResponseRecorder {
	t.Helper()

	body := map[string]any{
		"department":     "CRA",
		"quality":        int(score),
		"cost_adherence": int(score),
		"schedule":       int(score),
		"management":     int(score),
		"overall_score":  score,
		"rationale":      "Quarterly review",
	}
	req := testutil.MakeRequest("POST", "/vendors/"+id+"/evaluations", body, nil)
	req.SetPathValue("id", id)
	w := httptest.NewRecorder()
	h.AddEvaluation(w, req)
	return w
}

func findSummary(t *testing.T, h *VendorHandler, id int64) models.VendorSummary {
	t.Helper()

	w := httptest.NewRecorder()
	h.ListVendors(w, testutil.MakeRequest("GET", "/vendors", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var list []models.VendorSummary
	testutil.AssertJSON(t, w, &list)
	for _, s := range list {
		if s.ID == id {
			return s
		}
	}
	t.Fatalf("Vendor %d missing from listing", id)
	return models.VendorSummary{}
}
