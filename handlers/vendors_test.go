// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/vpm/models"
	"github.com/danielhkuo/vpm/store"
	"github.com/danielhkuo/vpm/testutil"
)

func TestCreateVendor(t *testing.T) {
	s := testutil.SetupTestStore(t)
	handler := NewVendorHandler(s)

	tests := []struct {
		name           string
		body           any
		expectedStatus int
	}{
		{"valid vendor", map[string]string{"name": "Acme", "industry": "IT"}, http.StatusCreated},
		{"name only", map[string]string{"name": "Zenith"}, http.StatusCreated},
		{"missing name", map[string]string{"industry": "IT"}, http.StatusBadRequest},
		{"blank name", map[string]string{"name": "   "}, http.StatusBadRequest},
		{"invalid JSON", "{not json", http.StatusBadRequest},
		{"wrong type", `{"name": 42}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/vendors", tt.body, nil)
			w := httptest.NewRecorder()

			handler.CreateVendor(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus == http.StatusCreated {
				var resp models.CreatedResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.ID <= 0 {
					t.Errorf("Expected positive id, got %d", resp.ID)
				}
			}
		})
	}
}

func TestCreateVendor_DefaultsOptionalFields(t *testing.T) {
	s := testutil.SetupTestStore(t)
	handler := NewVendorHandler(s)

	req := testutil.MakeRequest("POST", "/vendors", map[string]string{"name": "Acme"}, nil)
	w := httptest.NewRecorder()
	handler.CreateVendor(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.CreatedResponse
	testutil.AssertJSON(t, w, &resp)

	v, _, err := s.GetVendor(context.Background(), resp.ID)
	if err != nil {
		t.Fatal(err)
	}
	if v.Industry != "" || v.Description != "" {
		t.Errorf("Expected empty optional fields, got %+v", v)
	}
}

func TestGetVendor(t *testing.T) {
	s := testutil.SetupTestStore(t)
	handler := NewVendorHandler(s)

	vendorID := testutil.CreateTestVendor(t, s, "Acme", "IT")
	base := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	testutil.AddTestEvaluation(t, s, vendorID, 2, base)
	testutil.AddTestEvaluation(t, s, vendorID, 4, base.Add(time.Hour))

	tests := []struct {
		name           string
		id             string
		expectedStatus int
	}{
		{"existing vendor", "1", http.StatusOK},
		{"unknown vendor", "999", http.StatusNotFound},
		{"non-numeric id", "abc", http.StatusBadRequest},
		{"zero id", "0", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("GET", "/vendors/"+tt.id, nil, nil)
			req.SetPathValue("id", tt.id)
			w := httptest.NewRecorder()

			handler.GetVendor(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var resp models.VendorDetail
			testutil.AssertJSON(t, w, &resp)
			if resp.Vendor.Name != "Acme" {
				t.Errorf("Expected vendor 'Acme', got '%s'", resp.Vendor.Name)
			}
			if len(resp.Evaluations) != 2 {
				t.Fatalf("Expected 2 evaluations, got %d", len(resp.Evaluations))
			}
			if resp.Evaluations[0].OverallScore != 4 {
				t.Errorf("Expected newest evaluation first, got %+v", resp.Evaluations[0])
			}
		})
	}
}

func TestGetVendor_EmptyHistoryIsArray(t *testing.T) {
	s := testutil.SetupTestStore(t)
	handler := NewVendorHandler(s)
	testutil.CreateTestVendor(t, s, "Acme", "IT")

	req := testutil.MakeRequest("GET", "/vendors/1", nil, nil)
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()
	handler.GetVendor(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	want := `{"vendor":{"id":1,"name":"Acme","industry":"IT","description":"Acme description"},"evaluations":[]}` + "\n"
	if w.Body.String() != want {
		t.Errorf("Expected body %s, got %s", want, w.Body.String())
	}
}

func TestListVendors(t *testing.T) {
	s := testutil.SetupTestStore(t)
	handler := NewVendorHandler(s)

	low := testutil.CreateTestVendor(t, s, "Low", "Construction")
	high := testutil.CreateTestVendor(t, s, "High", "IT")
	testutil.CreateTestVendor(t, s, "Unrated", "Catering")
	testutil.AddTestEvaluation(t, s, low, 2, time.Time{})
	testutil.AddTestEvaluation(t, s, high, 5, time.Time{})
	testutil.AddTestEvaluation(t, s, high, 4, time.Time{})

	req := testutil.MakeRequest("GET", "/vendors", nil, nil)
	w := httptest.NewRecorder()
	handler.ListVendors(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp []models.VendorSummary
	testutil.AssertJSON(t, w, &resp)

	want := []struct {
		name, avg, risk string
	}{
		{"High", "4.50", models.RiskPreferred},
		{"Low", "2.00", models.RiskHigh},
		{"Unrated", "0.00", models.RiskNeutral},
	}
	if len(resp) != len(want) {
		t.Fatalf("Expected %d vendors, got %d", len(want), len(resp))
	}
	for i, wv := range want {
		if resp[i].Name != wv.name || resp[i].AvgScore != wv.avg || resp[i].Risk != wv.risk {
			t.Errorf("Position %d: expected %s/%s/%s, got %s/%s/%s",
				i, wv.name, wv.avg, wv.risk, resp[i].Name, resp[i].AvgScore, resp[i].Risk)
		}
	}
}

func TestListVendors_EmptyIsArray(t *testing.T) {
	for name, s := range map[string]store.Store{
		"sqlite": testutil.SetupTestStore(t),
		"json":   testutil.SetupTestJSONStore(t),
	} {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			NewVendorHandler(s).ListVendors(w, testutil.MakeRequest("GET", "/vendors", nil, nil))

			testutil.AssertStatus(t, w, http.StatusOK)
			if w.Body.String() != "[]\n" {
				t.Errorf("Expected empty array, got %s", w.Body.String())
			}
		})
	}
}

func TestAddEvaluation(t *testing.T) {
	s := testutil.SetupTestStore(t)
	handler := NewVendorHandler(s)
	vendorID := testutil.CreateTestVendor(t, s, "Acme", "IT")

	valid := map[string]any{
		"department":     "CRA",
		"quality":        4,
		"cost_adherence": 3,
		"schedule":       5,
		"management":     4,
		"overall_score":  4,
		"rationale":      "Strong delivery.",
	}
	without := func(key string) map[string]any {
		m := map[string]any{}
		for k, v := range valid {
			if k != key {
				m[k] = v
			}
		}
		return m
	}

	tests := []struct {
		name           string
		vendorID       string
		body           any
		expectedStatus int
	}{
		{"valid evaluation", "1", valid, http.StatusCreated},
		{"rationale optional", "1", without("rationale"), http.StatusCreated},
		{"orphan vendor accepted", "77", valid, http.StatusCreated},
		{"out of range scores not clamped", "1", map[string]any{
			"department": "CRA", "quality": 9, "cost_adherence": 0, "schedule": 3, "management": 3, "overall_score": 7.5,
		}, http.StatusCreated},
		{"missing department", "1", without("department"), http.StatusBadRequest},
		{"missing quality", "1", without("quality"), http.StatusBadRequest},
		{"missing overall score", "1", without("overall_score"), http.StatusBadRequest},
		{"string score", "1", `{"department":"CRA","quality":"4"}`, http.StatusBadRequest},
		{"invalid vendor id", "x", valid, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/vendors/"+tt.vendorID+"/evaluations", tt.body, nil)
			req.SetPathValue("id", tt.vendorID)
			w := httptest.NewRecorder()

			handler.AddEvaluation(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}

	_, evals, err := s.GetVendor(context.Background(), vendorID)
	if err != nil {
		t.Fatal(err)
	}
	if len(evals) != 3 {
		t.Errorf("Expected 3 stored evaluations for vendor, got %d", len(evals))
	}
}

func TestAddEvaluation_SuppliedCreatedAt(t *testing.T) {
	s := testutil.SetupTestStore(t)
	handler := NewVendorHandler(s)
	vendorID := testutil.CreateTestVendor(t, s, "Acme", "IT")

	body := `{"department":"DND","quality":3,"cost_adherence":3,"schedule":3,"management":3,"overall_score":3,"created_at":"2024-11-05T10:00:00Z"}`
	req := testutil.MakeRequest("POST", "/vendors/1/evaluations", body, nil)
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()
	handler.AddEvaluation(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	_, evals, _ := s.GetVendor(context.Background(), vendorID)
	want := time.Date(2024, 11, 5, 10, 0, 0, 0, time.UTC)
	if len(evals) != 1 || !evals[0].CreatedAt.Equal(want) {
		t.Errorf("Expected created_at %v, got %+v", want, evals)
	}
}

func TestStorageFailure(t *testing.T) {
	// A directory where the document should be makes every read fail.
	dir := t.TempDir()
	handler := NewVendorHandler(store.NewJSONStore(dir))

	w := httptest.NewRecorder()
	handler.ListVendors(w, testutil.MakeRequest("GET", "/vendors", nil, nil))
	testutil.AssertStatus(t, w, http.StatusInternalServerError)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != "Database error" {
		t.Errorf("Expected generic message, got '%s'", resp.Message)
	}

	req := testutil.MakeRequest("POST", "/vendors", map[string]string{"name": "Acme"}, nil)
	w = httptest.NewRecorder()
	handler.CreateVendor(w, req)
	testutil.AssertStatus(t, w, http.StatusInternalServerError)

	req = testutil.MakeRequest("GET", "/vendors/1", nil, nil)
	req.SetPathValue("id", "1")
	w = httptest.NewRecorder()
	handler.GetVendor(w, req)
	testutil.AssertStatus(t, w, http.StatusInternalServerError)
}
