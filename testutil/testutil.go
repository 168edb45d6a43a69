// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/vpm/cliparse"
	"github.com/danielhkuo/vpm/models"
	"github.com/danielhkuo/vpm/store"
)

// SetupTestStore opens a fresh in-memory SQLite store with the full schema
func SetupTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := store.Open(cliparse.Config{Store: cliparse.StoreSQLite, DBPath: "file::memory:"})
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	return s
}

// SetupTestJSONStore opens a JSON document store in a temp directory
func SetupTestJSONStore(t *testing.T) store.Store {
	t.Helper()

	s, err := store.Open(cliparse.Config{
		Store:    cliparse.StoreJSON,
		JSONPath: filepath.Join(t.TempDir(), "data.json"),
	})
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}

	return s
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:        4000,
		Store:       cliparse.StoreSQLite,
		DBPath:      "file::memory:",
		GeminiModel: cliparse.DefaultGeminiModel,
		AIRateLimit: 100,
		AITimeout:   time.Second,
	}
}

// CreateTestVendor stores a vendor and returns its id
func CreateTestVendor(t *testing.T, s store.Store, name, industry string) int64 {
	t.Helper()

	id, err := s.CreateVendor(context.Background(), models.NewVendor{
		Name:        name,
		Industry:    industry,
		Description: name + " description",
	})
	if err != nil {
		t.Fatalf("Failed to create test vendor: %v", err)
	}

	return id
}

// AddTestEvaluation stores an evaluation with the given overall score
func AddTestEvaluation(t *testing.T, s store.Store, vendorID int64, score float64, createdAt time.Time) int64 {
	t.Helper()

	id, err := s.AddEvaluation(context.Background(), vendorID, models.NewEvaluation{
		Department:    "PSPC",
		Quality:       int(score),
		CostAdherence: int(score),
		Schedule:      int(score),
		Management:    int(score),
		OverallScore:  score,
		Rationale:     "Test evaluation",
		CreatedAt:     createdAt,
	})
	if err != nil {
		t.Fatalf("Failed to create test evaluation: %v", err)
	}

	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body any, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		var jsonBody []byte
		if s, ok := body.(string); ok {
			jsonBody = []byte(s)
		} else {
			jsonBody, _ = json.Marshal(body)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
