// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/vpm/models"
	"github.com/danielhkuo/vpm/risk"
)

// docTimeLayout matches the timestamps written by the demo seeder and by
// SQLite's CURRENT_TIMESTAMP. Parsing accepts an optional fraction.
const (
	docTimeLayout      = "2006-01-02 15:04:05"
	docTimeWriteLayout = "2006-01-02 15:04:05.999999999"
)

// JSONStore keeps both collections in one JSON document that is rewritten
// wholesale on every write.
//
// Each write reads the whole document, mutates it in memory and writes it
// back. The mutex makes that sequence exclusive within this process only;
// two processes sharing the same file can still compute the same next id
// and lose a record.
type JSONStore struct {
	path string
	mu   sync.RWMutex
	now  func() time.Time
}

type document struct {
	Vendors     []models.Vendor    `json:"vendors"`
	Evaluations []evaluationRecord `json:"evaluations"`
}

type evaluationRecord struct {
	ID            int64   `json:"id"`
	VendorID      int64   `json:"vendor_id"`
	Department    string  `json:"department"`
	Quality       int     `json:"quality"`
	CostAdherence int     `json:"cost_adherence"`
	Schedule      int     `json:"schedule"`
	Management    int     `json:"management"`
	OverallScore  float64 `json:"overall_score"`
	Rationale     string  `json:"rationale"`
	CreatedAt     docTime `json:"created_at"`
}

// docTime is written in UTC with an optional fraction and read in that
// layout or RFC 3339.
type docTime time.Time

func (t docTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).UTC().Format(docTimeWriteLayout))
}

func (t *docTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*t = docTime{}
		return nil
	}
	parsed, err := time.ParseInLocation(docTimeLayout, s, time.UTC)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return fmt.Errorf("invalid created_at %q", s)
		}
	}
	*t = docTime(parsed)
	return nil
}

func (r evaluationRecord) toModel() models.Evaluation {
	return models.Evaluation{
		ID:            r.ID,
		VendorID:      r.VendorID,
		Department:    r.Department,
		Quality:       r.Quality,
		CostAdherence: r.CostAdherence,
		Schedule:      r.Schedule,
		Management:    r.Management,
		OverallScore:  r.OverallScore,
		Rationale:     r.Rationale,
		CreatedAt:     time.Time(r.CreatedAt),
	}
}

// NewJSONStore returns a store backed by the document at path. The file
// is created on the first write; a missing file reads as empty.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path, now: time.Now}
}

func (s *JSONStore) ListVendors(ctx context.Context) ([]models.VendorSummary, error) {
	s.mu.RLock()
	doc, err := s.read()
	s.mu.RUnlock()
	if err != nil {
		return nil, err
	}

	byVendor := make(map[int64][]models.Evaluation)
	for _, r := range doc.Evaluations {
		byVendor[r.VendorID] = append(byVendor[r.VendorID], r.toModel())
	}

	summaries := make([]models.VendorSummary, 0, len(doc.Vendors))
	for _, v := range doc.Vendors {
		summaries = append(summaries, risk.Summarize(v, byVendor[v.ID]))
	}
	risk.SortSummaries(summaries)

	return summaries, nil
}

func (s *JSONStore) GetVendor(ctx context.Context, id int64) (models.Vendor, []models.Evaluation, error) {
	s.mu.RLock()
	doc, err := s.read()
	s.mu.RUnlock()
	if err != nil {
		return models.Vendor{}, nil, err
	}

	var (
		vendor models.Vendor
		found  bool
	)
	for _, v := range doc.Vendors {
		if v.ID == id {
			vendor, found = v, true
			break
		}
	}
	if !found {
		return models.Vendor{}, nil, ErrNotFound
	}

	evals := []models.Evaluation{}
	for _, r := range doc.Evaluations {
		if r.VendorID == id {
			evals = append(evals, r.toModel())
		}
	}
	sort.SliceStable(evals, func(i, j int) bool {
		if !evals[i].CreatedAt.Equal(evals[j].CreatedAt) {
			return evals[i].CreatedAt.After(evals[j].CreatedAt)
		}
		return evals[i].ID > evals[j].ID
	})

	return vendor, evals, nil
}

func (s *JSONStore) CreateVendor(ctx context.Context, nv models.NewVendor) (int64, error) {
	nv, err := validateVendor(nv)
	if err != nil {
		return 0, err
	}

	var id int64
	err = s.update(func(doc *document) {
		for _, v := range doc.Vendors {
			id = max(id, v.ID)
		}
		id++
		doc.Vendors = append(doc.Vendors, models.Vendor{
			ID:          id,
			Name:        nv.Name,
			Industry:    nv.Industry,
			Description: nv.Description,
		})
	})
	if err != nil {
		return 0, err
	}

	slog.Info("vendor created", "vendor_id", id, "name", nv.Name)
	return id, nil
}

func (s *JSONStore) AddEvaluation(ctx context.Context, vendorID int64, ne models.NewEvaluation) (int64, error) {
	createdAt := ne.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.now()
	}

	var id int64
	err := s.update(func(doc *document) {
		for _, e := range doc.Evaluations {
			id = max(id, e.ID)
		}
		id++
		doc.Evaluations = append(doc.Evaluations, evaluationRecord{
			ID:            id,
			VendorID:      vendorID,
			Department:    ne.Department,
			Quality:       ne.Quality,
			CostAdherence: ne.CostAdherence,
			Schedule:      ne.Schedule,
			Management:    ne.Management,
			OverallScore:  ne.OverallScore,
			Rationale:     ne.Rationale,
			CreatedAt:     docTime(createdAt.UTC()),
		})
	})
	if err != nil {
		return 0, err
	}

	slog.Info("evaluation added", "vendor_id", vendorID, "evaluation_id", id)
	return id, nil
}

// Close is a no-op; the document is not held open between calls.
func (s *JSONStore) Close() error {
	return nil
}

// update runs read, mutate and write as one exclusive unit.
func (s *JSONStore) update(mutate func(doc *document)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	mutate(&doc)
	return s.write(doc)
}

func (s *JSONStore) read() (document, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return document{}, nil
	}
	if err != nil {
		return document{}, fmt.Errorf("%w: read %s: %w", ErrStorage, s.path, err)
	}
	if len(data) == 0 {
		return document{}, nil
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return document{}, fmt.Errorf("%w: decode %s: %w", ErrStorage, s.path, err)
	}
	return doc, nil
}

// write replaces the document through a temp file and rename so readers
// never see a half-written file.
func (s *JSONStore) write(doc document) error {
	if doc.Vendors == nil {
		doc.Vendors = []models.Vendor{}
	}
	if doc.Evaluations == nil {
		doc.Evaluations = []evaluationRecord{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode document: %w", ErrStorage, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create %s: %w", ErrStorage, dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".vpm-*.json")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %w", ErrStorage, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: write document: %w", ErrStorage, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: sync document: %w", ErrStorage, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close document: %w", ErrStorage, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("%w: replace %s: %w", ErrStorage, s.path, err)
	}

	slog.Debug("document written",
		"path", s.path,
		"vendors", len(doc.Vendors),
		"evaluations", len(doc.Evaluations),
		"size", humanize.Bytes(uint64(len(data))),
	)
	return nil
}
