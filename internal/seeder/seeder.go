// Package seeder posts generated submissions against a running
// instance to exercise the reconciliation path end to end.
package seeder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/google/uuid"

	"pulpito/pkg/logger"
)

// namePool mixes diacritic-heavy and plain spellings so seeded data
// exercises canonical-key matching, not just exact string equality.
var namePool = []string{
	"João Silva", "joão silva", "José Almeida", "jose almeida",
	"Maria Conceição", "Ana Souza", "ANA SOUZA", "Bruno Costa",
	"André Ribeiro", "andre ribeiro", "Luís Pereira", "Inês Martins",
	"Sebastião Rocha", "Cecília Nunes", "Otávio Ramos", "Helena Dias",
}

// submission mirrors the POST /submissions payload.
type submission struct {
	SubmissionID string `json:"submission_id"`
	Date         string `json:"date"`
	Speakers     []struct {
		Name string `json:"name"`
	} `json:"speakers"`
}

// outcome mirrors the submission response.
type outcome struct {
	Status    string `json:"status"`
	Duplicate bool   `json:"duplicate"`
	Added     int    `json:"added"`
	Updated   int    `json:"updated"`
	Conflicts []struct {
		Name string `json:"name"`
	} `json:"conflicts"`
}

// Run generates and submits cfg.NumSubmissions submissions, then
// fetches the roster view and reports totals.
func Run(ctx context.Context, cfg *Config) (*Stats, error) {
	log := logger.Get()
	stats := &Stats{StartTime: time.Now()}
	client := &http.Client{Timeout: cfg.Timeout}

	rng := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // seed data, not crypto
	// Walk dates forward so most submissions supersede earlier ones
	// while some land behind a stored date and produce conflicts.
	base := time.Now().AddDate(0, -6, 0)

	for i := 0; i < cfg.NumSubmissions; i++ {
		if err := ctx.Err(); err != nil {
			return stats, fmt.Errorf("seeding interrupted: %w", err)
		}

		date := base.AddDate(0, 0, rng.Intn(180))
		sub := submission{
			SubmissionID: uuid.New().String(),
			Date:         date.Format("2006-01-02"),
		}
		for n := 0; n < 1+rng.Intn(3); n++ {
			sub.Speakers = append(sub.Speakers, struct {
				Name string `json:"name"`
			}{Name: namePool[rng.Intn(len(namePool))]})
		}

		out, err := post(ctx, client, cfg.BaseURL+"/submissions", sub)
		if err != nil {
			stats.Failed++
			if cfg.Verbose {
				log.Warn(ctx, "submission failed", logger.Error(err))
			}
			continue
		}
		stats.Submitted++
		if out.Duplicate {
			stats.Duplicate++
		} else {
			stats.Reconciled++
			stats.Conflicts += len(out.Conflicts)
		}
	}

	size, err := rosterSize(ctx, client, cfg.BaseURL)
	if err != nil {
		return stats, err
	}
	stats.RosterSize = size
	stats.Duration = time.Since(stats.StartTime)

	log.Info(ctx, "seeding finished",
		logger.Int("submitted", stats.Submitted),
		logger.Int("conflicts", stats.Conflicts),
		logger.Int("failed", stats.Failed),
		logger.Int("rosterSize", stats.RosterSize),
	)
	return stats, nil
}

func post(ctx context.Context, client *http.Client, url string, body any) (*outcome, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal submission: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post submission: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	var out outcome
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode outcome: %w", err)
	}
	return &out, nil
}

func rosterSize(ctx context.Context, client *http.Client, baseURL string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/roster?query=", nil)
	if err != nil {
		return 0, fmt.Errorf("create roster request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch roster: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var entries []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return 0, fmt.Errorf("decode roster: %w", err)
	}
	return len(entries), nil
}
