package stats

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// ErrNoEndpoint is returned by HTTPReporter when no base URL is configured.
var ErrNoEndpoint = errors.New("stats: API URL not configured")

// HTTPReporter posts {"iterations": n} to <BaseURL>/stats.
type HTTPReporter struct {
	BaseURL string
	Client  *http.Client
	Logger  *log.Logger
}

// NewHTTPReporter returns a reporter for baseURL with a 10s client timeout.
func NewHTTPReporter(baseURL string) *HTTPReporter {
	return &HTTPReporter{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 10 * time.Second},
		Logger:  log.Default(),
	}
}

// Report sends one record. With an empty BaseURL it logs a warning and
// returns ErrNoEndpoint without touching the network.
func (r *HTTPReporter) Report(ctx context.Context, iterations int) error {
	logger := r.Logger
	if logger == nil {
		logger = log.Default()
	}
	if r.BaseURL == "" {
		logger.Printf("stats: API URL not configured; skipping stats save")
		return ErrNoEndpoint
	}
	body, err := json.Marshal(Payload{Iterations: iterations})
	if err != nil {
		return fmt.Errorf("stats: encode payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.BaseURL+"/stats", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("stats: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		logger.Printf("stats: failed to save stats: %v", err)
		return fmt.Errorf("stats: post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		logger.Printf("stats: failed to save stats: %s", resp.Status)
		return fmt.Errorf("stats: unexpected status %s: %s", resp.Status, strings.TrimSpace(string(msg)))
	}
	var rec Record
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return fmt.Errorf("stats: decode response: %w", err)
	}
	logger.Printf("stats: saved stats id=%d iterations=%d", rec.ID, rec.Iterations)
	return nil
}
