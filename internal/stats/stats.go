// Package stats records how many generations finished runs took. It holds
// the client drivers use to report a converged run and the HTTP service
// that stores those reports.
package stats

import (
	"context"
	"time"
)

// Payload is the body of POST /stats.
type Payload struct {
	Iterations int `json:"iterations"`
}

// Record is one stored report.
type Record struct {
	ID         int64     `json:"id"`
	Iterations int       `json:"iterations"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Reporter receives the iteration count of a converged run.
type Reporter interface {
	Report(ctx context.Context, iterations int) error
}

// Store persists records.
type Store interface {
	Create(ctx context.Context, iterations int) (Record, error)
	List(ctx context.Context) ([]Record, error)
}
