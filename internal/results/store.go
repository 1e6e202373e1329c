package results

import (
	"context"
	"time"

	"github.com/google/uuid"

	"enigma/internal/analysis"
)

// Run records one completed brute-force search: what was attacked and the
// ranked configurations it produced.
type Run struct {
	ID               string
	CreatedAt        time.Time
	Reflector        string
	RotorPool        []string
	CiphertextLength int
	Configurations   []analysis.ScoredConfiguration
}

// NewRunID mints a unique identifier for a search run.
func NewRunID() string {
	return uuid.NewString()
}

// Store defines persistence for search runs.
type Store interface {
	Init(ctx context.Context) error
	SaveRun(ctx context.Context, run Run) error
	GetRun(ctx context.Context, id string) (Run, bool, error)
	ListRuns(ctx context.Context) ([]Run, error)
	Close() error
}
