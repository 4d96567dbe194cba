package analysis

import (
	"context"
	"errors"
)

// ErrRunNotFound is returned when a requested analysis run does not exist.
var ErrRunNotFound = errors.New("analysis run not found")

type Repository interface {
	// CreateRun persists a new run and assigns its id.
	CreateRun(ctx context.Context, run *Run) error

	// UpdateRunSummary sets the summary of an existing run and returns the
	// updated run, or ErrRunNotFound if the run does not exist.
	UpdateRunSummary(ctx context.Context, runID uint, summary string) (*Run, error)

	// InsertTicketAnalyses persists all analyses atomically and assigns
	// their ids. A partial insert is a defect, not an accepted outcome.
	InsertTicketAnalyses(ctx context.Context, analyses []*TicketAnalysis) error

	// GetRun returns the run with the given id or ErrRunNotFound.
	GetRun(ctx context.Context, runID uint) (*Run, error)

	// LatestRun returns the run with the greatest created_at, ties broken
	// by greatest id, or ErrRunNotFound when no runs exist.
	LatestRun(ctx context.Context) (*Run, error)

	// ListRuns returns runs newest first.
	ListRuns(ctx context.Context, skip, limit int) ([]*Run, error)

	// GetTicketAnalysesByRunID returns the analyses belonging to a run,
	// in insertion order.
	GetTicketAnalysesByRunID(ctx context.Context, runID uint) ([]*TicketAnalysis, error)
}
