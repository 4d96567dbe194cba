// Package analysis holds the analysis-run aggregate: one Run groups the
// per-ticket classification results produced by a single pipeline
// execution, together with the aggregate summary.
package analysis

import (
	"fmt"
	"time"
)

// Run is one execution of the analysis pipeline over a set of tickets.
// Its summary is absent until the summarization stage completes and is
// written exactly once.
type Run struct {
	id        uint
	createdAt time.Time
	summary   *string
}

func NewRun() *Run {
	return &Run{
		createdAt: time.Now(),
	}
}

func ReconstructRun(id uint, createdAt time.Time, summary *string) (*Run, error) {
	if id == 0 {
		return nil, fmt.Errorf("analysis run ID cannot be zero")
	}
	return &Run{
		id:        id,
		createdAt: createdAt,
		summary:   summary,
	}, nil
}

func (r *Run) ID() uint {
	return r.id
}

func (r *Run) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Run) Summary() *string {
	return r.summary
}

func (r *Run) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("analysis run ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("analysis run ID cannot be zero")
	}
	r.id = id
	return nil
}

// SetSummary records the aggregate summary. A run's summary is written
// once, at the end of the owning pipeline execution, and never cleared.
func (r *Run) SetSummary(summary string) error {
	if r.summary != nil {
		return fmt.Errorf("analysis run summary is already set")
	}
	r.summary = &summary
	return nil
}
