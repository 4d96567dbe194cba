package analysis

import (
	"fmt"

	vo "triage/internal/domain/analysis/valueobjects"
)

// TicketAnalysis is the classification result for one ticket within one
// run. Rows are created in bulk after classification and never updated.
type TicketAnalysis struct {
	id             uint
	runID          uint
	ticketID       uint
	classification Classification
}

func NewTicketAnalysis(runID, ticketID uint, c Classification) (*TicketAnalysis, error) {
	if runID == 0 {
		return nil, fmt.Errorf("analysis run ID is required")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &TicketAnalysis{
		runID:          runID,
		ticketID:       ticketID,
		classification: c.Normalized(),
	}, nil
}

func ReconstructTicketAnalysis(id, runID, ticketID uint, c Classification) (*TicketAnalysis, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket analysis ID cannot be zero")
	}
	if runID == 0 {
		return nil, fmt.Errorf("analysis run ID is required")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &TicketAnalysis{
		id:             id,
		runID:          runID,
		ticketID:       ticketID,
		classification: c,
	}, nil
}

func (a *TicketAnalysis) ID() uint {
	return a.id
}

func (a *TicketAnalysis) RunID() uint {
	return a.runID
}

func (a *TicketAnalysis) TicketID() uint {
	return a.ticketID
}

func (a *TicketAnalysis) Category() vo.Category {
	return a.classification.Category
}

func (a *TicketAnalysis) Priority() vo.Priority {
	return a.classification.Priority
}

func (a *TicketAnalysis) Notes() string {
	return a.classification.Notes
}

func (a *TicketAnalysis) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("ticket analysis ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket analysis ID cannot be zero")
	}
	a.id = id
	return nil
}
