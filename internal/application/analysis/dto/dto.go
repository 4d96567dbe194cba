package dto

import (
	"time"

	ticketdto "triage/internal/application/ticket/dto"
)

// AnalyzeRequest is the body of POST /api/analyze. A nil or empty
// TicketIDs analyzes the most recent tickets.
type AnalyzeRequest struct {
	TicketIDs []uint `json:"ticketIds"`
}

// AnalysisRunResponse is the wire representation of an analysis run.
type AnalysisRunResponse struct {
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Summary   *string   `json:"summary"`
}

// TicketAnalysisResponse is the wire representation of one classified
// ticket. Ticket is populated only on the joined read paths.
type TicketAnalysisResponse struct {
	ID            uint                      `json:"id"`
	AnalysisRunID uint                      `json:"analysisRunId"`
	TicketID      uint                      `json:"ticketId"`
	Category      string                    `json:"category"`
	Priority      string                    `json:"priority"`
	Notes         string                    `json:"notes"`
	Ticket        *ticketdto.TicketResponse `json:"ticket,omitempty"`
}

// AnalysisResultResponse pairs a run with its per-ticket analyses.
type AnalysisResultResponse struct {
	AnalysisRun    AnalysisRunResponse      `json:"analysisRun"`
	TicketAnalyses []TicketAnalysisResponse `json:"ticketAnalyses"`
}
