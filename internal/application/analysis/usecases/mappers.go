package usecases

import (
	"triage/internal/application/analysis/dto"
	ticketusecases "triage/internal/application/ticket/usecases"
	"triage/internal/domain/analysis"
	domainTicket "triage/internal/domain/ticket"
)

// MapRunToResponse converts a run entity to its wire shape.
func MapRunToResponse(run *analysis.Run) dto.AnalysisRunResponse {
	return dto.AnalysisRunResponse{
		ID:        run.ID(),
		CreatedAt: run.CreatedAt(),
		Summary:   run.Summary(),
	}
}

// MapTicketAnalysisToResponse converts a ticket analysis to its wire
// shape. A non-nil ticket is embedded for the joined read paths.
func MapTicketAnalysisToResponse(ta *analysis.TicketAnalysis, t *domainTicket.Ticket) dto.TicketAnalysisResponse {
	response := dto.TicketAnalysisResponse{
		ID:            ta.ID(),
		AnalysisRunID: ta.RunID(),
		TicketID:      ta.TicketID(),
		Category:      string(ta.Category()),
		Priority:      string(ta.Priority()),
		Notes:         ta.Notes(),
	}
	if t != nil {
		mapped := ticketusecases.MapTicketToResponse(t)
		response.Ticket = &mapped
	}
	return response
}

// mapTicketsByID indexes tickets for the embedded-ticket join.
func mapTicketsByID(tickets []*domainTicket.Ticket) map[uint]*domainTicket.Ticket {
	byID := make(map[uint]*domainTicket.Ticket, len(tickets))
	for _, t := range tickets {
		byID[t.ID()] = t
	}
	return byID
}
