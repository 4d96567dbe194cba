// Package usecases contains the application services for the ticket
// domain: submitting batches and reading tickets back.
package usecases

import (
	"context"
	"fmt"

	"triage/internal/application/ticket/dto"
	domainTicket "triage/internal/domain/ticket"
	"triage/internal/shared/errors"
	"triage/internal/shared/logger"
)

// SubmitTicketsUseCase handles the business logic for storing a batch of
// submitted tickets.
type SubmitTicketsUseCase struct {
	ticketRepo domainTicket.Repository
	logger     logger.Interface
}

// NewSubmitTicketsUseCase creates a new submit tickets use case
func NewSubmitTicketsUseCase(ticketRepo domainTicket.Repository, logger logger.Interface) *SubmitTicketsUseCase {
	return &SubmitTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute validates and persists the batch. Validation failures reject
// the whole batch before anything is written.
func (uc *SubmitTicketsUseCase) Execute(ctx context.Context, request dto.SubmitTicketsRequest) (*dto.SubmitTicketsResponse, error) {
	uc.logger.Infow("executing submit tickets", "count", len(request.Tickets))

	if len(request.Tickets) == 0 {
		return nil, errors.NewValidationError("tickets cannot be empty")
	}

	tickets := make([]*domainTicket.Ticket, 0, len(request.Tickets))
	for i, req := range request.Tickets {
		ticketEntity, err := domainTicket.NewTicket(req.Title, req.Description)
		if err != nil {
			return nil, errors.NewValidationError(fmt.Sprintf("ticket %d: %s", i, err.Error()))
		}
		tickets = append(tickets, ticketEntity)
	}

	if err := uc.ticketRepo.InsertBatch(ctx, tickets); err != nil {
		uc.logger.Errorw("failed to insert tickets", "count", len(tickets), "error", err)
		return nil, fmt.Errorf("failed to insert tickets: %w", err)
	}

	response := &dto.SubmitTicketsResponse{
		Tickets: make([]dto.TicketResponse, 0, len(tickets)),
	}
	for _, t := range tickets {
		response.Tickets = append(response.Tickets, MapTicketToResponse(t))
	}
	return response, nil
}

// MapTicketToResponse converts a ticket entity to its wire shape.
func MapTicketToResponse(t *domainTicket.Ticket) dto.TicketResponse {
	return dto.TicketResponse{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		CreatedAt:   t.CreatedAt(),
	}
}
