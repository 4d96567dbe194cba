package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"triage/internal/application/ticket/dto"
	domainTicket "triage/internal/domain/ticket"
	"triage/internal/shared/errors"
	"triage/internal/shared/logger"
)

// GetTicketUseCase handles the business logic for retrieving tickets.
type GetTicketUseCase struct {
	ticketRepo domainTicket.Repository
	logger     logger.Interface
}

// NewGetTicketUseCase creates a new get ticket use case
func NewGetTicketUseCase(ticketRepo domainTicket.Repository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// ExecuteByID retrieves a single ticket by id.
func (uc *GetTicketUseCase) ExecuteByID(ctx context.Context, id uint) (*dto.TicketResponse, error) {
	if id == 0 {
		return nil, errors.NewValidationError("ticket ID cannot be zero")
	}

	ticketEntity, err := uc.ticketRepo.GetByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, domainTicket.ErrNotFound) {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		uc.logger.Errorw("failed to get ticket", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	response := MapTicketToResponse(ticketEntity)
	return &response, nil
}

// ExecuteList retrieves a window of tickets ordered by id.
func (uc *GetTicketUseCase) ExecuteList(ctx context.Context, skip, limit int) ([]dto.TicketResponse, error) {
	tickets, err := uc.ticketRepo.List(ctx, skip, limit)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "skip", skip, "limit", limit, "error", err)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	responses := make([]dto.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		responses = append(responses, MapTicketToResponse(t))
	}
	return responses, nil
}
