package usecases

import (
	"context"

	"triage/internal/application/ticket/dto"
)

// SubmitTicketsExecutor is the handler-facing contract of the submit
// tickets use case.
type SubmitTicketsExecutor interface {
	Execute(ctx context.Context, request dto.SubmitTicketsRequest) (*dto.SubmitTicketsResponse, error)
}

// TicketReader is the handler-facing contract of the ticket read paths.
type TicketReader interface {
	ExecuteByID(ctx context.Context, id uint) (*dto.TicketResponse, error)
	ExecuteList(ctx context.Context, skip, limit int) ([]dto.TicketResponse, error)
}
