package ticket

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a requested ticket does not exist.
var ErrNotFound = errors.New("ticket not found")

type Repository interface {
	// InsertBatch persists all tickets atomically and assigns their ids.
	// Either every ticket in the batch is stored or none is.
	InsertBatch(ctx context.Context, tickets []*Ticket) error

	// List returns tickets ordered by id, skipping the first skip rows.
	List(ctx context.Context, skip, limit int) ([]*Ticket, error)

	// GetByID returns the ticket with the given id or ErrNotFound.
	GetByID(ctx context.Context, id uint) (*Ticket, error)

	// GetByIDs returns only the tickets that exist; callers detect missing
	// ids by comparing the returned count against the requested count.
	GetByIDs(ctx context.Context, ids []uint) ([]*Ticket, error)

	// ListRecent returns up to limit tickets, newest first.
	ListRecent(ctx context.Context, limit int) ([]*Ticket, error)
}
