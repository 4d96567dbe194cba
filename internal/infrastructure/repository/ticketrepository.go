package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"triage/internal/domain/ticket"
	"triage/internal/infrastructure/persistence/mappers"
	"triage/internal/infrastructure/persistence/models"
	db "triage/internal/shared/db"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

// InsertBatch stores all tickets in one statement so either every row is
// persisted or none is, and copies the assigned ids back onto the
// entities in input order.
func (r *TicketRepository) InsertBatch(ctx context.Context, tickets []*ticket.Ticket) error {
	if len(tickets) == 0 {
		return nil
	}

	ticketModels := make([]models.TicketModel, len(tickets))
	for i, t := range tickets {
		ticketModels[i] = *r.mapper.ToModel(t)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(&ticketModels).Error; err != nil {
		return fmt.Errorf("failed to insert tickets: %w", err)
	}

	for i := range tickets {
		if err := tickets[i].SetID(ticketModels[i].ID); err != nil {
			return err
		}
	}

	return nil
}

func (r *TicketRepository) List(ctx context.Context, skip, limit int) ([]*ticket.Ticket, error) {
	var ticketModels []models.TicketModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Order("id ASC").
		Offset(skip).
		Limit(limit).
		Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return r.toDomainSlice(ticketModels)
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ticket.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) GetByIDs(ctx context.Context, ids []uint) ([]*ticket.Ticket, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var ticketModels []models.TicketModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find tickets by ids: %w", err)
	}

	return r.toDomainSlice(ticketModels)
}

func (r *TicketRepository) ListRecent(ctx context.Context, limit int) ([]*ticket.Ticket, error) {
	var ticketModels []models.TicketModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list recent tickets: %w", err)
	}

	return r.toDomainSlice(ticketModels)
}

func (r *TicketRepository) toDomainSlice(ticketModels []models.TicketModel) ([]*ticket.Ticket, error) {
	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i, model := range ticketModels {
		t, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		tickets[i] = t
	}
	return tickets, nil
}
