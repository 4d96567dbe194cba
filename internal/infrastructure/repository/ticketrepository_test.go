package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"triage/internal/domain/ticket"
)

func newTicket(t *testing.T, title, description string) *ticket.Ticket {
	t.Helper()
	entity, err := ticket.NewTicket(title, description)
	require.NoError(t, err)
	return entity
}

func TestTicketRepository_InsertBatch_RoundTrip(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()

	tickets := []*ticket.Ticket{
		newTicket(t, "First", "first description"),
		newTicket(t, "Second", "second description"),
	}
	require.NoError(t, repo.InsertBatch(ctx, tickets))

	assert.Equal(t, uint(1), tickets[0].ID())
	assert.Equal(t, uint(2), tickets[1].ID())

	for _, original := range tickets {
		loaded, err := repo.GetByID(ctx, original.ID())
		require.NoError(t, err)
		assert.Equal(t, original.Title(), loaded.Title())
		assert.Equal(t, original.Description(), loaded.Description())
		assert.WithinDuration(t, original.CreatedAt(), loaded.CreatedAt(), time.Millisecond)
	}
}

func TestTicketRepository_GetByID_NotFound(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ticket.ErrNotFound)
}

func TestTicketRepository_List(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()

	var tickets []*ticket.Ticket
	for i := 1; i <= 5; i++ {
		tickets = append(tickets, newTicket(t, fmt.Sprintf("Ticket %d", i), "description"))
	}
	require.NoError(t, repo.InsertBatch(ctx, tickets))

	t.Run("full window", func(t *testing.T) {
		listed, err := repo.List(ctx, 0, 10)
		require.NoError(t, err)
		require.Len(t, listed, 5)
		assert.Equal(t, "Ticket 1", listed[0].Title())
		assert.Equal(t, "Ticket 5", listed[4].Title())
	})

	t.Run("skip and limit", func(t *testing.T) {
		listed, err := repo.List(ctx, 2, 2)
		require.NoError(t, err)
		require.Len(t, listed, 2)
		assert.Equal(t, "Ticket 3", listed[0].Title())
		assert.Equal(t, "Ticket 4", listed[1].Title())
	})

	t.Run("window past the end", func(t *testing.T) {
		listed, err := repo.List(ctx, 10, 10)
		require.NoError(t, err)
		assert.Empty(t, listed)
	})
}

func TestTicketRepository_GetByIDs(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()

	tickets := []*ticket.Ticket{
		newTicket(t, "One", "d"),
		newTicket(t, "Two", "d"),
		newTicket(t, "Three", "d"),
	}
	require.NoError(t, repo.InsertBatch(ctx, tickets))

	t.Run("all present", func(t *testing.T) {
		loaded, err := repo.GetByIDs(ctx, []uint{1, 3})
		require.NoError(t, err)
		require.Len(t, loaded, 2)
		assert.Equal(t, "One", loaded[0].Title())
		assert.Equal(t, "Three", loaded[1].Title())
	})

	t.Run("missing ids are simply absent", func(t *testing.T) {
		loaded, err := repo.GetByIDs(ctx, []uint{2, 99})
		require.NoError(t, err)
		require.Len(t, loaded, 1)
		assert.Equal(t, "Two", loaded[0].Title())
	})

	t.Run("empty input", func(t *testing.T) {
		loaded, err := repo.GetByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, loaded)
	})
}

func TestTicketRepository_ListRecent(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()

	var tickets []*ticket.Ticket
	for i := 1; i <= 4; i++ {
		tickets = append(tickets, newTicket(t, fmt.Sprintf("Ticket %d", i), "description"))
	}
	require.NoError(t, repo.InsertBatch(ctx, tickets))

	// Identical timestamps fall back to id ordering, newest insert first.
	recent, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "Ticket 4", recent[0].Title())
	assert.Equal(t, "Ticket 3", recent[1].Title())
}
