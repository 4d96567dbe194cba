package ticket

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTicket(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		wantErr     string
	}{
		{
			name:        "valid ticket",
			title:       "Broken export",
			description: "CSV export fails for large reports",
		},
		{
			name:        "empty title",
			title:       "",
			description: "something",
			wantErr:     "title is required",
		},
		{
			name:        "empty description",
			title:       "something",
			description: "",
			wantErr:     "description is required",
		},
		{
			name:        "title too long",
			title:       strings.Repeat("a", 201),
			description: "something",
			wantErr:     "title exceeds maximum length",
		},
		{
			name:        "description too long",
			title:       "something",
			description: strings.Repeat("a", 5001),
			wantErr:     "description exceeds maximum length",
		},
		{
			name:        "boundary lengths accepted",
			title:       strings.Repeat("a", 200),
			description: strings.Repeat("a", 5000),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticket, err := NewTicket(tt.title, tt.description)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint(0), ticket.ID())
			assert.Equal(t, tt.title, ticket.Title())
			assert.Equal(t, tt.description, ticket.Description())
			assert.False(t, ticket.CreatedAt().IsZero())
		})
	}
}

func TestTicket_SetID(t *testing.T) {
	ticket, err := NewTicket("Title", "Description")
	require.NoError(t, err)

	require.NoError(t, ticket.SetID(5))
	assert.Equal(t, uint(5), ticket.ID())

	assert.Error(t, ticket.SetID(6), "id must be write-once")
	assert.Equal(t, uint(5), ticket.ID())
}

func TestReconstructTicket(t *testing.T) {
	createdAt := time.Now().Add(-time.Hour)

	ticket, err := ReconstructTicket(3, "Title", "Description", createdAt)
	require.NoError(t, err)
	assert.Equal(t, uint(3), ticket.ID())
	assert.Equal(t, createdAt, ticket.CreatedAt())

	_, err = ReconstructTicket(0, "Title", "Description", createdAt)
	assert.Error(t, err)
}
