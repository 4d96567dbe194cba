package ticket

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"triage/internal/application/ticket/dto"
	"triage/internal/interfaces/http/handlers/testutil"
	"triage/internal/shared/errors"
)

type mockSubmitTicketsUC struct {
	result *dto.SubmitTicketsResponse
	err    error
}

func (m *mockSubmitTicketsUC) Execute(_ context.Context, _ dto.SubmitTicketsRequest) (*dto.SubmitTicketsResponse, error) {
	return m.result, m.err
}

type mockTicketReader struct {
	byID []dto.TicketResponse
	list []dto.TicketResponse
	err  error

	gotSkip  int
	gotLimit int
}

func (m *mockTicketReader) ExecuteByID(_ context.Context, id uint) (*dto.TicketResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &m.byID[0], nil
}

func (m *mockTicketReader) ExecuteList(_ context.Context, skip, limit int) ([]dto.TicketResponse, error) {
	m.gotSkip = skip
	m.gotLimit = limit
	return m.list, m.err
}

func TestTicketHandler_SubmitTickets_Success(t *testing.T) {
	now := time.Now().UTC()
	mockUC := &mockSubmitTicketsUC{
		result: &dto.SubmitTicketsResponse{
			Tickets: []dto.TicketResponse{
				{ID: 1, Title: "First", Description: "first description", CreatedAt: now},
			},
		},
	}
	handler := NewTicketHandler(mockUC, &mockTicketReader{})

	reqBody := dto.SubmitTicketsRequest{
		Tickets: []dto.CreateTicketRequest{{Title: "First", Description: "first description"}},
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets", reqBody)

	handler.SubmitTickets(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.SubmitTicketsResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.Len(t, resp.Tickets, 1)
	assert.Equal(t, uint(1), resp.Tickets[0].ID)
	assert.Equal(t, "First", resp.Tickets[0].Title)
}

func TestTicketHandler_SubmitTickets_ValidationError(t *testing.T) {
	mockUC := &mockSubmitTicketsUC{
		err: errors.NewValidationError("ticket 0: title cannot be empty"),
	}
	handler := NewTicketHandler(mockUC, &mockTicketReader{})

	reqBody := dto.SubmitTicketsRequest{
		Tickets: []dto.CreateTicketRequest{{Description: "no title"}},
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets", reqBody)

	handler.SubmitTickets(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.ErrorResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error.Message, "title")
}

func TestTicketHandler_SubmitTickets_MalformedBody(t *testing.T) {
	handler := NewTicketHandler(&mockSubmitTicketsUC{}, &mockTicketReader{})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets", "not an object")

	handler.SubmitTickets(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTicketHandler_ListTickets(t *testing.T) {
	reader := &mockTicketReader{
		list: []dto.TicketResponse{
			{ID: 1, Title: "One"},
			{ID: 2, Title: "Two"},
		},
	}
	handler := NewTicketHandler(&mockSubmitTicketsUC{}, reader)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets", nil)
	testutil.SetQueryParams(c, map[string]string{"skip": "5", "limit": "50"})

	handler.ListTickets(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, reader.gotSkip)
	assert.Equal(t, 50, reader.gotLimit)

	var resp []dto.TicketResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Len(t, resp, 2)
}

func TestTicketHandler_ListTickets_Defaults(t *testing.T) {
	reader := &mockTicketReader{list: []dto.TicketResponse{}}
	handler := NewTicketHandler(&mockSubmitTicketsUC{}, reader)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets", nil)

	handler.ListTickets(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, reader.gotSkip)
	assert.Equal(t, 100, reader.gotLimit)
}

func TestTicketHandler_GetTicket(t *testing.T) {
	tests := []struct {
		name       string
		param      string
		reader     *mockTicketReader
		wantStatus int
	}{
		{
			name:       "existing ticket",
			param:      "3",
			reader:     &mockTicketReader{byID: []dto.TicketResponse{{ID: 3, Title: "Found"}}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown ticket",
			param:      "99",
			reader:     &mockTicketReader{err: errors.NewNotFoundError("ticket not found")},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "non numeric id",
			param:      "abc",
			reader:     &mockTicketReader{},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewTicketHandler(&mockSubmitTicketsUC{}, tt.reader)

			c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets/"+tt.param, nil)
			testutil.SetURLParam(c, "id", tt.param)

			handler.GetTicket(c)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
