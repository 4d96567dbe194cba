package dto

import "time"

// CreateTicketRequest is one ticket in a submission batch.
type CreateTicketRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SubmitTicketsRequest is the body of POST /api/tickets.
type SubmitTicketsRequest struct {
	Tickets []CreateTicketRequest `json:"tickets"`
}

// TicketResponse is the wire representation of a ticket.
type TicketResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SubmitTicketsResponse wraps the stored tickets of one submission.
type SubmitTicketsResponse struct {
	Tickets []TicketResponse `json:"tickets"`
}
