package ticket

import (
	"fmt"
	"time"
)

// Ticket is a submitted support request. Tickets are created in bulk,
// never mutated and never deleted.
type Ticket struct {
	id          uint
	title       string
	description string
	createdAt   time.Time
}

func NewTicket(title string, description string) (*Ticket, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}

	return &Ticket{
		title:       title,
		description: description,
		createdAt:   time.Now(),
	}, nil
}

func ReconstructTicket(id uint, title, description string, createdAt time.Time) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}

	return &Ticket{
		id:          id,
		title:       title,
		description: description,
		createdAt:   createdAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}
