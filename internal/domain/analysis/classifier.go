package analysis

import (
	"context"
	"strings"

	vo "triage/internal/domain/analysis/valueobjects"
	"triage/internal/domain/ticket"
)

// Classification is the outcome of classifying one ticket.
type Classification struct {
	Category vo.Category
	Priority vo.Priority
	Notes    string
}

// Normalized returns a copy with category and priority forced into their
// enums and notes trimmed. Persisting an out-of-enum value is a defect,
// so every write path goes through this.
func (c Classification) Normalized() Classification {
	return Classification{
		Category: vo.NormalizeCategory(string(c.Category)),
		Priority: vo.NormalizePriority(string(c.Priority)),
		Notes:    strings.TrimSpace(c.Notes),
	}
}

// Classifier maps a ticket's text to a Classification. Implementations
// must not fail past their caller: when an external dependency is missing
// or misbehaves they recover with a deterministic local heuristic, so the
// analysis pipeline always completes.
type Classifier interface {
	Classify(ctx context.Context, t *ticket.Ticket) Classification
}
