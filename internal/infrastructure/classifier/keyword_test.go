package classifier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "triage/internal/domain/analysis/valueobjects"
	"triage/internal/domain/ticket"
)

func mustTicket(t *testing.T, title, description string) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(title, description)
	require.NoError(t, err)
	return tk
}

func TestKeywordClassifier_Classify(t *testing.T) {
	tests := []struct {
		name         string
		title        string
		description  string
		wantCategory vo.Category
		wantPriority vo.Priority
	}{
		{
			name:         "billing keyword in title",
			title:        "Wrong charge on my invoice",
			description:  "I was charged twice this month",
			wantCategory: vo.CategoryBilling,
			wantPriority: vo.PriorityMedium,
		},
		{
			name:         "bug with critical priority",
			title:        "App crash on startup",
			description:  "This is urgent, we lose work every time",
			wantCategory: vo.CategoryBug,
			wantPriority: vo.PriorityCritical,
		},
		{
			name:         "feature request low priority",
			title:        "Feature suggestion",
			description:  "Would like dark mode, minor thing, whenever you get to it",
			wantCategory: vo.CategoryFeature,
			wantPriority: vo.PriorityLow,
		},
		{
			name:         "account access high priority",
			title:        "Cannot login",
			description:  "Password reset not arriving, need access asap",
			wantCategory: vo.CategoryAccount,
			wantPriority: vo.PriorityHigh,
		},
		{
			name:         "technical",
			title:        "API integration question",
			description:  "How do I configure the webhook endpoint",
			wantCategory: vo.CategoryTechnical,
			wantPriority: vo.PriorityMedium,
		},
		{
			name:         "no keyword matches",
			title:        "General question",
			description:  "Just wondering about your roadmap",
			wantCategory: vo.CategoryOther,
			wantPriority: vo.PriorityMedium,
		},
		{
			name:         "billing wins over bug when both match",
			title:        "Billing page broken",
			description:  "The invoice screen shows an error",
			wantCategory: vo.CategoryBilling,
			wantPriority: vo.PriorityMedium,
		},
		{
			name:         "critical wins over high when both match",
			title:        "Urgent and important",
			description:  "Emergency, please fix asap",
			wantCategory: vo.CategoryOther,
			wantPriority: vo.PriorityCritical,
		},
		{
			name:         "matching is case insensitive",
			title:        "REFUND please",
			description:  "URGENT",
			wantCategory: vo.CategoryBilling,
			wantPriority: vo.PriorityCritical,
		},
	}

	c := NewKeywordClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(context.Background(), mustTicket(t, tt.title, tt.description))
			assert.Equal(t, tt.wantCategory, got.Category)
			assert.Equal(t, tt.wantPriority, got.Priority)
			assert.NotEmpty(t, got.Notes)
		})
	}
}

func TestKeywordClassifier_Notes(t *testing.T) {
	c := NewKeywordClassifier()
	got := c.Classify(context.Background(), mustTicket(t, "App crash", "urgent"))
	assert.Equal(t, "Auto-categorized as bug with critical priority based on keywords.", got.Notes)
}
