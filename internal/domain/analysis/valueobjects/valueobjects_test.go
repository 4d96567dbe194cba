package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{"billing", CategoryBilling},
		{"feature_request", CategoryFeature},
		{" Technical ", CategoryTechnical},
		{"BUG", CategoryBug},
		{"spam", CategoryOther},
		{"", CategoryOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeCategory(tt.in), "input %q", tt.in)
	}
}

func TestNormalizePriority(t *testing.T) {
	tests := []struct {
		in   string
		want Priority
	}{
		{"low", PriorityLow},
		{"CRITICAL", PriorityCritical},
		{" high ", PriorityHigh},
		{"blocker", PriorityMedium},
		{"", PriorityMedium},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizePriority(tt.in), "input %q", tt.in)
	}
}

func TestPriority_RequiresAttention(t *testing.T) {
	assert.True(t, PriorityCritical.RequiresAttention())
	assert.True(t, PriorityHigh.RequiresAttention())
	assert.False(t, PriorityMedium.RequiresAttention())
	assert.False(t, PriorityLow.RequiresAttention())
}
