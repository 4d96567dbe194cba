package valueobjects

import "strings"

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

var validPriorities = map[Priority]bool{
	PriorityLow:      true,
	PriorityMedium:   true,
	PriorityHigh:     true,
	PriorityCritical: true,
}

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	return validPriorities[p]
}

// RequiresAttention reports whether tickets with this priority count
// toward the summary's immediate-attention clause.
func (p Priority) RequiresAttention() bool {
	return p == PriorityCritical || p == PriorityHigh
}

// NormalizePriority maps arbitrary classifier output onto the priority
// enum, substituting PriorityMedium for anything outside it.
func NormalizePriority(s string) Priority {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return PriorityMedium
	}
	return p
}
