// Package classifier provides the two ticket classification strategies:
// a deterministic keyword heuristic and an Anthropic-backed variant that
// falls back to the heuristic on any failure.
package classifier

import (
	"context"
	"fmt"
	"strings"

	"triage/internal/domain/analysis"
	vo "triage/internal/domain/analysis/valueobjects"
	"triage/internal/domain/ticket"
)

// categoryRules are evaluated in order; the first matching rule wins.
// A ticket mentioning both a billing and a bug term is billing.
var categoryRules = []struct {
	category vo.Category
	keywords []string
}{
	{vo.CategoryBilling, []string{"billing", "charge", "payment", "refund", "invoice", "subscription"}},
	{vo.CategoryBug, []string{"bug", "crash", "error", "broken", "not working", "issue"}},
	{vo.CategoryFeature, []string{"feature", "request", "add", "would like", "suggest"}},
	{vo.CategoryAccount, []string{"login", "account", "access", "password", "authentication"}},
	{vo.CategoryTechnical, []string{"technical", "server", "api", "integration"}},
}

// priorityRules are evaluated in order; "critical" outranks "high".
var priorityRules = []struct {
	priority vo.Priority
	keywords []string
}{
	{vo.PriorityCritical, []string{"critical", "urgent", "immediately", "emergency", "data loss"}},
	{vo.PriorityHigh, []string{"high", "important", "asap", "soon"}},
	{vo.PriorityLow, []string{"low", "minor", "whenever"}},
}

// KeywordClassifier classifies tickets by substring matching against
// fixed keyword lists. It needs no external dependency and is fully
// deterministic, which makes it both the standalone strategy and the
// fallback for the Anthropic variant.
type KeywordClassifier struct{}

func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{}
}

func (c *KeywordClassifier) Classify(_ context.Context, t *ticket.Ticket) analysis.Classification {
	text := strings.ToLower(t.Title()) + " " + strings.ToLower(t.Description())

	category := vo.CategoryOther
	for _, rule := range categoryRules {
		if containsAny(text, rule.keywords) {
			category = rule.category
			break
		}
	}

	priority := vo.PriorityMedium
	for _, rule := range priorityRules {
		if containsAny(text, rule.keywords) {
			priority = rule.priority
			break
		}
	}

	return analysis.Classification{
		Category: category,
		Priority: priority,
		Notes:    fmt.Sprintf("Auto-categorized as %s with %s priority based on keywords.", category, priority),
	}
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
