// Package pipeline implements the two-phase ticket analysis workflow:
// classify every ticket, then summarize the batch. Stage two never starts
// before stage one has classified the whole batch, and the per-ticket
// output always comes back in input order.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"triage/internal/domain/analysis"
	"triage/internal/domain/ticket"
	"triage/internal/shared/logger"
)

// EmptySummary is the summary of a run over zero tickets.
const EmptySummary = "No tickets analyzed."

// TicketResult pairs a ticket with its classification.
type TicketResult struct {
	Ticket         *ticket.Ticket
	Classification analysis.Classification
}

// Result is the complete outcome of one pipeline execution.
type Result struct {
	PerTicket []TicketResult
	Summary   string
}

// Pipeline runs the classification and summarization stages. Stage one
// classifies tickets concurrently with a bounded number of workers to
// respect the classification backend's concurrency limits.
type Pipeline struct {
	classifier analysis.Classifier
	workers    int
	logger     logger.Interface
}

func New(classifier analysis.Classifier, workers int, logger logger.Interface) *Pipeline {
	if workers < 1 {
		workers = 1
	}
	return &Pipeline{
		classifier: classifier,
		workers:    workers,
		logger:     logger,
	}
}

// Run executes both stages over the given tickets.
func (p *Pipeline) Run(ctx context.Context, tickets []*ticket.Ticket) Result {
	if len(tickets) == 0 {
		return Result{PerTicket: []TicketResult{}, Summary: EmptySummary}
	}

	p.logger.Infow("classifying tickets", "count", len(tickets), "workers", p.workers)
	perTicket := p.classifyAll(ctx, tickets)
	summary := Summarize(perTicket)

	return Result{PerTicket: perTicket, Summary: summary}
}

// classifyAll fans the batch out over a bounded worker pool. Results are
// written into an index-addressed slice so the output order matches the
// input order regardless of completion order.
func (p *Pipeline) classifyAll(ctx context.Context, tickets []*ticket.Ticket) []TicketResult {
	results := make([]TicketResult, len(tickets))

	sem := make(chan struct{}, p.workers)
	var wg sync.WaitGroup
	for i, t := range tickets {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, t *ticket.Ticket) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = TicketResult{
				Ticket:         t,
				Classification: p.classifier.Classify(ctx, t),
			}
		}(i, t)
	}
	wg.Wait()

	return results
}

// Summarize composes the aggregate summary from stage one's output.
// Category and priority counts are reported in order of first occurrence,
// and an attention clause is appended when any ticket is critical or high.
func Summarize(results []TicketResult) string {
	if len(results) == 0 {
		return EmptySummary
	}

	categoryCounts := newOrderedCounts()
	priorityCounts := newOrderedCounts()
	attentionCount := 0
	for _, r := range results {
		categoryCounts.add(string(r.Classification.Category))
		priorityCounts.add(string(r.Classification.Priority))
		if r.Classification.Priority.RequiresAttention() {
			attentionCount++
		}
	}

	parts := []string{
		fmt.Sprintf("Analyzed %d ticket(s).", len(results)),
		fmt.Sprintf("Categories: %s.", categoryCounts.String()),
		fmt.Sprintf("Priorities: %s.", priorityCounts.String()),
	}
	if attentionCount > 0 {
		parts = append(parts, fmt.Sprintf("⚠️ %d ticket(s) require immediate attention.", attentionCount))
	}

	return strings.Join(parts, " ")
}

// orderedCounts counts keys while remembering first-occurrence order.
type orderedCounts struct {
	keys   []string
	counts map[string]int
}

func newOrderedCounts() *orderedCounts {
	return &orderedCounts{counts: make(map[string]int)}
}

func (o *orderedCounts) add(key string) {
	if _, seen := o.counts[key]; !seen {
		o.keys = append(o.keys, key)
	}
	o.counts[key]++
}

func (o *orderedCounts) String() string {
	parts := make([]string, 0, len(o.keys))
	for _, k := range o.keys {
		parts = append(parts, fmt.Sprintf("%s(%d)", k, o.counts[k]))
	}
	return strings.Join(parts, ", ")
}
