// Package usecases contains the application services for the analysis
// domain: executing analysis runs and reading them back.
package usecases

import (
	"context"
	"fmt"

	"triage/internal/application/analysis/dto"
	"triage/internal/application/analysis/pipeline"
	"triage/internal/domain/analysis"
	domainTicket "triage/internal/domain/ticket"
	"triage/internal/infrastructure/cache"
	"triage/internal/shared/constants"
	"triage/internal/shared/db"
	"triage/internal/shared/errors"
	"triage/internal/shared/logger"
)

// AnalyzeTicketsUseCase executes one analysis run: it resolves the target
// tickets, runs the classification pipeline, and persists the run, its
// per-ticket analyses, and the summary in a single transaction. A request
// naming an unknown ticket id is rejected before anything is written.
type AnalyzeTicketsUseCase struct {
	ticketRepo   domainTicket.Repository
	analysisRepo analysis.Repository
	pipeline     *pipeline.Pipeline
	txManager    *db.TransactionManager
	latestCache  cache.LatestAnalysisCache
	logger       logger.Interface
}

// NewAnalyzeTicketsUseCase creates a new analyze tickets use case
func NewAnalyzeTicketsUseCase(
	ticketRepo domainTicket.Repository,
	analysisRepo analysis.Repository,
	p *pipeline.Pipeline,
	txManager *db.TransactionManager,
	latestCache cache.LatestAnalysisCache,
	logger logger.Interface,
) *AnalyzeTicketsUseCase {
	return &AnalyzeTicketsUseCase{
		ticketRepo:   ticketRepo,
		analysisRepo: analysisRepo,
		pipeline:     p,
		txManager:    txManager,
		latestCache:  latestCache,
		logger:       logger,
	}
}

// Execute runs the pipeline over the requested tickets and persists the
// outcome atomically.
func (uc *AnalyzeTicketsUseCase) Execute(ctx context.Context, request dto.AnalyzeRequest) (*dto.AnalysisResultResponse, error) {
	tickets, err := uc.resolveTickets(ctx, request.TicketIDs)
	if err != nil {
		return nil, err
	}
	if len(tickets) == 0 {
		return nil, errors.NewBadRequestError("no tickets to analyze")
	}

	uc.logger.Infow("starting analysis run", "ticket_count", len(tickets))
	result := uc.pipeline.Run(ctx, tickets)

	run := analysis.NewRun()
	var analyses []*analysis.TicketAnalysis

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.analysisRepo.CreateRun(txCtx, run); err != nil {
			return fmt.Errorf("failed to create analysis run: %w", err)
		}

		analyses = make([]*analysis.TicketAnalysis, 0, len(result.PerTicket))
		for _, r := range result.PerTicket {
			ta, err := analysis.NewTicketAnalysis(run.ID(), r.Ticket.ID(), r.Classification)
			if err != nil {
				return fmt.Errorf("failed to build ticket analysis: %w", err)
			}
			analyses = append(analyses, ta)
		}
		if err := uc.analysisRepo.InsertTicketAnalyses(txCtx, analyses); err != nil {
			return fmt.Errorf("failed to insert ticket analyses: %w", err)
		}

		updated, err := uc.analysisRepo.UpdateRunSummary(txCtx, run.ID(), result.Summary)
		if err != nil {
			return fmt.Errorf("failed to update run summary: %w", err)
		}
		run = updated
		return nil
	})
	if err != nil {
		uc.logger.Errorw("analysis run failed", "error", err)
		return nil, err
	}

	if err := uc.latestCache.Invalidate(ctx); err != nil {
		uc.logger.Warnw("failed to invalidate latest analysis cache", "error", err)
	}

	uc.logger.Infow("analysis run completed",
		"run_id", run.ID(), "ticket_count", len(analyses))

	response := &dto.AnalysisResultResponse{
		AnalysisRun:    MapRunToResponse(run),
		TicketAnalyses: make([]dto.TicketAnalysisResponse, 0, len(analyses)),
	}
	for _, ta := range analyses {
		response.TicketAnalyses = append(response.TicketAnalyses, MapTicketAnalysisToResponse(ta, nil))
	}
	return response, nil
}

// resolveTickets loads the target ticket set. Explicit ids must all
// exist; without ids the most recent tickets are analyzed, bounded by
// AnalyzeBatchLimit.
func (uc *AnalyzeTicketsUseCase) resolveTickets(ctx context.Context, ids []uint) ([]*domainTicket.Ticket, error) {
	if len(ids) == 0 {
		tickets, err := uc.ticketRepo.ListRecent(ctx, constants.AnalyzeBatchLimit)
		if err != nil {
			uc.logger.Errorw("failed to list recent tickets", "error", err)
			return nil, fmt.Errorf("failed to list recent tickets: %w", err)
		}
		return tickets, nil
	}

	unique := make([]uint, 0, len(ids))
	seen := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	tickets, err := uc.ticketRepo.GetByIDs(ctx, unique)
	if err != nil {
		uc.logger.Errorw("failed to load tickets", "ids", unique, "error", err)
		return nil, fmt.Errorf("failed to load tickets: %w", err)
	}
	if len(tickets) != len(unique) {
		found := make(map[uint]struct{}, len(tickets))
		for _, t := range tickets {
			found[t.ID()] = struct{}{}
		}
		for _, id := range unique {
			if _, ok := found[id]; !ok {
				return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", id))
			}
		}
	}
	return tickets, nil
}
