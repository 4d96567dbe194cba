package usecases

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"

	"triage/internal/application/analysis/dto"
	"triage/internal/domain/analysis"
	domainTicket "triage/internal/domain/ticket"
	"triage/internal/infrastructure/cache"
	"triage/internal/shared/errors"
	"triage/internal/shared/logger"
)

// GetAnalysisUseCase handles the read side of analysis runs: the latest
// run, a specific run, and the run listing. The latest-run payload is
// served from the cache when available.
type GetAnalysisUseCase struct {
	ticketRepo   domainTicket.Repository
	analysisRepo analysis.Repository
	latestCache  cache.LatestAnalysisCache
	logger       logger.Interface
}

// NewGetAnalysisUseCase creates a new get analysis use case
func NewGetAnalysisUseCase(
	ticketRepo domainTicket.Repository,
	analysisRepo analysis.Repository,
	latestCache cache.LatestAnalysisCache,
	logger logger.Interface,
) *GetAnalysisUseCase {
	return &GetAnalysisUseCase{
		ticketRepo:   ticketRepo,
		analysisRepo: analysisRepo,
		latestCache:  latestCache,
		logger:       logger,
	}
}

// ExecuteLatest returns the most recent run joined with its analyses and
// their source tickets.
func (uc *GetAnalysisUseCase) ExecuteLatest(ctx context.Context) (*dto.AnalysisResultResponse, error) {
	if cached, err := uc.latestCache.Get(ctx); err != nil {
		uc.logger.Warnw("failed to read latest analysis cache", "error", err)
	} else if cached != "" {
		var response dto.AnalysisResultResponse
		if jsonErr := json.Unmarshal([]byte(cached), &response); jsonErr != nil {
			uc.logger.Warnw("discarding malformed latest analysis cache entry", "error", jsonErr)
		} else {
			uc.logger.Debugw("latest analysis served from cache")
			return &response, nil
		}
	}

	run, err := uc.analysisRepo.LatestRun(ctx)
	if err != nil {
		if stderrors.Is(err, analysis.ErrRunNotFound) {
			return nil, errors.NewNotFoundError("no analysis runs found")
		}
		uc.logger.Errorw("failed to get latest analysis run", "error", err)
		return nil, fmt.Errorf("failed to get latest analysis run: %w", err)
	}

	response, err := uc.buildResult(ctx, run)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(response); err == nil {
		if err := uc.latestCache.Set(ctx, string(payload)); err != nil {
			uc.logger.Warnw("failed to cache latest analysis", "error", err)
		}
	}
	return response, nil
}

// ExecuteByID returns one run joined with its analyses and tickets.
func (uc *GetAnalysisUseCase) ExecuteByID(ctx context.Context, runID uint) (*dto.AnalysisResultResponse, error) {
	if runID == 0 {
		return nil, errors.NewValidationError("analysis run ID cannot be zero")
	}

	run, err := uc.analysisRepo.GetRun(ctx, runID)
	if err != nil {
		if stderrors.Is(err, analysis.ErrRunNotFound) {
			return nil, errors.NewNotFoundError("analysis run not found")
		}
		uc.logger.Errorw("failed to get analysis run", "run_id", runID, "error", err)
		return nil, fmt.Errorf("failed to get analysis run: %w", err)
	}

	return uc.buildResult(ctx, run)
}

// ExecuteList returns runs newest first.
func (uc *GetAnalysisUseCase) ExecuteList(ctx context.Context, skip, limit int) ([]dto.AnalysisRunResponse, error) {
	runs, err := uc.analysisRepo.ListRuns(ctx, skip, limit)
	if err != nil {
		uc.logger.Errorw("failed to list analysis runs", "skip", skip, "limit", limit, "error", err)
		return nil, fmt.Errorf("failed to list analysis runs: %w", err)
	}

	responses := make([]dto.AnalysisRunResponse, 0, len(runs))
	for _, run := range runs {
		responses = append(responses, MapRunToResponse(run))
	}
	return responses, nil
}

// buildResult joins a run with its analyses and the analyzed tickets.
// Tickets deleted since the run was recorded are simply not embedded.
func (uc *GetAnalysisUseCase) buildResult(ctx context.Context, run *analysis.Run) (*dto.AnalysisResultResponse, error) {
	analyses, err := uc.analysisRepo.GetTicketAnalysesByRunID(ctx, run.ID())
	if err != nil {
		uc.logger.Errorw("failed to get ticket analyses", "run_id", run.ID(), "error", err)
		return nil, fmt.Errorf("failed to get ticket analyses: %w", err)
	}

	ticketIDs := make([]uint, 0, len(analyses))
	for _, ta := range analyses {
		ticketIDs = append(ticketIDs, ta.TicketID())
	}

	var ticketsByID map[uint]*domainTicket.Ticket
	if len(ticketIDs) > 0 {
		tickets, err := uc.ticketRepo.GetByIDs(ctx, ticketIDs)
		if err != nil {
			uc.logger.Errorw("failed to load analyzed tickets", "run_id", run.ID(), "error", err)
			return nil, fmt.Errorf("failed to load analyzed tickets: %w", err)
		}
		ticketsByID = mapTicketsByID(tickets)
	}

	response := &dto.AnalysisResultResponse{
		AnalysisRun:    MapRunToResponse(run),
		TicketAnalyses: make([]dto.TicketAnalysisResponse, 0, len(analyses)),
	}
	for _, ta := range analyses {
		response.TicketAnalyses = append(response.TicketAnalyses, MapTicketAnalysisToResponse(ta, ticketsByID[ta.TicketID()]))
	}
	return response, nil
}
