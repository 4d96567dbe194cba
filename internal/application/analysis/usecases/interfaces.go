package usecases

import (
	"context"

	"triage/internal/application/analysis/dto"
)

// AnalyzeExecutor is the handler-facing contract of the analyze use case.
type AnalyzeExecutor interface {
	Execute(ctx context.Context, request dto.AnalyzeRequest) (*dto.AnalysisResultResponse, error)
}

// AnalysisReader is the handler-facing contract of the analysis read
// paths.
type AnalysisReader interface {
	ExecuteLatest(ctx context.Context) (*dto.AnalysisResultResponse, error)
	ExecuteByID(ctx context.Context, runID uint) (*dto.AnalysisResultResponse, error)
	ExecuteList(ctx context.Context, skip, limit int) ([]dto.AnalysisRunResponse, error)
}
