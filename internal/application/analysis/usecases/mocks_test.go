package usecases

import (
	"context"

	"triage/internal/domain/analysis"
	"triage/internal/domain/ticket"
)

type mockTicketRepo struct {
	InsertBatchFunc func(ctx context.Context, tickets []*ticket.Ticket) error
	ListFunc        func(ctx context.Context, skip, limit int) ([]*ticket.Ticket, error)
	GetByIDFunc     func(ctx context.Context, id uint) (*ticket.Ticket, error)
	GetByIDsFunc    func(ctx context.Context, ids []uint) ([]*ticket.Ticket, error)
	ListRecentFunc  func(ctx context.Context, limit int) ([]*ticket.Ticket, error)
}

func (m *mockTicketRepo) InsertBatch(ctx context.Context, tickets []*ticket.Ticket) error {
	return m.InsertBatchFunc(ctx, tickets)
}

func (m *mockTicketRepo) List(ctx context.Context, skip, limit int) ([]*ticket.Ticket, error) {
	return m.ListFunc(ctx, skip, limit)
}

func (m *mockTicketRepo) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockTicketRepo) GetByIDs(ctx context.Context, ids []uint) ([]*ticket.Ticket, error) {
	return m.GetByIDsFunc(ctx, ids)
}

func (m *mockTicketRepo) ListRecent(ctx context.Context, limit int) ([]*ticket.Ticket, error) {
	return m.ListRecentFunc(ctx, limit)
}

type mockAnalysisRepo struct {
	CreateRunFunc                func(ctx context.Context, run *analysis.Run) error
	UpdateRunSummaryFunc         func(ctx context.Context, runID uint, summary string) (*analysis.Run, error)
	InsertTicketAnalysesFunc     func(ctx context.Context, analyses []*analysis.TicketAnalysis) error
	GetRunFunc                   func(ctx context.Context, runID uint) (*analysis.Run, error)
	LatestRunFunc                func(ctx context.Context) (*analysis.Run, error)
	ListRunsFunc                 func(ctx context.Context, skip, limit int) ([]*analysis.Run, error)
	GetTicketAnalysesByRunIDFunc func(ctx context.Context, runID uint) ([]*analysis.TicketAnalysis, error)
}

func (m *mockAnalysisRepo) CreateRun(ctx context.Context, run *analysis.Run) error {
	return m.CreateRunFunc(ctx, run)
}

func (m *mockAnalysisRepo) UpdateRunSummary(ctx context.Context, runID uint, summary string) (*analysis.Run, error) {
	return m.UpdateRunSummaryFunc(ctx, runID, summary)
}

func (m *mockAnalysisRepo) InsertTicketAnalyses(ctx context.Context, analyses []*analysis.TicketAnalysis) error {
	return m.InsertTicketAnalysesFunc(ctx, analyses)
}

func (m *mockAnalysisRepo) GetRun(ctx context.Context, runID uint) (*analysis.Run, error) {
	return m.GetRunFunc(ctx, runID)
}

func (m *mockAnalysisRepo) LatestRun(ctx context.Context) (*analysis.Run, error) {
	return m.LatestRunFunc(ctx)
}

func (m *mockAnalysisRepo) ListRuns(ctx context.Context, skip, limit int) ([]*analysis.Run, error) {
	return m.ListRunsFunc(ctx, skip, limit)
}

func (m *mockAnalysisRepo) GetTicketAnalysesByRunID(ctx context.Context, runID uint) ([]*analysis.TicketAnalysis, error) {
	return m.GetTicketAnalysesByRunIDFunc(ctx, runID)
}

type mockLatestCache struct {
	GetFunc        func(ctx context.Context) (string, error)
	SetFunc        func(ctx context.Context, payload string) error
	InvalidateFunc func(ctx context.Context) error
}

func (m *mockLatestCache) Get(ctx context.Context) (string, error) {
	if m.GetFunc == nil {
		return "", nil
	}
	return m.GetFunc(ctx)
}

func (m *mockLatestCache) Set(ctx context.Context, payload string) error {
	if m.SetFunc == nil {
		return nil
	}
	return m.SetFunc(ctx, payload)
}

func (m *mockLatestCache) Invalidate(ctx context.Context) error {
	if m.InvalidateFunc == nil {
		return nil
	}
	return m.InvalidateFunc(ctx)
}
