package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"triage/internal/domain/analysis"
	"triage/internal/infrastructure/persistence/mappers"
	"triage/internal/infrastructure/persistence/models"
	db "triage/internal/shared/db"
)

type AnalysisRepository struct {
	db     *gorm.DB
	mapper mappers.AnalysisMapper
}

func NewAnalysisRepository(db *gorm.DB) *AnalysisRepository {
	return &AnalysisRepository{
		db:     db,
		mapper: mappers.NewAnalysisMapper(),
	}
}

func (r *AnalysisRepository) CreateRun(ctx context.Context, run *analysis.Run) error {
	model := r.mapper.RunToModel(run)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create analysis run: %w", err)
	}

	return run.SetID(model.ID)
}

func (r *AnalysisRepository) UpdateRunSummary(ctx context.Context, runID uint, summary string) (*analysis.Run, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.AnalysisRunModel{}).
		Where("id = ?", runID).
		Update("summary", summary)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update analysis run summary: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, analysis.ErrRunNotFound
	}

	return r.GetRun(ctx, runID)
}

// InsertTicketAnalyses stores all analyses in one statement; a partial
// insert is never left behind.
func (r *AnalysisRepository) InsertTicketAnalyses(ctx context.Context, analyses []*analysis.TicketAnalysis) error {
	if len(analyses) == 0 {
		return nil
	}

	analysisModels := make([]models.TicketAnalysisModel, len(analyses))
	for i, a := range analyses {
		analysisModels[i] = *r.mapper.TicketAnalysisToModel(a)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(&analysisModels).Error; err != nil {
		return fmt.Errorf("failed to insert ticket analyses: %w", err)
	}

	for i := range analyses {
		if err := analyses[i].SetID(analysisModels[i].ID); err != nil {
			return err
		}
	}

	return nil
}

func (r *AnalysisRepository) GetRun(ctx context.Context, runID uint) (*analysis.Run, error) {
	var model models.AnalysisRunModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, runID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, analysis.ErrRunNotFound
		}
		return nil, fmt.Errorf("failed to find analysis run: %w", err)
	}

	return r.mapper.RunToDomain(&model)
}

func (r *AnalysisRepository) LatestRun(ctx context.Context) (*analysis.Run, error) {
	var model models.AnalysisRunModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Order("created_at DESC, id DESC").
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, analysis.ErrRunNotFound
		}
		return nil, fmt.Errorf("failed to find latest analysis run: %w", err)
	}

	return r.mapper.RunToDomain(&model)
}

func (r *AnalysisRepository) ListRuns(ctx context.Context, skip, limit int) ([]*analysis.Run, error) {
	var runModels []models.AnalysisRunModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Order("created_at DESC, id DESC").
		Offset(skip).
		Limit(limit).
		Find(&runModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list analysis runs: %w", err)
	}

	runs := make([]*analysis.Run, len(runModels))
	for i, model := range runModels {
		run, err := r.mapper.RunToDomain(&model)
		if err != nil {
			return nil, err
		}
		runs[i] = run
	}

	return runs, nil
}

func (r *AnalysisRepository) GetTicketAnalysesByRunID(ctx context.Context, runID uint) ([]*analysis.TicketAnalysis, error) {
	var analysisModels []models.TicketAnalysisModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("analysis_run_id = ?", runID).
		Order("id ASC").
		Find(&analysisModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find ticket analyses: %w", err)
	}

	analyses := make([]*analysis.TicketAnalysis, len(analysisModels))
	for i, model := range analysisModels {
		a, err := r.mapper.TicketAnalysisToDomain(&model)
		if err != nil {
			return nil, err
		}
		analyses[i] = a
	}

	return analyses, nil
}
