package mappers

import (
	"triage/internal/domain/analysis"
	vo "triage/internal/domain/analysis/valueobjects"
	"triage/internal/infrastructure/persistence/models"
)

// AnalysisMapper handles the conversion between analysis domain entities
// and persistence models.
type AnalysisMapper interface {
	RunToModel(r *analysis.Run) *models.AnalysisRunModel
	RunToDomain(model *models.AnalysisRunModel) (*analysis.Run, error)
	TicketAnalysisToModel(a *analysis.TicketAnalysis) *models.TicketAnalysisModel
	TicketAnalysisToDomain(model *models.TicketAnalysisModel) (*analysis.TicketAnalysis, error)
}

type AnalysisMapperImpl struct{}

func NewAnalysisMapper() AnalysisMapper {
	return &AnalysisMapperImpl{}
}

func (m *AnalysisMapperImpl) RunToModel(r *analysis.Run) *models.AnalysisRunModel {
	return &models.AnalysisRunModel{
		ID:        r.ID(),
		CreatedAt: r.CreatedAt().UnixMilli(),
		Summary:   r.Summary(),
	}
}

func (m *AnalysisMapperImpl) RunToDomain(model *models.AnalysisRunModel) (*analysis.Run, error) {
	return analysis.ReconstructRun(
		model.ID,
		convertMillisToTime(model.CreatedAt),
		model.Summary,
	)
}

func (m *AnalysisMapperImpl) TicketAnalysisToModel(a *analysis.TicketAnalysis) *models.TicketAnalysisModel {
	return &models.TicketAnalysisModel{
		ID:            a.ID(),
		AnalysisRunID: a.RunID(),
		TicketID:      a.TicketID(),
		Category:      a.Category().String(),
		Priority:      a.Priority().String(),
		Notes:         a.Notes(),
	}
}

func (m *AnalysisMapperImpl) TicketAnalysisToDomain(model *models.TicketAnalysisModel) (*analysis.TicketAnalysis, error) {
	return analysis.ReconstructTicketAnalysis(
		model.ID,
		model.AnalysisRunID,
		model.TicketID,
		analysis.Classification{
			Category: vo.Category(model.Category),
			Priority: vo.Priority(model.Priority),
			Notes:    model.Notes,
		},
	)
}
