package models

type AnalysisRunModel struct {
	ID        uint    `gorm:"primaryKey"`
	CreatedAt int64   `gorm:"autoCreateTime:milli;not null;index"`
	Summary   *string `gorm:"type:text"`
}

func (AnalysisRunModel) TableName() string {
	return "analysis_runs"
}

type TicketAnalysisModel struct {
	ID            uint   `gorm:"primaryKey"`
	AnalysisRunID uint   `gorm:"not null;index"`
	TicketID      uint   `gorm:"not null;index"`
	Category      string `gorm:"size:50;not null"`
	Priority      string `gorm:"size:20;not null"`
	Notes         string `gorm:"type:text"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketAnalysisModel) TableName() string {
	return "ticket_analysis"
}
