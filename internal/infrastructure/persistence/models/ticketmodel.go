package models

type TicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text;not null"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (TicketModel) TableName() string {
	return "tickets"
}
