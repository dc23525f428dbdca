package models

import "ticketdesk/internal/shared/constants"

// TicketModel stores timestamps as Unix milliseconds.
type TicketModel struct {
	ID            uint   `gorm:"primaryKey"`
	Title         string `gorm:"size:255;not null"`
	Description   string `gorm:"type:text;not null"`
	ReporterEmail string `gorm:"size:255"`
	Category      string `gorm:"size:32;not null;index"`
	Priority      string `gorm:"size:16;not null;index"`
	Status        string `gorm:"size:16;not null;index"`
	CreatedAt     int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt     int64  `gorm:"autoUpdateTime:milli;not null"`
	ResolvedAt    *int64
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}
