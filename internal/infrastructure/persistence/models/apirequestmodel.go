package models

import "ticketdesk/internal/shared/constants"

type APIRequestModel struct {
	ID           uint    `gorm:"primaryKey"`
	Method       string  `gorm:"size:10;not null;index"`
	Path         string  `gorm:"size:2048;not null"`
	ResponseCode int     `gorm:"not null;index"`
	ResponseTime float64 `gorm:"not null"`
	UserAgent    string  `gorm:"size:512"`
	IPAddress    string  `gorm:"column:ip_address;size:45"`
	CreatedAt    int64   `gorm:"autoCreateTime:milli;not null;index"`
}

func (APIRequestModel) TableName() string {
	return constants.TableAPIRequests
}
