package models

import (
	"time"

	"github.com/opsdesk-inc/opsdesk/internal/shared/constants"
)

// PrintLogModel is one printed employee ID card.
type PrintLogModel struct {
	ID           uint      `gorm:"primaryKey"`
	EmployeeID   string    `gorm:"size:50;not null;index"`
	EmployeeName string    `gorm:"size:200;not null"`
	Department   string    `gorm:"size:100"`
	JobTitle     string    `gorm:"size:100"`
	Reason       string    `gorm:"size:100;not null"`
	PrintedBy    string    `gorm:"size:100;not null"`
	PrintedAt    time.Time `gorm:"not null;index"`
}

func (PrintLogModel) TableName() string {
	return constants.TablePrintLogs
}

type ToolPrintLogModel struct {
	ID           uint      `gorm:"primaryKey"`
	CardType     string    `gorm:"size:50;not null"`
	SerialNumber string    `gorm:"size:50"`
	Orientation  string    `gorm:"size:20;not null"`
	Quantity     int       `gorm:"not null;default:1"`
	PrintedBy    string    `gorm:"size:100;not null"`
	PrintedAt    time.Time `gorm:"not null;index"`
}

func (ToolPrintLogModel) TableName() string {
	return constants.TableToolPrintLogs
}
