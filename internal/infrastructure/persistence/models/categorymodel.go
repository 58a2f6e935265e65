package models

import (
	"time"

	"github.com/opsdesk-inc/opsdesk/internal/shared/constants"
)

// CategoryModel is an asset category row.
type CategoryModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;size:100;not null"`
	Code        string `gorm:"uniqueIndex;size:50;not null"`
	Description string `gorm:"type:text"`
}

func (CategoryModel) TableName() string {
	return constants.TableCategories
}

type TicketCategoryModel struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"uniqueIndex;size:100;not null"`
	Code        string    `gorm:"uniqueIndex;size:50;not null"`
	Description string    `gorm:"type:text"`
	SLAHours    int       `gorm:"column:sla_hours;not null;default:24"`
	IsActive    bool      `gorm:"not null;index"`
	CreatedAt   time.Time `gorm:"not null"`
}

func (TicketCategoryModel) TableName() string {
	return constants.TableTicketCategories
}
