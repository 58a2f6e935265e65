package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/opsdesk-inc/opsdesk/internal/shared/constants"
)

type AssetModel struct {
	ID           uint   `gorm:"primaryKey"`
	AssetCode    string `gorm:"uniqueIndex;size:50;not null"`
	CategoryID   *uint  `gorm:"index"`
	Type         string `gorm:"size:100"`
	Model        string `gorm:"size:200"`
	HealthStatus string `gorm:"size:20;not null;default:Good;index"`
	UsageStatus  string `gorm:"size:20;not null;default:Spare;index"`
	PurchaseDate *datatypes.Date
	Notes        string         `gorm:"type:text"`
	Specs        datatypes.JSON `gorm:"type:json"`
	Software     datatypes.JSON `gorm:"type:json"`
	Monitor      datatypes.JSON `gorm:"type:json"`
	AssignedTo   datatypes.JSON `gorm:"type:json"`
	CreatedAt    time.Time      `gorm:"not null"`
	UpdatedAt    time.Time      `gorm:"not null"`
}

func (AssetModel) TableName() string {
	return constants.TableAssets
}

type AssetHistoryModel struct {
	ID          uint           `gorm:"primaryKey"`
	AssetID     uint           `gorm:"not null;index"`
	Date        datatypes.Date `gorm:"not null;index"`
	ActionType  string         `gorm:"size:50;not null"`
	Description string         `gorm:"type:text"`
	PerformedBy string         `gorm:"size:100"`
}

func (AssetHistoryModel) TableName() string {
	return constants.TableAssetHistory
}
