package models

import (
	"time"

	"github.com/opsdesk-inc/opsdesk/internal/shared/constants"
)

// UserModel represents the database persistence model for users
type UserModel struct {
	ID           uint   `gorm:"primarykey"`
	Username     string `gorm:"uniqueIndex;not null;size:100"`
	FullName     string `gorm:"size:200"`
	PasswordHash string `gorm:"not null;size:255"`
	Role         string `gorm:"not null;size:20;default:Staff"`
	IsActive     bool   `gorm:"not null"`
	CreatedAt    time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}
