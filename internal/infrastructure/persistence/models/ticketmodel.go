package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/opsdesk-inc/opsdesk/internal/shared/constants"
)

type TicketModel struct {
	ID             uint           `gorm:"primaryKey"`
	Title          string         `gorm:"size:255;not null"`
	Description    string         `gorm:"type:text"`
	CategoryID     *uint          `gorm:"index"`
	AssetID        *uint          `gorm:"index"`
	Priority       int            `gorm:"not null;default:2;index"`
	Status         string         `gorm:"size:20;not null;default:Open;index"`
	Attachments    datatypes.JSON `gorm:"type:json"`
	RequesterID    uint           `gorm:"not null;index"`
	AssigneeID     *uint          `gorm:"index"`
	ResolutionNote string         `gorm:"type:text"`
	CreatedAt      time.Time      `gorm:"not null;index"`
	UpdatedAt      time.Time      `gorm:"not null"`
	ResolvedAt     *time.Time

	// No foreign key constraints; ticket comments are removed by the repository.
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}

type CommentModel struct {
	ID        uint      `gorm:"primaryKey"`
	TicketID  uint      `gorm:"not null;index"`
	UserID    *uint     `gorm:"index"`
	Content   string    `gorm:"type:text;not null"`
	Type      string    `gorm:"size:20;not null;default:Comment"`
	CreatedAt time.Time `gorm:"not null;index"`
}

func (CommentModel) TableName() string {
	return constants.TableTicketComments
}
