package dto

import (
	"time"

	"github.com/opsdesk-inc/opsdesk/internal/domain/category"
)

type CategoryDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

type TicketCategoryDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Description string    `json:"description"`
	SLAHours    int       `json:"sla_hours"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// DeleteResult reports whether a ticket category was removed or only archived.
type DeleteResult struct {
	Status string `json:"status"`
}

const (
	DeleteStatusDeleted  = "deleted"
	DeleteStatusArchived = "archived"
)

func ToCategoryDTO(c *category.Category) *CategoryDTO {
	return &CategoryDTO{
		ID:          c.ID(),
		Name:        c.Name(),
		Code:        c.Code(),
		Description: c.Description(),
	}
}

func ToCategoryDTOs(cats []*category.Category) []*CategoryDTO {
	out := make([]*CategoryDTO, 0, len(cats))
	for _, c := range cats {
		out = append(out, ToCategoryDTO(c))
	}
	return out
}

func ToTicketCategoryDTO(c *category.TicketCategory) *TicketCategoryDTO {
	return &TicketCategoryDTO{
		ID:          c.ID(),
		Name:        c.Name(),
		Code:        c.Code(),
		Description: c.Description(),
		SLAHours:    c.SLAHours(),
		IsActive:    c.IsActive(),
		CreatedAt:   c.CreatedAt(),
	}
}

func ToTicketCategoryDTOs(cats []*category.TicketCategory) []*TicketCategoryDTO {
	out := make([]*TicketCategoryDTO, 0, len(cats))
	for _, c := range cats {
		out = append(out, ToTicketCategoryDTO(c))
	}
	return out
}
