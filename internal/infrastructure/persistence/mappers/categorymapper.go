package mappers

import (
	"github.com/opsdesk-inc/opsdesk/internal/domain/category"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/persistence/models"
)

func CategoryToModel(c *category.Category) *models.CategoryModel {
	return &models.CategoryModel{
		ID:          c.ID(),
		Name:        c.Name(),
		Code:        c.Code(),
		Description: c.Description(),
	}
}

func CategoryToDomain(model *models.CategoryModel) *category.Category {
	return category.ReconstructCategory(model.ID, model.Name, model.Code, model.Description)
}

func TicketCategoryToModel(c *category.TicketCategory) *models.TicketCategoryModel {
	return &models.TicketCategoryModel{
		ID:          c.ID(),
		Name:        c.Name(),
		Code:        c.Code(),
		Description: c.Description(),
		SLAHours:    c.SLAHours(),
		IsActive:    c.IsActive(),
		CreatedAt:   c.CreatedAt(),
	}
}

func TicketCategoryToDomain(model *models.TicketCategoryModel) *category.TicketCategory {
	return category.ReconstructTicketCategory(
		model.ID,
		model.Name,
		model.Code,
		model.Description,
		model.SLAHours,
		model.IsActive,
		model.CreatedAt.UTC(),
	)
}
