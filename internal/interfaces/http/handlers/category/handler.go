// Package category serves the asset and ticket category registries.
package category

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opsdesk-inc/opsdesk/internal/application/category/dto"
	"github.com/opsdesk-inc/opsdesk/internal/application/category/usecases"
	"github.com/opsdesk-inc/opsdesk/internal/domain/policy"
	"github.com/opsdesk-inc/opsdesk/internal/interfaces/http/handlers/common"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
	"github.com/opsdesk-inc/opsdesk/internal/shared/utils"
)

type AssetCategoryService interface {
	List(ctx context.Context) ([]*dto.CategoryDTO, error)
	Create(ctx context.Context, cmd usecases.CategoryCommand) (*dto.CategoryDTO, error)
	Update(ctx context.Context, cmd usecases.CategoryCommand) (*dto.CategoryDTO, error)
	Delete(ctx context.Context, principal policy.Principal, id uint) error
}

type TicketCategoryService interface {
	List(ctx context.Context, activeOnly bool) ([]*dto.TicketCategoryDTO, error)
	Create(ctx context.Context, cmd usecases.CreateTicketCategoryCommand) (*dto.TicketCategoryDTO, error)
	Update(ctx context.Context, cmd usecases.UpdateTicketCategoryCommand) (*dto.TicketCategoryDTO, error)
	Delete(ctx context.Context, principal policy.Principal, id uint) (*dto.DeleteResult, error)
}

type CategoryRequest struct {
	Name        string `json:"name" binding:"required,max=128"`
	Code        string `json:"code" binding:"required,max=32"`
	Description string `json:"description"`
}

type CreateTicketCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=128"`
	Code        string `json:"code" binding:"required,max=32"`
	Description string `json:"description"`
	SLAHours    *int   `json:"sla_hours" binding:"omitempty,min=1"`
	IsActive    *bool  `json:"is_active"`
}

type UpdateTicketCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=128"`
	Code        *string `json:"code" binding:"omitempty,min=1,max=32"`
	Description *string `json:"description"`
	SLAHours    *int    `json:"sla_hours" binding:"omitempty,min=1"`
	IsActive    *bool   `json:"is_active"`
}

type CategoryHandler struct {
	assetCategories  AssetCategoryService
	ticketCategories TicketCategoryService
	logger           logger.Interface
}

func NewCategoryHandler(assetCategories AssetCategoryService, ticketCategories TicketCategoryService, logger logger.Interface) *CategoryHandler {
	return &CategoryHandler{
		assetCategories:  assetCategories,
		ticketCategories: ticketCategories,
		logger:           logger,
	}
}

// ListCategories handles GET /categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	result, err := h.assetCategories.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateCategory handles POST /categories
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	principal, err := common.CurrentPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create category", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.assetCategories.Create(c.Request.Context(), usecases.CategoryCommand{
		Principal:   principal,
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Category created successfully")
}

// UpdateCategory handles PUT /categories/:id
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	principal, err := common.CurrentPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	id, err := utils.ParseIDParam(c, "id", "category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update category", "category_id", id, "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.assetCategories.Update(c.Request.Context(), usecases.CategoryCommand{
		Principal:   principal,
		ID:          id,
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Category updated successfully", result)
}

// DeleteCategory handles DELETE /categories/:id
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	principal, err := common.CurrentPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	id, err := utils.ParseIDParam(c, "id", "category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.assetCategories.Delete(c.Request.Context(), principal, id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Category deleted successfully", nil)
}

// ListTicketCategories handles GET /ticket-categories?active_only=true
func (h *CategoryHandler) ListTicketCategories(c *gin.Context) {
	activeOnly := c.Query("active_only") == "true" || c.Query("active_only") == "1"

	result, err := h.ticketCategories.List(c.Request.Context(), activeOnly)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateTicketCategory handles POST /ticket-categories
func (h *CategoryHandler) CreateTicketCategory(c *gin.Context) {
	principal, err := common.CurrentPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateTicketCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket category", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.ticketCategories.Create(c.Request.Context(), usecases.CreateTicketCategoryCommand{
		Principal:   principal,
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		SLAHours:    req.SLAHours,
		IsActive:    req.IsActive,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket category created successfully")
}

// UpdateTicketCategory handles PUT /ticket-categories/:id
func (h *CategoryHandler) UpdateTicketCategory(c *gin.Context) {
	principal, err := common.CurrentPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	id, err := utils.ParseIDParam(c, "id", "ticket category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket category", "category_id", id, "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.ticketCategories.Update(c.Request.Context(), usecases.UpdateTicketCategoryCommand{
		Principal:   principal,
		ID:          id,
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		SLAHours:    req.SLAHours,
		IsActive:    req.IsActive,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket category updated successfully", result)
}

// DeleteTicketCategory handles DELETE /ticket-categories/:id. A category still referenced by
// tickets is archived instead of removed; the response status says which happened.
func (h *CategoryHandler) DeleteTicketCategory(c *gin.Context) {
	principal, err := common.CurrentPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	id, err := utils.ParseIDParam(c, "id", "ticket category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.ticketCategories.Delete(c.Request.Context(), principal, id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
