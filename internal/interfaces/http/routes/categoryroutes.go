package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/opsdesk-inc/opsdesk/internal/domain/policy"
	categoryhandlers "github.com/opsdesk-inc/opsdesk/internal/interfaces/http/handlers/category"
	"github.com/opsdesk-inc/opsdesk/internal/interfaces/http/middleware"
)

type CategoryRouteConfig struct {
	CategoryHandler      *categoryhandlers.CategoryHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupCategoryRoutes configures the asset and ticket category registries.
func SetupCategoryRoutes(api *gin.RouterGroup, config *CategoryRouteConfig) {
	canWrite := config.PermissionMiddleware.RequirePermission(policy.ResourceCategory, policy.ActionWrite)

	categories := api.Group("/categories")
	categories.Use(config.AuthMiddleware.RequireAuth())
	{
		categories.GET("", config.CategoryHandler.ListCategories)
		categories.POST("", canWrite, config.CategoryHandler.CreateCategory)
		categories.PUT("/:id", canWrite, config.CategoryHandler.UpdateCategory)
		categories.DELETE("/:id", canWrite, config.CategoryHandler.DeleteCategory)
	}

	ticketCategories := api.Group("/ticket-categories")
	ticketCategories.Use(config.AuthMiddleware.RequireAuth())
	{
		ticketCategories.GET("", config.CategoryHandler.ListTicketCategories)
		ticketCategories.POST("", canWrite, config.CategoryHandler.CreateTicketCategory)
		ticketCategories.PUT("/:id", canWrite, config.CategoryHandler.UpdateTicketCategory)
		ticketCategories.DELETE("/:id", canWrite, config.CategoryHandler.DeleteTicketCategory)
	}
}
