package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/opsdesk-inc/opsdesk/internal/domain/policy"
	"github.com/opsdesk-inc/opsdesk/internal/interfaces/http/handlers"
	tickethandlers "github.com/opsdesk-inc/opsdesk/internal/interfaces/http/handlers/ticket"
	"github.com/opsdesk-inc/opsdesk/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler        *tickethandlers.TicketHandler
	AttachmentHandler    *handlers.AttachmentHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupTicketRoutes registers the ticket API on api and the public attachment download on engine.
func SetupTicketRoutes(engine *gin.Engine, api *gin.RouterGroup, config *TicketRouteConfig) {
	tickets := api.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		// Collection operations (no ID parameter)
		tickets.POST("",
			config.TicketHandler.CreateTicket)

		tickets.GET("/my-tickets",
			config.TicketHandler.ListMyTickets)
		tickets.GET("/manage",
			config.TicketHandler.ManageTickets)
		tickets.GET("/manage/open-only",
			config.TicketHandler.ListOpenTickets)
		tickets.GET("/stats/summary",
			config.PermissionMiddleware.RequirePermission(policy.ResourceTicket, policy.ActionStats),
			config.TicketHandler.GetStats)
		tickets.GET("/export",
			config.PermissionMiddleware.RequirePermission(policy.ResourceTicket, policy.ActionExport),
			config.TicketHandler.ExportTickets)

		tickets.POST("/:id/comments",
			config.TicketHandler.AddComment)

		// Generic parameterized routes (must come LAST)
		tickets.GET("/:id",
			config.TicketHandler.GetTicket)
		tickets.PUT("/:id",
			config.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id",
			config.TicketHandler.DeleteTicket)
	}

	api.POST("/ticket-upload",
		config.AuthMiddleware.RequireAuth(),
		config.TicketHandler.UploadAttachments)

	// Stored names are random; files are linked from <img> tags that cannot carry a bearer token.
	engine.GET("/uploads/tickets/:name", config.AttachmentHandler.Download)
}
