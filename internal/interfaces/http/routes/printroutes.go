package routes

import (
	"github.com/gin-gonic/gin"

	printloghandlers "github.com/opsdesk-inc/opsdesk/internal/interfaces/http/handlers/printlog"
	"github.com/opsdesk-inc/opsdesk/internal/interfaces/http/middleware"
)

type PrintRouteConfig struct {
	PrintLogHandler *printloghandlers.PrintLogHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// SetupPrintRoutes configures the ID card print audit log.
func SetupPrintRoutes(api *gin.RouterGroup, config *PrintRouteConfig) {
	prints := api.Group("/print")
	prints.Use(config.AuthMiddleware.RequireAuth())
	{
		prints.POST("/log", config.PrintLogHandler.LogPrint)
		prints.POST("/log-tool", config.PrintLogHandler.LogToolPrint)
		prints.GET("/stats", config.PrintLogHandler.GetStats)
	}
}
