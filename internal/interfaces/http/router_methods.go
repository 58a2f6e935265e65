package http

import (
	"github.com/gin-gonic/gin"

	"github.com/opsdesk-inc/opsdesk/internal/interfaces/http/handlers/common"
	"github.com/opsdesk-inc/opsdesk/internal/interfaces/http/middleware"
	"github.com/opsdesk-inc/opsdesk/internal/interfaces/http/routes"
	"github.com/opsdesk-inc/opsdesk/internal/shared/utils"
)

const defaultMetricsPath = "/metrics"

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() error {
	if err := utils.RegisterValidations(common.ValidationTags()); err != nil {
		return err
	}

	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.CustomLogger(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())
	r.engine.Use(middleware.Metrics(r.metrics))

	r.engine.GET("/health", r.hdlrs.userHandler.HealthCheck)
	r.engine.GET("/version", r.hdlrs.userHandler.Version)

	if r.cfg.Metrics.Enabled {
		path := r.cfg.Metrics.Path
		if path == "" {
			path = defaultMetricsPath
		}
		r.engine.GET(path, gin.WrapH(r.metrics.Handler()))
	}

	api := r.engine.Group("/api")

	r.setupUserRoutes(api)
	r.setupTicketRoutes(api)
	r.setupAssetRoutes(api)
	r.setupCategoryRoutes(api)
	r.setupEmployeeRoutes(api)
	r.setupPrintRoutes(api)

	return nil
}

// setupUserRoutes configures login and user administration routes
func (r *Router) setupUserRoutes(api *gin.RouterGroup) {
	routes.SetupUserRoutes(api, &routes.UserRouteConfig{
		AuthHandler:          r.hdlrs.authHandler,
		UserHandler:          r.hdlrs.userHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
		LoginRateLimiter:     r.loginRateLimiter,
	})
}

// setupTicketRoutes configures ticket, upload and attachment routes
func (r *Router) setupTicketRoutes(api *gin.RouterGroup) {
	routes.SetupTicketRoutes(r.engine, api, &routes.TicketRouteConfig{
		TicketHandler:        r.hdlrs.ticketHandler,
		AttachmentHandler:    r.hdlrs.attachmentHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})
}

// setupAssetRoutes configures asset inventory routes
func (r *Router) setupAssetRoutes(api *gin.RouterGroup) {
	routes.SetupAssetRoutes(api, &routes.AssetRouteConfig{
		AssetHandler:   r.hdlrs.assetHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// setupCategoryRoutes configures asset and ticket category routes
func (r *Router) setupCategoryRoutes(api *gin.RouterGroup) {
	routes.SetupCategoryRoutes(api, &routes.CategoryRouteConfig{
		CategoryHandler:      r.hdlrs.categoryHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})
}

// setupEmployeeRoutes configures the HR directory route
func (r *Router) setupEmployeeRoutes(api *gin.RouterGroup) {
	routes.SetupEmployeeRoutes(api, &routes.EmployeeRouteConfig{
		EmployeeHandler: r.hdlrs.employeeHandler,
		AuthMiddleware:  r.authMiddleware,
	})
}

// setupPrintRoutes configures the ID card print log routes
func (r *Router) setupPrintRoutes(api *gin.RouterGroup) {
	routes.SetupPrintRoutes(api, &routes.PrintRouteConfig{
		PrintLogHandler: r.hdlrs.printLogHandler,
		AuthMiddleware:  r.authMiddleware,
	})
}
