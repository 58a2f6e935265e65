package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/opsdesk-inc/opsdesk/internal/domain/policy"
	"github.com/opsdesk-inc/opsdesk/internal/interfaces/http/handlers"
	"github.com/opsdesk-inc/opsdesk/internal/interfaces/http/middleware"
)

// UserRouteConfig holds dependencies for login and user management routes.
type UserRouteConfig struct {
	AuthHandler          *handlers.AuthHandler
	UserHandler          *handlers.UserHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	LoginRateLimiter     *middleware.RateLimiter
}

// SetupUserRoutes configures login and user management routes.
func SetupUserRoutes(api *gin.RouterGroup, cfg *UserRouteConfig) {
	api.POST("/login", cfg.LoginRateLimiter.Limit(), cfg.AuthHandler.Login)

	canManage := cfg.PermissionMiddleware.RequirePermission(policy.ResourceUser, policy.ActionManage)

	users := api.Group("/users")
	users.Use(cfg.AuthMiddleware.RequireAuth())
	{
		// Specific named endpoints (must come BEFORE /:id to avoid conflicts)
		users.GET("/me", cfg.UserHandler.Me)

		users.GET("", canManage, cfg.UserHandler.ListUsers)
		users.POST("", canManage, cfg.UserHandler.CreateUser)
		users.DELETE("/:id", canManage, cfg.UserHandler.DeleteUser)
	}
}
