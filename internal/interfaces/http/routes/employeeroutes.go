package routes

import (
	"github.com/gin-gonic/gin"

	employeehandlers "github.com/opsdesk-inc/opsdesk/internal/interfaces/http/handlers/employee"
	"github.com/opsdesk-inc/opsdesk/internal/interfaces/http/middleware"
)

type EmployeeRouteConfig struct {
	EmployeeHandler *employeehandlers.EmployeeHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupEmployeeRoutes(api *gin.RouterGroup, config *EmployeeRouteConfig) {
	api.GET("/employees", config.AuthMiddleware.RequireAuth(), config.EmployeeHandler.ListEmployees)
}
