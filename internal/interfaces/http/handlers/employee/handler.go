// Package employee exposes the read-only HR directory.
package employee

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opsdesk-inc/opsdesk/internal/application/employee/usecases"
	"github.com/opsdesk-inc/opsdesk/internal/domain/employee"
	"github.com/opsdesk-inc/opsdesk/internal/interfaces/http/handlers/common"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
	"github.com/opsdesk-inc/opsdesk/internal/shared/utils"
)

type ListEmployeesExecutor interface {
	Execute(ctx context.Context, query usecases.ListEmployeesQuery) ([]employee.Employee, error)
}

type EmployeeHandler struct {
	listUseCase ListEmployeesExecutor
	logger      logger.Interface
}

func NewEmployeeHandler(listUC ListEmployeesExecutor, logger logger.Interface) *EmployeeHandler {
	return &EmployeeHandler{
		listUseCase: listUC,
		logger:      logger,
	}
}

// ListEmployees handles GET /employees?search=&department=
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	principal, err := common.CurrentPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	employees, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListEmployeesQuery{
		Principal:  principal,
		Search:     c.Query("search"),
		Department: c.Query("department"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", employees)
}
