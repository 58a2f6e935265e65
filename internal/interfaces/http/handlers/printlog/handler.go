// Package printlog records ID card print runs and serves the monthly print report.
package printlog

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opsdesk-inc/opsdesk/internal/application/printlog/dto"
	"github.com/opsdesk-inc/opsdesk/internal/application/printlog/usecases"
	"github.com/opsdesk-inc/opsdesk/internal/domain/policy"
	"github.com/opsdesk-inc/opsdesk/internal/interfaces/http/handlers/common"
	"github.com/opsdesk-inc/opsdesk/internal/shared/constants"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
	"github.com/opsdesk-inc/opsdesk/internal/shared/utils"
)

type PrintLogService interface {
	LogCardPrints(ctx context.Context, cmd usecases.LogCardPrintsCommand) (*dto.LogResult, error)
	LogToolPrint(ctx context.Context, cmd usecases.LogToolPrintCommand) (*dto.ToolPrintDTO, error)
	Stats(ctx context.Context, principal policy.Principal) ([]dto.MonthlyStatsDTO, error)
}

type PrintItemRequest struct {
	EmployeeID   string `json:"employee_id" binding:"required,max=50"`
	EmployeeName string `json:"employee_name" binding:"required,max=200"`
	Department   string `json:"department" binding:"max=100"`
	JobTitle     string `json:"job_title" binding:"max=100"`
	Reason       string `json:"reason" binding:"max=100"`
}

type LogPrintRequest struct {
	Employees []PrintItemRequest `json:"employees" binding:"required,min=1,max=500,dive"`
	Reason    string             `json:"reason" binding:"max=100"`
}

type LogToolPrintRequest struct {
	CardType     string `json:"card_type" binding:"required,max=50"`
	SerialNumber string `json:"serial_number" binding:"max=50"`
	Orientation  string `json:"orientation" binding:"omitempty,oneof=portrait landscape"`
	Quantity     int    `json:"quantity" binding:"required,min=1,max=1000"`
}

type PrintLogHandler struct {
	service PrintLogService
	logger  logger.Interface
}

func NewPrintLogHandler(service PrintLogService, logger logger.Interface) *PrintLogHandler {
	return &PrintLogHandler{
		service: service,
		logger:  logger,
	}
}

// LogPrint handles POST /print/log
func (h *PrintLogHandler) LogPrint(c *gin.Context) {
	principal, err := common.CurrentPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req LogPrintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for log print", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	items := make([]usecases.CardItem, 0, len(req.Employees))
	for _, e := range req.Employees {
		items = append(items, usecases.CardItem{
			EmployeeID:   e.EmployeeID,
			EmployeeName: e.EmployeeName,
			Department:   e.Department,
			JobTitle:     e.JobTitle,
			Reason:       e.Reason,
		})
	}

	result, err := h.service.LogCardPrints(c.Request.Context(), usecases.LogCardPrintsCommand{
		Principal: principal,
		PrintedBy: c.GetString(constants.ContextKeyUsername),
		Reason:    req.Reason,
		Employees: items,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Print run logged")
}

// LogToolPrint handles POST /print/log-tool
func (h *PrintLogHandler) LogToolPrint(c *gin.Context) {
	principal, err := common.CurrentPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req LogToolPrintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for log tool print", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.service.LogToolPrint(c.Request.Context(), usecases.LogToolPrintCommand{
		Principal:    principal,
		PrintedBy:    c.GetString(constants.ContextKeyUsername),
		CardType:     req.CardType,
		SerialNumber: req.SerialNumber,
		Orientation:  req.Orientation,
		Quantity:     req.Quantity,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Tool print logged")
}

// GetStats handles GET /print/stats
func (h *PrintLogHandler) GetStats(c *gin.Context) {
	principal, err := common.CurrentPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	stats, err := h.service.Stats(c.Request.Context(), principal)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", stats)
}
