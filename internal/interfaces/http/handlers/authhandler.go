package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opsdesk-inc/opsdesk/internal/application/user/dto"
	"github.com/opsdesk-inc/opsdesk/internal/application/user/usecases"
	apperrors "github.com/opsdesk-inc/opsdesk/internal/shared/errors"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
	"github.com/opsdesk-inc/opsdesk/internal/shared/utils"
)

type LoginExecutor interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*dto.LoginResponse, error)
}

type AuthHandler struct {
	loginUseCase LoginExecutor
	logger       logger.Interface
}

func NewAuthHandler(loginUC LoginExecutor, logger logger.Interface) *AuthHandler {
	return &AuthHandler{
		loginUseCase: loginUC,
		logger:       logger,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), usecases.LoginCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if apperrors.ShouldLogAuthError(err) {
			h.logger.Warnw("login failed", "username", req.Username, "ip", c.ClientIP(), "error", err)
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", result)
}
