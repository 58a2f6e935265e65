package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opsdesk-inc/opsdesk/internal/application/user/dto"
	"github.com/opsdesk-inc/opsdesk/internal/application/user/usecases"
	"github.com/opsdesk-inc/opsdesk/internal/domain/policy"
	"github.com/opsdesk-inc/opsdesk/internal/interfaces/http/handlers/common"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
	"github.com/opsdesk-inc/opsdesk/internal/shared/utils"
	"github.com/opsdesk-inc/opsdesk/internal/shared/version"
)

// UserService is the account administration surface the handler needs.
type UserService interface {
	List(ctx context.Context, principal policy.Principal) ([]*dto.UserDTO, error)
	Create(ctx context.Context, cmd usecases.CreateUserCommand) (*dto.UserDTO, error)
	Delete(ctx context.Context, principal policy.Principal, id uint) error
	Me(ctx context.Context, principal policy.Principal) (*dto.UserDTO, error)
}

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	users  UserService
	logger logger.Interface
}

// NewUserHandler creates a new user handler
func NewUserHandler(users UserService, log logger.Interface) *UserHandler {
	return &UserHandler{
		users:  users,
		logger: log,
	}
}

type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	FullName string `json:"full_name" binding:"max=128"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required"`
}

// Me handles GET /users/me
func (h *UserHandler) Me(c *gin.Context) {
	principal, err := common.CurrentPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userResp, err := h.users.Me(c.Request.Context(), principal)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", userResp)
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	principal, err := common.CurrentPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	users, err := h.users.List(c.Request.Context(), principal)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", users)
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	principal, err := common.CurrentPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create user", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	userResp, err := h.users.Create(c.Request.Context(), usecases.CreateUserCommand{
		Principal: principal,
		Username:  req.Username,
		FullName:  req.FullName,
		Password:  req.Password,
		Role:      req.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, userResp, "User created successfully")
}

// DeleteUser handles DELETE /users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	principal, err := common.CurrentPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	userID, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.users.Delete(c.Request.Context(), principal, userID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User deleted successfully", nil)
}

// HealthCheck handles GET /health
func (h *UserHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "opsdesk",
	})
}

// Version handles GET /version to return the current application version
func (h *UserHandler) Version(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version": version.Current,
		"commit":  version.Commit,
	})
}
