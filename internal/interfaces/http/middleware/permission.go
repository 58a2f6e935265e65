package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opsdesk-inc/opsdesk/internal/domain/policy"
	"github.com/opsdesk-inc/opsdesk/internal/shared/authorization"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
	"github.com/opsdesk-inc/opsdesk/internal/shared/utils"
)

type PermissionMiddleware struct {
	checker policy.Checker
	logger  logger.Interface
}

func NewPermissionMiddleware(checker policy.Checker, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		checker: checker,
		logger:  logger,
	}
}

// RequirePermission rejects callers whose role is not granted action on resource.
func (m *PermissionMiddleware) RequirePermission(resource policy.Resource, action policy.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, role, ok := authorization.CurrentUser(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
			c.Abort()
			return
		}

		if !m.checker.Can(policy.Principal{UserID: userID, Role: role}, action, resource) {
			m.logger.Warnw("permission denied", "user_id", userID, "role", role, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
