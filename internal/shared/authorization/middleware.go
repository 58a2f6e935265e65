package authorization

import (
	"github.com/gin-gonic/gin"

	"github.com/opsdesk-inc/opsdesk/internal/shared/constants"
)

// CurrentUser reads the principal placed on the context by the auth middleware.
// ok is false when the request carries no authenticated user.
func CurrentUser(c *gin.Context) (userID uint, role UserRole, ok bool) {
	raw, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, "", false
	}
	userID, ok = raw.(uint)
	if !ok || userID == 0 {
		return 0, "", false
	}
	return userID, ParseUserRole(c.GetString(constants.ContextKeyUserRole)), true
}
