// Package common provides shared HTTP handler utilities.
package common

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/opsdesk-inc/opsdesk/internal/domain/policy"
	"github.com/opsdesk-inc/opsdesk/internal/shared/authorization"
	"github.com/opsdesk-inc/opsdesk/internal/shared/biztime"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
)

// CurrentPrincipal returns the caller placed on the context by the auth middleware.
func CurrentPrincipal(c *gin.Context) (policy.Principal, error) {
	userID, role, ok := authorization.CurrentUser(c)
	if !ok {
		return policy.Principal{}, errors.NewUnauthorizedError("user not authenticated")
	}
	return policy.Principal{UserID: userID, Role: role}, nil
}

// ParseDateQuery reads an optional YYYY-MM-DD query parameter. Empty means absent.
func ParseDateQuery(c *gin.Context, key string) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	t, err := biztime.ParseDate(raw)
	if err != nil {
		return nil, errors.NewValidationError("invalid "+key, "expected YYYY-MM-DD")
	}
	return &t, nil
}
