package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
)

// ParseIDParam parses a positive numeric ID from a URL path parameter.
// entityName is used in the error message (e.g. "ticket", "asset").
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + entityName + " ID")
	}
	return uint(id), nil
}
