package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/opsdesk-inc/opsdesk/internal/shared/constants"
	"github.com/opsdesk-inc/opsdesk/internal/shared/query"
)

// ParsePagination reads the page and size query parameters. Invalid values fall back to
// defaults and size is capped at MaxPageSize.
func ParsePagination(c *gin.Context) query.PageFilter {
	return query.NewPageFilter(
		parseQueryInt(c, "page", constants.DefaultPage),
		parseQueryInt(c, "size", constants.DefaultPageSize),
	)
}

func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 1 {
			return n
		}
	}
	return defaultVal
}

// TotalPages calculates total pages for a given total count.
func TotalPages(total int64, pageSize int) int {
	if total == 0 || pageSize <= 0 {
		return 1
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
