package query

import "github.com/opsdesk-inc/opsdesk/internal/shared/constants"

// PageFilter is a 1-based page request.
type PageFilter struct {
	Page     int
	PageSize int
}

// NewPageFilter normalizes page and size, applying defaults and the maximum page size.
func NewPageFilter(page, pageSize int) PageFilter {
	if page < 1 {
		page = constants.DefaultPage
	}
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}
	return PageFilter{Page: page, PageSize: pageSize}
}

func (f PageFilter) Offset() int {
	if f.Page <= 0 {
		return 0
	}
	return (f.Page - 1) * f.Limit()
}

func (f PageFilter) Limit() int {
	if f.PageSize <= 0 {
		return constants.DefaultPageSize
	}
	if f.PageSize > constants.MaxPageSize {
		return constants.MaxPageSize
	}
	return f.PageSize
}
