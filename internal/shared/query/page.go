package query

import "ticketdesk/internal/shared/constants"

// PageFilter is a 1-based page window. PageSize 0 disables paging.
type PageFilter struct {
	Page     int
	PageSize int
}

// NewPageFilter clamps page and size to the configured bounds.
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

func (f PageFilter) Enabled() bool {
	return f.PageSize > 0
}

func (f PageFilter) Offset() int {
	if f.Page <= 1 {
		return 0
	}
	return (f.Page - 1) * f.PageSize
}

func (f PageFilter) Limit() int {
	return f.PageSize
}
