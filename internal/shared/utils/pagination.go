package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"ticketdesk/internal/shared/constants"
)

// Pagination holds the page and page_size query parameters. Malformed or
// out-of-range values fall back to defaults rather than failing the request.
type Pagination struct {
	Page     int
	PageSize int
}

// ParsePagination reads page and page_size, capping page_size at
// constants.MaxPageSize.
func ParsePagination(c *gin.Context) Pagination {
	page := parseQueryInt(c, "page", constants.DefaultPage)
	pageSize := parseQueryInt(c, "page_size", constants.DefaultPageSize)
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}
	return Pagination{Page: page, PageSize: pageSize}
}

func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 1 {
			return n
		}
	}
	return defaultVal
}

// TotalPages is at least 1 so an empty result still reports one page.
func TotalPages(total int64, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 1
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
