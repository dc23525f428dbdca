package apirequest

import (
	"github.com/gin-gonic/gin"

	"ticketdesk/internal/application/apirequest/usecases"
	"ticketdesk/internal/shared/utils"
)

type RecordAPIRequestRequest struct {
	Method       string   `json:"method" binding:"required,max=10"`
	Path         string   `json:"path" binding:"required,max=2048"`
	ResponseCode int      `json:"response_code" binding:"required,gte=100,lte=599"`
	ResponseTime *float64 `json:"response_time" binding:"required,gte=0"`
	UserAgent    string   `json:"user_agent" binding:"max=512"`
	IPAddress    string   `json:"ip_address" binding:"omitempty,ip"`
}

func (r *RecordAPIRequestRequest) ToCommand() usecases.RecordAPIRequestCommand {
	return usecases.RecordAPIRequestCommand{
		Method:       r.Method,
		Path:         r.Path,
		ResponseCode: r.ResponseCode,
		ResponseTime: *r.ResponseTime,
		UserAgent:    r.UserAgent,
		IPAddress:    r.IPAddress,
	}
}

// parseListQuery reads the list filters. Numeric filters that do not parse
// fail the request instead of being ignored.
func parseListQuery(c *gin.Context) (usecases.ListAPIRequestsQuery, error) {
	q := usecases.ListAPIRequestsQuery{
		Method:       c.Query("method"),
		PathContains: c.Query("path_contains"),
		SortBy:       c.DefaultQuery("sort_by", "created_at"),
		SortOrder:    c.DefaultQuery("sort_order", "desc"),
	}

	var err error
	if q.ResponseCode, err = utils.OptionalIntQuery(c, "response_code"); err != nil {
		return q, err
	}
	if q.MinResponseCode, err = utils.OptionalIntQuery(c, "min_response_code"); err != nil {
		return q, err
	}
	if q.MaxResponseCode, err = utils.OptionalIntQuery(c, "max_response_code"); err != nil {
		return q, err
	}
	if q.MinResponseTime, err = utils.OptionalFloatQuery(c, "min_response_time"); err != nil {
		return q, err
	}
	if q.MaxResponseTime, err = utils.OptionalFloatQuery(c, "max_response_time"); err != nil {
		return q, err
	}

	p := utils.ParsePagination(c)
	q.Page, q.PageSize = p.Page, p.PageSize
	return q, nil
}
