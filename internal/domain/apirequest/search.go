package apirequest

import (
	"strings"

	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/query"
)

const (
	FieldID           = "id"
	FieldMethod       = "method"
	FieldPath         = "path"
	FieldResponseCode = "response_code"
	FieldResponseTime = "response_time"
	FieldUserAgent    = "user_agent"
	FieldIPAddress    = "ip_address"
	FieldCreatedAt    = "created_at"
)

var SortFields = query.SortFields{
	Allowed: []string{
		FieldCreatedAt,
		FieldResponseTime,
		FieldResponseCode,
		FieldMethod,
		FieldPath,
		FieldID,
	},
	Default: FieldCreatedAt,
}

// ListParams are the optional filters for listing request logs. Nil
// pointers and empty strings mean "not given".
type ListParams struct {
	Method          string
	ResponseCode    *int
	MinResponseCode *int
	MaxResponseCode *int
	MinResponseTime *float64
	MaxResponseTime *float64
	PathContains    string
	SortBy          string
	SortOrder       string
	Page            int
	PageSize        int
}

// BuildListSpec validates params and turns them into a query.Spec. Method
// matching ignores case.
func BuildListSpec(p ListParams) (query.Spec, error) {
	var conds []query.Condition

	if m := strings.ToUpper(strings.TrimSpace(p.Method)); m != "" {
		conds = append(conds, query.Eq(FieldMethod, m))
	}

	if p.ResponseCode != nil {
		if *p.ResponseCode < 0 {
			return query.Spec{}, errors.NewInvalidParamError("response_code", "must not be negative")
		}
		conds = append(conds, query.Eq(FieldResponseCode, *p.ResponseCode))
	}

	codeRange, err := query.Range(FieldResponseCode,
		query.Bound[int]{Param: "min_response_code", Value: p.MinResponseCode},
		query.Bound[int]{Param: "max_response_code", Value: p.MaxResponseCode})
	if err != nil {
		return query.Spec{}, err
	}
	conds = append(conds, codeRange...)

	timeRange, err := query.Range(FieldResponseTime,
		query.Bound[float64]{Param: "min_response_time", Value: p.MinResponseTime},
		query.Bound[float64]{Param: "max_response_time", Value: p.MaxResponseTime})
	if err != nil {
		return query.Spec{}, err
	}
	conds = append(conds, timeRange...)

	if term := strings.TrimSpace(p.PathContains); term != "" {
		conds = append(conds, query.Contains(term, FieldPath))
	}

	order, err := SortFields.Order(p.SortBy, p.SortOrder)
	if err != nil {
		return query.Spec{}, err
	}

	return query.Spec{
		Conditions: conds,
		Order:      order,
		Page:       query.NewPageFilter(p.Page, p.PageSize),
	}, nil
}
