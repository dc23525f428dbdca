package ticket

import (
	"strings"

	vo "ticketdesk/internal/domain/ticket/valueobjects"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/query"
)

// Field names understood by Ticket.Field and the ticket repository.
const (
	FieldID            = "id"
	FieldTitle         = "title"
	FieldDescription   = "description"
	FieldReporterEmail = "reporter_email"
	FieldCategory      = "category"
	FieldPriority      = "priority"
	FieldPriorityRank  = "priority_rank"
	FieldStatus        = "status"
	FieldCreatedAt     = "created_at"
	FieldUpdatedAt     = "updated_at"
	FieldResolvedAt    = "resolved_at"
)

var SortFields = query.SortFields{
	Allowed: []string{
		FieldCreatedAt,
		FieldUpdatedAt,
		FieldPriority,
		FieldCategory,
		FieldStatus,
		FieldTitle,
		FieldID,
	},
	Default: FieldCreatedAt,
}

// SearchParams are the raw list/search query parameters. Empty strings mean
// "not given".
type SearchParams struct {
	Search    string
	Category  string
	Status    string
	Priority  string
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

// BuildSearchSpec validates params and turns them into a query.Spec. The
// search term is matched case-insensitively against title and description.
func BuildSearchSpec(p SearchParams) (query.Spec, error) {
	var conds []query.Condition

	if term := strings.TrimSpace(p.Search); term != "" {
		conds = append(conds, query.Contains(term, FieldTitle, FieldDescription))
	}

	if p.Category != "" {
		c, err := vo.NewCategory(strings.ToLower(strings.TrimSpace(p.Category)))
		if err != nil {
			return query.Spec{}, errors.NewInvalidParamError("category", err.Error())
		}
		conds = append(conds, query.Eq(FieldCategory, c.String()))
	}

	if p.Status != "" {
		s, err := vo.NewTicketStatus(strings.ToLower(strings.TrimSpace(p.Status)))
		if err != nil {
			return query.Spec{}, errors.NewInvalidParamError("status", err.Error())
		}
		conds = append(conds, query.Eq(FieldStatus, s.String()))
	}

	if p.Priority != "" {
		pr, err := vo.NewPriority(strings.ToLower(strings.TrimSpace(p.Priority)))
		if err != nil {
			return query.Spec{}, errors.NewInvalidParamError("priority", err.Error())
		}
		conds = append(conds, query.Eq(FieldPriority, pr.String()))
	}

	order, err := SortFields.Order(p.SortBy, p.SortOrder)
	if err != nil {
		return query.Spec{}, err
	}
	// priority sorts by severity rather than alphabetically
	if order.Field == FieldPriority {
		order.Field = FieldPriorityRank
	}

	return query.Spec{
		Conditions: conds,
		Order:      order,
		Page:       query.NewPageFilter(p.Page, p.PageSize),
	}, nil
}
