package usecases

import (
	"context"

	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/shared/query"
)

// ListTicketsQuery is the plain listing: exact category/status filters,
// newest first.
type ListTicketsQuery struct {
	Category string
	Status   string
	Page     int
	PageSize int
}

type ListTicketsUseCase struct {
	search *SearchTicketsUseCase
}

func NewListTicketsUseCase(search *SearchTicketsUseCase) *ListTicketsUseCase {
	return &ListTicketsUseCase{search: search}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, q ListTicketsQuery) (*ListTicketsResult, error) {
	return uc.search.Execute(ctx, ticket.SearchParams{
		Category:  q.Category,
		Status:    q.Status,
		SortBy:    ticket.FieldCreatedAt,
		SortOrder: string(query.Desc),
		Page:      q.Page,
		PageSize:  q.PageSize,
	})
}
