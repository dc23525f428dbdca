package usecases

import (
	"context"

	"ticketdesk/internal/application/ticket/dto"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error)
}

type ResolveTicketExecutor interface {
	Execute(ctx context.Context, cmd ResolveTicketCommand) (*dto.TicketDTO, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) error
}

type SearchTicketsExecutor interface {
	Execute(ctx context.Context, query SearchTicketsQuery) (*ListTicketsResult, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type GetCategoryCountsExecutor interface {
	Execute(ctx context.Context) ([]dto.CategoryCountDTO, error)
}

// Transactor runs fn inside one database transaction; repositories pick the
// transaction up from the context passed to fn.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// TicketCache stores rendered tickets by ID. Get returns nil, nil on a miss.
// Set is a fill after a miss and must not overwrite what Invalidate left
// behind, otherwise a read racing a write could cache the old row.
type TicketCache interface {
	Get(ctx context.Context, id uint) (*dto.TicketDTO, error)
	Set(ctx context.Context, t *dto.TicketDTO) error
	Invalidate(ctx context.Context, id uint) error
}

type TicketMetrics interface {
	TicketCreated(category, priority string)
	TicketResolved(category string)
}

// TextRenderer turns a stored description into sanitized HTML. Ticket
// text itself is stored and classified exactly as submitted.
type TextRenderer interface {
	ToHTMLSanitized(markdown string) (string, error)
}

type ListTicketsResult struct {
	Tickets  []*dto.TicketDTO
	Total    int64
	Page     int
	PageSize int
}
