package ticket

import (
	"context"

	vo "ticketdesk/internal/domain/ticket/valueobjects"
	"ticketdesk/internal/shared/query"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *Ticket) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	List(ctx context.Context, spec query.Spec) ([]*Ticket, int64, error)
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, id uint) error
	CountByCategory(ctx context.Context) (map[vo.Category]int64, error)
}
