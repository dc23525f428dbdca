package usecases

import (
	"context"

	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/shared/logger"
)

type SearchTicketsQuery = ticket.SearchParams

type SearchTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewSearchTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *SearchTicketsUseCase {
	return &SearchTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *SearchTicketsUseCase) Execute(ctx context.Context, query SearchTicketsQuery) (*ListTicketsResult, error) {
	spec, err := ticket.BuildSearchSpec(query)
	if err != nil {
		uc.logger.Warnw("invalid ticket search parameters", "error", err)
		return nil, err
	}

	tickets, total, err := uc.ticketRepo.List(ctx, spec)
	if err != nil {
		uc.logger.Errorw("failed to search tickets", "error", err)
		return nil, err
	}

	uc.logger.Debugw("ticket search completed",
		"search", query.Search,
		"total", total,
		"returned", len(tickets),
	)

	return &ListTicketsResult{
		Tickets:  dto.ToTicketDTOs(tickets),
		Total:    total,
		Page:     spec.Page.Page,
		PageSize: spec.Page.PageSize,
	}, nil
}
