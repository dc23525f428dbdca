package usecases

import (
	"context"

	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
}

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	cache      TicketCache
	renderer   TextRenderer
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	cache TicketCache,
	renderer TextRenderer,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		cache:      cache,
		renderer:   renderer,
		logger:     logger,
	}
}

// Execute returns a single ticket with its description rendered to HTML.
// Cache failures are logged and fall through to the repository.
func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, query.TicketID)
		if err != nil {
			uc.logger.Warnw("ticket cache lookup failed", "ticket_id", query.TicketID, "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to get ticket", "ticket_id", query.TicketID, "error", err)
		}
		return nil, err
	}

	result := renderTicket(uc.renderer, uc.logger, t)

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, result); err != nil {
			uc.logger.Warnw("failed to cache ticket", "ticket_id", t.ID(), "error", err)
		}
	}

	return result, nil
}

// renderTicket builds the response DTO. A render failure only leaves
// description_html empty.
func renderTicket(r TextRenderer, log logger.Interface, t *ticket.Ticket) *dto.TicketDTO {
	result := dto.ToTicketDTO(t)
	html, err := r.ToHTMLSanitized(t.Description())
	if err != nil {
		log.Warnw("failed to render ticket description", "ticket_id", t.ID(), "error", err)
		return result
	}
	result.DescriptionHTML = html
	return result
}
