package usecases

import (
	"context"

	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	Title         string
	Description   string
	ReporterEmail string
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	renderer   TextRenderer
	metrics    TicketMetrics
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	renderer TextRenderer,
	metrics TicketMetrics,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		renderer:   renderer,
		metrics:    metrics,
		logger:     logger,
	}
}

// Execute classifies the ticket from its text and stores it unchanged.
func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing create ticket use case", "title_length", len(cmd.Title))

	newTicket, err := ticket.NewTicket(cmd.Title, cmd.Description, cmd.ReporterEmail)
	if err != nil {
		uc.logger.Warnw("invalid create ticket command", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Create(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.TicketCreated(newTicket.Category().String(), newTicket.Priority().String())
	}

	uc.logger.Infow("ticket created successfully",
		"ticket_id", newTicket.ID(),
		"category", newTicket.Category(),
		"priority", newTicket.Priority(),
	)

	return renderTicket(uc.renderer, uc.logger, newTicket), nil
}
