package usecases

import (
	"context"

	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID uint
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	cache      TicketCache
	logger     logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.TicketRepository,
	cache TicketCache,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		cache:      cache,
		logger:     logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID)

	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}

	if err := uc.ticketRepo.Delete(ctx, cmd.TicketID); err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", err)
		}
		return err
	}

	invalidate(ctx, uc.cache, uc.logger, cmd.TicketID)

	uc.logger.Infow("ticket deleted successfully", "ticket_id", cmd.TicketID)
	return nil
}
