package usecases

import (
	"context"

	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/domain/ticket"
	vo "ticketdesk/internal/domain/ticket/valueobjects"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

// UpdateTicketCommand carries a partial update. Nil fields are left as is.
// Category and Priority are accepted only to reject them: both are derived
// from the ticket text.
type UpdateTicketCommand struct {
	TicketID      uint
	Title         *string
	Description   *string
	ReporterEmail *string
	Status        *string
	Category      *string
	Priority      *string
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	txMgr      Transactor
	cache      TicketCache
	renderer   TextRenderer
	metrics    TicketMetrics
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	txMgr Transactor,
	cache TicketCache,
	renderer TextRenderer,
	metrics TicketMetrics,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		txMgr:      txMgr,
		cache:      cache,
		renderer:   renderer,
		metrics:    metrics,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Warnw("invalid update ticket command", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	var (
		updated      *ticket.Ticket
		reclassified bool
		resolved     bool
	)
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		existing, err := uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}

		reclassified, resolved, err = uc.apply(existing, cmd)
		if err != nil {
			return err
		}

		if err := uc.ticketRepo.Update(txCtx, existing); err != nil {
			uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
			return err
		}
		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	invalidate(ctx, uc.cache, uc.logger, updated.ID())
	if resolved && uc.metrics != nil {
		uc.metrics.TicketResolved(updated.Category().String())
	}

	uc.logger.Infow("ticket updated successfully",
		"ticket_id", updated.ID(),
		"reclassified", reclassified,
		"status", updated.Status(),
	)

	return renderTicket(uc.renderer, uc.logger, updated), nil
}

// apply mutates t according to cmd and reports whether the ticket was
// re-classified and whether it moved to resolved.
func (uc *UpdateTicketUseCase) apply(t *ticket.Ticket, cmd UpdateTicketCommand) (bool, bool, error) {
	reclassified, err := t.UpdateContent(cmd.Title, cmd.Description)
	if err != nil {
		return false, false, errors.NewValidationError(err.Error())
	}

	if cmd.ReporterEmail != nil {
		if err := t.SetReporterEmail(*cmd.ReporterEmail); err != nil {
			return false, false, errors.NewValidationError(err.Error())
		}
	}

	resolved := false
	if cmd.Status != nil {
		status, err := vo.NewTicketStatus(*cmd.Status)
		if err != nil {
			return false, false, errors.NewInvalidParamError("status", err.Error())
		}
		resolved = !t.Status().IsResolved() && status.IsResolved()
		if err := t.ChangeStatus(status); err != nil {
			return false, false, errors.NewValidationError(err.Error())
		}
	}

	return reclassified, resolved, nil
}

func (uc *UpdateTicketUseCase) validateCommand(cmd UpdateTicketCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	if cmd.Category != nil {
		return errors.NewInvalidParamError("category", "category is derived from the ticket text and cannot be set")
	}
	if cmd.Priority != nil {
		return errors.NewInvalidParamError("priority", "priority is derived from the ticket text and cannot be set")
	}
	return nil
}

func invalidate(ctx context.Context, cache TicketCache, log logger.Interface, id uint) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx, id); err != nil {
		log.Warnw("failed to invalidate ticket cache", "ticket_id", id, "error", err)
	}
}
