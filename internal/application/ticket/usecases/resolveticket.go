package usecases

import (
	"context"

	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

type ResolveTicketCommand struct {
	TicketID uint
}

type ResolveTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	txMgr      Transactor
	cache      TicketCache
	metrics    TicketMetrics
	logger     logger.Interface
}

func NewResolveTicketUseCase(
	ticketRepo ticket.TicketRepository,
	txMgr Transactor,
	cache TicketCache,
	metrics TicketMetrics,
	logger logger.Interface,
) *ResolveTicketUseCase {
	return &ResolveTicketUseCase{
		ticketRepo: ticketRepo,
		txMgr:      txMgr,
		cache:      cache,
		metrics:    metrics,
		logger:     logger,
	}
}

// Execute marks the ticket resolved. Resolving a resolved ticket returns it
// unchanged.
func (uc *ResolveTicketUseCase) Execute(ctx context.Context, cmd ResolveTicketCommand) (*dto.TicketDTO, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	var (
		t       *ticket.Ticket
		changed bool
	)
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		t, err = uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}
		if t.Status().IsResolved() {
			return nil
		}

		if err := t.Resolve(); err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			uc.logger.Errorw("failed to resolve ticket", "ticket_id", cmd.TicketID, "error", err)
			return err
		}
		changed = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !changed {
		return dto.ToTicketDTO(t), nil
	}

	invalidate(ctx, uc.cache, uc.logger, t.ID())
	if uc.metrics != nil {
		uc.metrics.TicketResolved(t.Category().String())
	}

	uc.logger.Infow("ticket resolved", "ticket_id", t.ID())

	return dto.ToTicketDTO(t), nil
}
