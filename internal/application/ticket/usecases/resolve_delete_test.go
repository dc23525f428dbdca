package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

func TestResolveTicketUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	repo := newMemTicketRepository()
	seeded := repo.seed("Login error", "500", time.Now().UTC())
	metrics := &mockTicketMetrics{}
	uc := NewResolveTicketUseCase(repo, passthroughTx{}, nil, metrics, logger.Nop())

	got, err := uc.Execute(ctx, ResolveTicketCommand{TicketID: seeded.ID()})
	require.NoError(t, err)
	assert.Equal(t, "resolved", got.Status)
	require.NotNil(t, got.ResolvedAt)
	first := *got.ResolvedAt

	again, err := uc.Execute(ctx, ResolveTicketCommand{TicketID: seeded.ID()})
	require.NoError(t, err)
	assert.Equal(t, first, *again.ResolvedAt)
	assert.Equal(t, []string{"bug"}, metrics.resolved)

	_, err = uc.Execute(ctx, ResolveTicketCommand{TicketID: 404})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestResolveTicketUseCase_UpdateError(t *testing.T) {
	tk, err := ticket.NewTicket("t", "d", "")
	require.NoError(t, err)
	require.NoError(t, tk.SetID(1))

	repo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		UpdateFunc: func(ctx context.Context, t *ticket.Ticket) error {
			return errors.NewInternalError("failed to update ticket")
		},
	}
	_, err = NewResolveTicketUseCase(repo, passthroughTx{}, nil, nil, logger.Nop()).Execute(context.Background(), ResolveTicketCommand{TicketID: 1})
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeInternal, errors.GetAppError(err).Type)
}

func TestDeleteTicketUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	repo := newMemTicketRepository()
	seeded := repo.seed("t", "d", time.Now().UTC())

	var invalidated []uint
	cache := &mockTicketCache{
		InvalidateFunc: func(ctx context.Context, id uint) error {
			invalidated = append(invalidated, id)
			return nil
		},
	}
	uc := NewDeleteTicketUseCase(repo, cache, logger.Nop())

	require.NoError(t, uc.Execute(ctx, DeleteTicketCommand{TicketID: seeded.ID()}))
	assert.Equal(t, []uint{seeded.ID()}, invalidated)

	_, err := NewGetTicketUseCase(repo, nil, newRenderer(), logger.Nop()).Execute(ctx, GetTicketQuery{TicketID: seeded.ID()})
	assert.True(t, errors.IsNotFoundError(err))

	err = uc.Execute(ctx, DeleteTicketCommand{TicketID: seeded.ID()})
	assert.True(t, errors.IsNotFoundError(err))
	assert.Len(t, invalidated, 1)

	err = uc.Execute(ctx, DeleteTicketCommand{})
	assert.True(t, errors.IsValidationError(err))
}
