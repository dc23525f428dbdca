package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/domain/ticket"
	vo "ticketdesk/internal/domain/ticket/valueobjects"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
	"ticketdesk/internal/shared/query"
)

func seededRepo() *memTicketRepository {
	repo := newMemTicketRepository()
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	repo.seed("Login error", "stack trace attached", base)
	repo.seed("Dark mode", "feature please", base.Add(time.Hour))
	repo.seed("Invoice wrong", "urgent: double charged", base.Add(2*time.Hour))
	repo.seed("How to export", "question about CSV", base.Add(3*time.Hour))
	return repo
}

func titles(items []*dto.TicketDTO) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Title)
	}
	return out
}

func TestSearchTicketsUseCase_Execute(t *testing.T) {
	uc := NewSearchTicketsUseCase(seededRepo(), logger.Nop())
	ctx := context.Background()

	t.Run("term absent from every ticket", func(t *testing.T) {
		res, err := uc.Execute(ctx, SearchTicketsQuery{Search: "kubernetes"})
		require.NoError(t, err)
		assert.Empty(t, res.Tickets)
		assert.NotNil(t, res.Tickets)
		assert.EqualValues(t, 0, res.Total)
	})

	t.Run("case-insensitive term", func(t *testing.T) {
		res, err := uc.Execute(ctx, SearchTicketsQuery{Search: "INVOICE"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Invoice wrong"}, titles(res.Tickets))
	})

	t.Run("created_at desc is non-increasing", func(t *testing.T) {
		res, err := uc.Execute(ctx, SearchTicketsQuery{SortBy: "created_at", SortOrder: "desc"})
		require.NoError(t, err)
		require.Len(t, res.Tickets, 4)
		for i := 1; i < len(res.Tickets); i++ {
			assert.False(t, res.Tickets[i].CreatedAt.After(res.Tickets[i-1].CreatedAt))
		}
	})

	t.Run("paging reports window and total", func(t *testing.T) {
		res, err := uc.Execute(ctx, SearchTicketsQuery{Page: 2, PageSize: 3})
		require.NoError(t, err)
		assert.EqualValues(t, 4, res.Total)
		assert.Equal(t, 2, res.Page)
		assert.Equal(t, 3, res.PageSize)
		assert.Equal(t, []string{"How to export"}, titles(res.Tickets))
	})

	t.Run("invalid sort field", func(t *testing.T) {
		res, err := uc.Execute(ctx, SearchTicketsQuery{SortBy: "nope"})
		assert.Nil(t, res)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestSearchTicketsUseCase_PassesSpec(t *testing.T) {
	var got query.Spec
	repo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, spec query.Spec) ([]*ticket.Ticket, int64, error) {
			got = spec
			return nil, 0, nil
		},
	}
	_, err := NewSearchTicketsUseCase(repo, logger.Nop()).Execute(context.Background(), SearchTicketsQuery{Category: "bug", SortOrder: "desc"})
	require.NoError(t, err)
	assert.Equal(t, []query.Condition{query.Eq("category", "bug")}, got.Conditions)
	assert.Equal(t, query.Order{Field: "created_at", Direction: query.Desc}, got.Order)
}

func TestListTicketsUseCase_Execute(t *testing.T) {
	uc := NewListTicketsUseCase(NewSearchTicketsUseCase(seededRepo(), logger.Nop()))

	res, err := uc.Execute(context.Background(), ListTicketsQuery{})
	require.NoError(t, err)
	assert.Equal(t, []string{"How to export", "Invoice wrong", "Dark mode", "Login error"}, titles(res.Tickets))

	res, err = uc.Execute(context.Background(), ListTicketsQuery{Category: "feature_request"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Dark mode"}, titles(res.Tickets))

	_, err = uc.Execute(context.Background(), ListTicketsQuery{Status: "pending"})
	assert.True(t, errors.IsValidationError(err))
}

func TestGetCategoryCountsUseCase_Execute(t *testing.T) {
	got, err := NewGetCategoryCountsUseCase(seededRepo(), logger.Nop()).Execute(context.Background())
	require.NoError(t, err)

	want := []dto.CategoryCountDTO{
		{Name: vo.CategoryBug.String(), Count: 1},
		{Name: vo.CategoryFeatureRequest.String(), Count: 1},
		{Name: vo.CategoryBilling.String(), Count: 1},
		{Name: vo.CategorySupport.String(), Count: 1},
	}
	assert.Equal(t, want, got)
}
