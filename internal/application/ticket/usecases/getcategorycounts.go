package usecases

import (
	"context"

	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/domain/ticket"
	vo "ticketdesk/internal/domain/ticket/valueobjects"
	"ticketdesk/internal/shared/logger"
)

type GetCategoryCountsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetCategoryCountsUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *GetCategoryCountsUseCase {
	return &GetCategoryCountsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute reports every category, including those with no tickets, in
// classification precedence order.
func (uc *GetCategoryCountsUseCase) Execute(ctx context.Context) ([]dto.CategoryCountDTO, error) {
	counts, err := uc.ticketRepo.CountByCategory(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count tickets by category", "error", err)
		return nil, err
	}

	result := make([]dto.CategoryCountDTO, 0, len(vo.Categories))
	for _, c := range vo.Categories {
		result = append(result, dto.CategoryCountDTO{Name: c.String(), Count: counts[c]})
	}
	return result, nil
}
