package usecases

import (
	"context"

	"ticketdesk/internal/application/apirequest/dto"
	"ticketdesk/internal/domain/apirequest"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

type GetAPIRequestQuery struct {
	ID uint
}

type GetAPIRequestUseCase struct {
	repo   apirequest.APIRequestRepository
	logger logger.Interface
}

func NewGetAPIRequestUseCase(repo apirequest.APIRequestRepository, logger logger.Interface) *GetAPIRequestUseCase {
	return &GetAPIRequestUseCase{repo: repo, logger: logger}
}

func (uc *GetAPIRequestUseCase) Execute(ctx context.Context, query GetAPIRequestQuery) (*dto.APIRequestDTO, error) {
	if query.ID == 0 {
		return nil, errors.NewValidationError("api request ID is required")
	}

	req, err := uc.repo.GetByID(ctx, query.ID)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to get api request", "id", query.ID, "error", err)
		}
		return nil, err
	}
	return dto.ToAPIRequestDTO(req), nil
}
