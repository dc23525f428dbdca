package usecases

import (
	"context"

	"ticketdesk/internal/domain/apirequest"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

type DeleteAPIRequestCommand struct {
	ID uint
}

type DeleteAPIRequestUseCase struct {
	repo   apirequest.APIRequestRepository
	logger logger.Interface
}

func NewDeleteAPIRequestUseCase(repo apirequest.APIRequestRepository, logger logger.Interface) *DeleteAPIRequestUseCase {
	return &DeleteAPIRequestUseCase{repo: repo, logger: logger}
}

func (uc *DeleteAPIRequestUseCase) Execute(ctx context.Context, cmd DeleteAPIRequestCommand) error {
	if cmd.ID == 0 {
		return errors.NewValidationError("api request ID is required")
	}

	if err := uc.repo.Delete(ctx, cmd.ID); err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to delete api request", "id", cmd.ID, "error", err)
		}
		return err
	}

	uc.logger.Infow("api request deleted", "id", cmd.ID)
	return nil
}
