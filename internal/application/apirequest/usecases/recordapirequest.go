package usecases

import (
	"context"

	"ticketdesk/internal/application/apirequest/dto"
	"ticketdesk/internal/domain/apirequest"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

type RecordAPIRequestCommand struct {
	Method       string
	Path         string
	ResponseCode int
	ResponseTime float64
	UserAgent    string
	IPAddress    string
}

type RecordAPIRequestUseCase struct {
	repo   apirequest.APIRequestRepository
	logger logger.Interface
}

func NewRecordAPIRequestUseCase(
	repo apirequest.APIRequestRepository,
	logger logger.Interface,
) *RecordAPIRequestUseCase {
	return &RecordAPIRequestUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *RecordAPIRequestUseCase) Execute(ctx context.Context, cmd RecordAPIRequestCommand) (*dto.APIRequestDTO, error) {
	req, err := apirequest.NewAPIRequest(
		cmd.Method,
		cmd.Path,
		cmd.ResponseCode,
		cmd.ResponseTime,
		cmd.UserAgent,
		cmd.IPAddress,
	)
	if err != nil {
		uc.logger.Warnw("invalid api request log", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Create(ctx, req); err != nil {
		uc.logger.Errorw("failed to save api request log", "error", err)
		return nil, err
	}

	uc.logger.Debugw("api request recorded",
		"id", req.ID(),
		"method", req.Method(),
		"path", req.Path(),
		"response_code", req.ResponseCode(),
	)

	return dto.ToAPIRequestDTO(req), nil
}
