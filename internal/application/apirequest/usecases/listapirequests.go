package usecases

import (
	"context"

	"ticketdesk/internal/application/apirequest/dto"
	"ticketdesk/internal/domain/apirequest"
	"ticketdesk/internal/shared/logger"
)

type ListAPIRequestsQuery = apirequest.ListParams

type ListAPIRequestsUseCase struct {
	repo   apirequest.APIRequestRepository
	logger logger.Interface
}

func NewListAPIRequestsUseCase(repo apirequest.APIRequestRepository, logger logger.Interface) *ListAPIRequestsUseCase {
	return &ListAPIRequestsUseCase{repo: repo, logger: logger}
}

// Execute validates the filters before touching the repository, so a
// malformed range never produces a partial result.
func (uc *ListAPIRequestsUseCase) Execute(ctx context.Context, query ListAPIRequestsQuery) (*ListAPIRequestsResult, error) {
	spec, err := apirequest.BuildListSpec(query)
	if err != nil {
		uc.logger.Warnw("invalid api request list parameters", "error", err)
		return nil, err
	}

	reqs, total, err := uc.repo.List(ctx, spec)
	if err != nil {
		uc.logger.Errorw("failed to list api requests", "error", err)
		return nil, err
	}

	return &ListAPIRequestsResult{
		Requests: dto.ToAPIRequestDTOs(reqs),
		Total:    total,
		Page:     spec.Page.Page,
		PageSize: spec.Page.PageSize,
	}, nil
}
