package usecases

import (
	"context"

	"ticketdesk/internal/application/apirequest/dto"
)

type RecordAPIRequestExecutor interface {
	Execute(ctx context.Context, cmd RecordAPIRequestCommand) (*dto.APIRequestDTO, error)
}

type GetAPIRequestExecutor interface {
	Execute(ctx context.Context, query GetAPIRequestQuery) (*dto.APIRequestDTO, error)
}

type ListAPIRequestsExecutor interface {
	Execute(ctx context.Context, query ListAPIRequestsQuery) (*ListAPIRequestsResult, error)
}

type DeleteAPIRequestExecutor interface {
	Execute(ctx context.Context, cmd DeleteAPIRequestCommand) error
}

type ListAPIRequestsResult struct {
	Requests []*dto.APIRequestDTO
	Total    int64
	Page     int
	PageSize int
}
