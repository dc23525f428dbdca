package apirequest

import (
	"context"

	"ticketdesk/internal/shared/query"
)

type APIRequestRepository interface {
	Create(ctx context.Context, req *APIRequest) error
	GetByID(ctx context.Context, id uint) (*APIRequest, error)
	List(ctx context.Context, spec query.Spec) ([]*APIRequest, int64, error)
	Delete(ctx context.Context, id uint) error
}
