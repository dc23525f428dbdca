package usecases

import (
	"context"

	"ticketdesk/internal/domain/apirequest"
	"ticketdesk/internal/shared/query"
)

type mockAPIRequestRepository struct {
	CreateFunc  func(ctx context.Context, r *apirequest.APIRequest) error
	GetByIDFunc func(ctx context.Context, id uint) (*apirequest.APIRequest, error)
	ListFunc    func(ctx context.Context, spec query.Spec) ([]*apirequest.APIRequest, int64, error)
	DeleteFunc  func(ctx context.Context, id uint) error
}

func (m *mockAPIRequestRepository) Create(ctx context.Context, r *apirequest.APIRequest) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, r)
	}
	return nil
}

func (m *mockAPIRequestRepository) GetByID(ctx context.Context, id uint) (*apirequest.APIRequest, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAPIRequestRepository) List(ctx context.Context, spec query.Spec) ([]*apirequest.APIRequest, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, spec)
	}
	return nil, 0, nil
}

func (m *mockAPIRequestRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func ptr[T any](v T) *T {
	return &v
}
