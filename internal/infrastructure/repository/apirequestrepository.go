package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"ticketdesk/internal/domain/apirequest"
	"ticketdesk/internal/infrastructure/persistence/mappers"
	"ticketdesk/internal/infrastructure/persistence/models"
	"ticketdesk/internal/shared/db"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/query"
)

var apiRequestColumns = columns{
	apirequest.FieldID:           "id",
	apirequest.FieldMethod:       "method",
	apirequest.FieldPath:         "path",
	apirequest.FieldResponseCode: "response_code",
	apirequest.FieldResponseTime: "response_time",
	apirequest.FieldUserAgent:    "user_agent",
	apirequest.FieldIPAddress:    "ip_address",
	apirequest.FieldCreatedAt:    "created_at",
}

type APIRequestRepository struct {
	db     *gorm.DB
	mapper mappers.APIRequestMapper
}

func NewAPIRequestRepository(db *gorm.DB) *APIRequestRepository {
	return &APIRequestRepository{
		db:     db,
		mapper: mappers.NewAPIRequestMapper(),
	}
}

func (r *APIRequestRepository) Create(ctx context.Context, req *apirequest.APIRequest) error {
	model := r.mapper.ToModel(req)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create api request: %w", err)
	}

	if err := req.SetID(model.ID); err != nil {
		return err
	}
	req.SetCreatedAt(mappers.FromMilli(model.CreatedAt))
	return nil
}

func (r *APIRequestRepository) GetByID(ctx context.Context, id uint) (*apirequest.APIRequest, error) {
	var model models.APIRequestModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("api request not found", fmt.Sprintf("%d", id))
		}
		return nil, fmt.Errorf("failed to get api request: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *APIRequestRepository) List(ctx context.Context, spec query.Spec) ([]*apirequest.APIRequest, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	q, err := applySpec(tx.Model(&models.APIRequestModel{}), spec, apiRequestColumns)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build api request query: %w", err)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count api requests: %w", err)
	}

	q, err = applyOrder(q, spec.Order, apiRequestColumns)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build api request query: %w", err)
	}

	var reqModels []*models.APIRequestModel
	if err := applyPage(q, spec.Page).Find(&reqModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list api requests: %w", err)
	}

	reqs, err := r.mapper.ToDomainList(reqModels)
	if err != nil {
		return nil, 0, err
	}
	return reqs, total, nil
}

func (r *APIRequestRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.APIRequestModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete api request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("api request not found", fmt.Sprintf("%d", id))
	}
	return nil
}
