package mappers

import (
	"ticketdesk/internal/domain/apirequest"
	"ticketdesk/internal/infrastructure/persistence/models"
	"ticketdesk/internal/shared/mapper"
)

type APIRequestMapper interface {
	ToModel(r *apirequest.APIRequest) *models.APIRequestModel
	ToDomain(model *models.APIRequestModel) (*apirequest.APIRequest, error)
	ToDomainList(ms []*models.APIRequestModel) ([]*apirequest.APIRequest, error)
}

type APIRequestMapperImpl struct{}

func NewAPIRequestMapper() APIRequestMapper {
	return &APIRequestMapperImpl{}
}

func (m *APIRequestMapperImpl) ToModel(r *apirequest.APIRequest) *models.APIRequestModel {
	return &models.APIRequestModel{
		ID:           r.ID(),
		Method:       r.Method(),
		Path:         r.Path(),
		ResponseCode: r.ResponseCode(),
		ResponseTime: r.ResponseTime(),
		UserAgent:    r.UserAgent(),
		IPAddress:    r.IPAddress(),
		CreatedAt:    r.CreatedAt().UnixMilli(),
	}
}

func (m *APIRequestMapperImpl) ToDomain(model *models.APIRequestModel) (*apirequest.APIRequest, error) {
	return apirequest.ReconstructAPIRequest(
		model.ID,
		model.Method,
		model.Path,
		model.ResponseCode,
		model.ResponseTime,
		model.UserAgent,
		model.IPAddress,
		FromMilli(model.CreatedAt),
	)
}

func (m *APIRequestMapperImpl) ToDomainList(ms []*models.APIRequestModel) ([]*apirequest.APIRequest, error) {
	return mapper.MapSliceWithID(ms, m.ToDomain, func(model *models.APIRequestModel) uint { return model.ID })
}
