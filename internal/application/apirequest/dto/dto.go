package dto

import (
	"time"

	"ticketdesk/internal/domain/apirequest"
	"ticketdesk/internal/shared/mapper"
)

type APIRequestDTO struct {
	ID           uint      `json:"id"`
	Method       string    `json:"method"`
	Path         string    `json:"path"`
	ResponseCode int       `json:"response_code"`
	ResponseTime float64   `json:"response_time"`
	UserAgent    *string   `json:"user_agent"`
	IPAddress    *string   `json:"ip_address"`
	CreatedAt    time.Time `json:"created_at"`
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func ToAPIRequestDTO(r *apirequest.APIRequest) *APIRequestDTO {
	if r == nil {
		return nil
	}
	return &APIRequestDTO{
		ID:           r.ID(),
		Method:       r.Method(),
		Path:         r.Path(),
		ResponseCode: r.ResponseCode(),
		ResponseTime: r.ResponseTime(),
		UserAgent:    optional(r.UserAgent()),
		IPAddress:    optional(r.IPAddress()),
		CreatedAt:    r.CreatedAt(),
	}
}

func ToAPIRequestDTOs(reqs []*apirequest.APIRequest) []*APIRequestDTO {
	return mapper.MapSlice(reqs, ToAPIRequestDTO)
}
