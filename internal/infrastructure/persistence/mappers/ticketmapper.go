package mappers

import (
	"time"

	"ticketdesk/internal/domain/ticket"
	vo "ticketdesk/internal/domain/ticket/valueobjects"
	"ticketdesk/internal/infrastructure/persistence/models"
	"ticketdesk/internal/shared/mapper"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	ToDomainList(ms []*models.TicketModel) ([]*ticket.Ticket, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
		ID:            t.ID(),
		Title:         t.Title(),
		Description:   t.Description(),
		ReporterEmail: t.ReporterEmail(),
		Category:      t.Category().String(),
		Priority:      t.Priority().String(),
		Status:        t.Status().String(),
		CreatedAt:     t.CreatedAt().UnixMilli(),
		UpdatedAt:     t.UpdatedAt().UnixMilli(),
	}

	if t.ResolvedAt() != nil {
		resolved := t.ResolvedAt().UnixMilli()
		model.ResolvedAt = &resolved
	}

	return model
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	var resolvedAt *time.Time
	if model.ResolvedAt != nil {
		t := FromMilli(*model.ResolvedAt)
		resolvedAt = &t
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Title,
		model.Description,
		model.ReporterEmail,
		vo.Category(model.Category),
		vo.Priority(model.Priority),
		vo.TicketStatus(model.Status),
		FromMilli(model.CreatedAt),
		FromMilli(model.UpdatedAt),
		resolvedAt,
	)
}

func (m *TicketMapperImpl) ToDomainList(ms []*models.TicketModel) ([]*ticket.Ticket, error) {
	return mapper.MapSliceWithID(ms, m.ToDomain, func(model *models.TicketModel) uint { return model.ID })
}

// FromMilli converts a stored Unix millisecond timestamp to UTC time.
func FromMilli(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
