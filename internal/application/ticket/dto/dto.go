package dto

import (
	"time"

	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/shared/mapper"
)

type TicketDTO struct {
	ID              uint       `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	DescriptionHTML string     `json:"description_html,omitempty"`
	ReporterEmail   *string    `json:"reporter_email"`
	Category        string     `json:"category"`
	Priority        string     `json:"priority"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	ResolvedAt      *time.Time `json:"resolved_at"`
}

type CategoryCountDTO struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}

	var email *string
	if e := t.ReporterEmail(); e != "" {
		email = &e
	}

	return &TicketDTO{
		ID:            t.ID(),
		Title:         t.Title(),
		Description:   t.Description(),
		ReporterEmail: email,
		Category:      t.Category().String(),
		Priority:      t.Priority().String(),
		Status:        t.Status().String(),
		CreatedAt:     t.CreatedAt(),
		UpdatedAt:     t.UpdatedAt(),
		ResolvedAt:    t.ResolvedAt(),
	}
}

func ToTicketDTOs(tickets []*ticket.Ticket) []*TicketDTO {
	return mapper.MapSlice(tickets, ToTicketDTO)
}
