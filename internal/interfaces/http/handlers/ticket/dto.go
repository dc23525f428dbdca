package ticket

import (
	"github.com/gin-gonic/gin"

	"ticketdesk/internal/application/ticket/usecases"
	"ticketdesk/internal/shared/utils"
)

// CreateTicketRequest carries no category or priority: both are derived
// from the text.
type CreateTicketRequest struct {
	Title         string `json:"title" binding:"required,max=255"`
	Description   string `json:"description" binding:"max=4000"`
	ReporterEmail string `json:"reporter_email" binding:"omitempty,email,max=255"`
}

func (r *CreateTicketRequest) ToCommand() usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:         r.Title,
		Description:   r.Description,
		ReporterEmail: r.ReporterEmail,
	}
}

// UpdateTicketRequest is shared by PUT and PATCH. Absent fields are kept.
type UpdateTicketRequest struct {
	Title         *string `json:"title" binding:"omitempty,max=255"`
	Description   *string `json:"description" binding:"omitempty,max=4000"`
	ReporterEmail *string `json:"reporter_email" binding:"omitempty,max=255"`
	Status        *string `json:"status" binding:"omitempty,oneof=open resolved"`
	Category      *string `json:"category"`
	Priority      *string `json:"priority"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID uint) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:      ticketID,
		Title:         r.Title,
		Description:   r.Description,
		ReporterEmail: r.ReporterEmail,
		Status:        r.Status,
		Category:      r.Category,
		Priority:      r.Priority,
	}
}

func parseSearchQuery(c *gin.Context) usecases.SearchTicketsQuery {
	p := utils.ParsePagination(c)
	return usecases.SearchTicketsQuery{
		Search:    c.Query("search"),
		Category:  c.Query("category"),
		Status:    c.Query("status"),
		Priority:  c.Query("priority"),
		SortBy:    c.DefaultQuery("sort_by", "created_at"),
		SortOrder: c.DefaultQuery("sort_order", "desc"),
		Page:      p.Page,
		PageSize:  p.PageSize,
	}
}

func parseListQuery(c *gin.Context) usecases.ListTicketsQuery {
	p := utils.ParsePagination(c)
	return usecases.ListTicketsQuery{
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Page:     p.Page,
		PageSize: p.PageSize,
	}
}
