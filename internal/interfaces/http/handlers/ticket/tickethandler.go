package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketdesk/internal/application/ticket/usecases"
	"ticketdesk/internal/shared/logger"
	"ticketdesk/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC      usecases.CreateTicketExecutor
	getTicketUC         usecases.GetTicketExecutor
	updateTicketUC      usecases.UpdateTicketExecutor
	resolveTicketUC     usecases.ResolveTicketExecutor
	deleteTicketUC      usecases.DeleteTicketExecutor
	searchTicketsUC     usecases.SearchTicketsExecutor
	listTicketsUC       usecases.ListTicketsExecutor
	getCategoryCountsUC usecases.GetCategoryCountsExecutor
	logger              logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	resolveTicketUC usecases.ResolveTicketExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	searchTicketsUC usecases.SearchTicketsExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	getCategoryCountsUC usecases.GetCategoryCountsExecutor,
	log logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:      createTicketUC,
		getTicketUC:         getTicketUC,
		updateTicketUC:      updateTicketUC,
		resolveTicketUC:     resolveTicketUC,
		deleteTicketUC:      deleteTicketUC,
		searchTicketsUC:     searchTicketsUC,
		listTicketsUC:       listTicketsUC,
		getCategoryCountsUC: getCategoryCountsUC,
		logger:              log,
	}
}

// CreateTicket creates a ticket and classifies it
// @Summary Create ticket
// @Description Create a ticket; category and priority are derived from title and description
// @Tags Tickets
// @Accept json
// @Produce json
// @Param request body CreateTicketRequest true "Ticket"
// @Success 201 {object} utils.APIResponse{data=dto.TicketDTO}
// @Failure 400 {object} utils.APIResponse
// @Router /api/tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket returns one ticket with its rendered description
// @Summary Get ticket
// @Tags Tickets
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} utils.APIResponse{data=dto.TicketDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/tickets/{id} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /api/tickets
// @Summary List tickets
// @Description Newest first, optionally filtered by category and status
// @Tags Tickets
// @Produce json
// @Param category query string false "bug, feature_request, billing or support"
// @Param status query string false "open or resolved"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Failure 400 {object} utils.APIResponse
// @Router /api/tickets [get]
func (h *TicketHandler) ListTickets(c *gin.Context) {
	result, err := h.listTicketsUC.Execute(c.Request.Context(), parseListQuery(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.PageSize)
}

// SearchTickets handles GET /api/tickets/search
// @Summary Search tickets
// @Description Case-insensitive substring search over title and description, with filters and sorting
// @Tags Tickets
// @Produce json
// @Param search query string false "Search text"
// @Param category query string false "Category filter"
// @Param status query string false "Status filter"
// @Param priority query string false "Priority filter"
// @Param sort_by query string false "created_at, updated_at, priority, category, status, title or id" default(created_at)
// @Param sort_order query string false "asc or desc" default(desc)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Failure 400 {object} utils.APIResponse
// @Router /api/tickets/search [get]
func (h *TicketHandler) SearchTickets(c *gin.Context) {
	result, err := h.searchTicketsUC.Execute(c.Request.Context(), parseSearchQuery(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.PageSize)
}

// GetCategoryCounts handles GET /api/tickets/categories
// @Summary Ticket counts per category
// @Tags Tickets
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]dto.CategoryCountDTO}
// @Router /api/tickets/categories [get]
func (h *TicketHandler) GetCategoryCounts(c *gin.Context) {
	result, err := h.getCategoryCountsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateTicket handles PUT and PATCH /api/tickets/:id
// @Summary Update ticket
// @Description Partial update; changing title or description re-classifies the ticket
// @Tags Tickets
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param request body UpdateTicketRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=dto.TicketDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/tickets/{id} [put]
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "ticket_id", ticketID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), req.ToCommand(ticketID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

// ResolveTicket handles POST /api/tickets/:id/resolve
// @Summary Resolve ticket
// @Tags Tickets
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} utils.APIResponse{data=dto.TicketDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /api/tickets/{id}/resolve [post]
func (h *TicketHandler) ResolveTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.resolveTicketUC.Execute(c.Request.Context(), usecases.ResolveTicketCommand{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket resolved successfully", result)
}

// DeleteTicket handles DELETE /api/tickets/:id
// @Summary Delete ticket
// @Tags Tickets
// @Param id path int true "Ticket ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /api/tickets/{id} [delete]
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{TicketID: ticketID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
