package apirequest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketdesk/internal/application/apirequest/usecases"
	"ticketdesk/internal/shared/logger"
	"ticketdesk/internal/shared/utils"
)

type APIRequestHandler struct {
	recordUC usecases.RecordAPIRequestExecutor
	getUC    usecases.GetAPIRequestExecutor
	listUC   usecases.ListAPIRequestsExecutor
	deleteUC usecases.DeleteAPIRequestExecutor
	logger   logger.Interface
}

func NewAPIRequestHandler(
	recordUC usecases.RecordAPIRequestExecutor,
	getUC usecases.GetAPIRequestExecutor,
	listUC usecases.ListAPIRequestsExecutor,
	deleteUC usecases.DeleteAPIRequestExecutor,
	log logger.Interface,
) *APIRequestHandler {
	return &APIRequestHandler{
		recordUC: recordUC,
		getUC:    getUC,
		listUC:   listUC,
		deleteUC: deleteUC,
		logger:   log,
	}
}

// RecordAPIRequest handles POST /api/requests
// @Summary Record API request
// @Tags API Requests
// @Accept json
// @Produce json
// @Param request body RecordAPIRequestRequest true "Request log"
// @Success 201 {object} utils.APIResponse{data=dto.APIRequestDTO}
// @Failure 400 {object} utils.APIResponse
// @Router /api/requests [post]
func (h *APIRequestHandler) RecordAPIRequest(c *gin.Context) {
	var req RecordAPIRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for record api request", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.recordUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "API request recorded successfully")
}

// GetAPIRequest handles GET /api/requests/:id
// @Summary Get API request
// @Tags API Requests
// @Produce json
// @Param id path int true "Request log ID"
// @Success 200 {object} utils.APIResponse{data=dto.APIRequestDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /api/requests/{id} [get]
func (h *APIRequestHandler) GetAPIRequest(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "api request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetAPIRequestQuery{ID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListAPIRequests handles GET /api/requests
// @Summary List API requests
// @Tags API Requests
// @Produce json
// @Param method query string false "HTTP method, any case"
// @Param response_code query int false "Exact response code"
// @Param min_response_code query int false "Lowest response code"
// @Param max_response_code query int false "Highest response code"
// @Param min_response_time query number false "Lowest response time in seconds"
// @Param max_response_time query number false "Highest response time in seconds"
// @Param path_contains query string false "Substring of the path"
// @Param sort_by query string false "created_at, response_time, response_code, method, path or id" default(created_at)
// @Param sort_order query string false "asc or desc" default(desc)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Failure 400 {object} utils.APIResponse
// @Router /api/requests [get]
func (h *APIRequestHandler) ListAPIRequests(c *gin.Context) {
	q, err := parseListQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), q)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Requests, result.Total, result.Page, result.PageSize)
}

// DeleteAPIRequest handles DELETE /api/requests/:id
// @Summary Delete API request
// @Tags API Requests
// @Param id path int true "Request log ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /api/requests/{id} [delete]
func (h *APIRequestHandler) DeleteAPIRequest(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "api request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteAPIRequestCommand{ID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
