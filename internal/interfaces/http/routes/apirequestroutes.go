package routes

import (
	"github.com/gin-gonic/gin"

	apirequesthandlers "ticketdesk/internal/interfaces/http/handlers/apirequest"
)

type APIRequestRouteConfig struct {
	APIRequestHandler *apirequesthandlers.APIRequestHandler
}

func SetupAPIRequestRoutes(api *gin.RouterGroup, config *APIRequestRouteConfig) {
	requests := api.Group("/requests")
	{
		requests.POST("", config.APIRequestHandler.RecordAPIRequest)
		requests.GET("", config.APIRequestHandler.ListAPIRequests)
		requests.GET("/:id", config.APIRequestHandler.GetAPIRequest)
		requests.DELETE("/:id", config.APIRequestHandler.DeleteAPIRequest)
	}
}
