package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"ticketdesk/internal/interfaces/http/middleware"
	"ticketdesk/internal/interfaces/http/routes"

	_ "ticketdesk/docs"
)

// SetupRoutes configures all HTTP routes
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.RequestID())
	c.engine.Use(middleware.Logger(c.log.Named("http")))
	c.engine.Use(middleware.Recovery(c.log))
	c.engine.Use(middleware.ErrorHandler(c.log))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.SecurityHeaders())
	if c.metrics != nil {
		c.engine.Use(middleware.Metrics(c.metrics))
	}

	c.engine.GET("/", c.hdlrs.healthHandler.Root)
	c.engine.GET("/health", c.hdlrs.healthHandler.HealthCheck)
	c.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if c.metrics != nil {
		c.engine.GET(c.cfg.Metrics.Path, gin.WrapH(c.metrics.Handler()))
	}

	api := c.engine.Group("/api")
	if c.rateLimiter != nil {
		api.Use(middleware.RateLimit(c.rateLimiter, c.log.Named("ratelimit")))
	}

	routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{
		TicketHandler: c.hdlrs.ticketHandler,
	})
	routes.SetupAPIRequestRoutes(api, &routes.APIRequestRouteConfig{
		APIRequestHandler: c.hdlrs.apiRequestHandler,
	})
}
