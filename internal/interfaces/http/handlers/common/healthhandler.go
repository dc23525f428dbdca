// Package common provides handlers shared by every route group.
package common

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ticketdesk/internal/shared/logger"
	"ticketdesk/internal/shared/version"
)

const pingTimeout = 2 * time.Second

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db     Pinger
	logger logger.Interface
}

func NewHealthHandler(db Pinger, log logger.Interface) *HealthHandler {
	return &HealthHandler{db: db, logger: log}
}

// Root handles GET /
// @Summary Service info
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "ticketdesk",
		"version": version.String(),
		"docs":    "/swagger/index.html",
	})
}

// HealthCheck handles GET /health
// @Summary Liveness probe
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Errorw("health check: database unreachable", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "ok",
	})
}
