package http

import (
	"context"

	apiRequestHandlers "ticketdesk/internal/interfaces/http/handlers/apirequest"
	"ticketdesk/internal/interfaces/http/handlers/common"
	ticketHandlers "ticketdesk/internal/interfaces/http/handlers/ticket"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	healthHandler     *common.HealthHandler
	ticketHandler     *ticketHandlers.TicketHandler
	apiRequestHandler *apiRequestHandlers.APIRequestHandler
}

func (c *Container) newHandlers() *allHandlers {
	ucs := c.ucs

	var pinger common.Pinger
	if sqlDB, err := c.db.DB(); err == nil {
		pinger = sqlDB
	} else {
		c.log.Errorw("failed to get sql.DB for health checks", "error", err)
		pinger = failingPinger{err: err}
	}

	return &allHandlers{
		healthHandler: common.NewHealthHandler(pinger, c.log.Named("health")),
		ticketHandler: ticketHandlers.NewTicketHandler(
			ucs.createTicketUC,
			ucs.getTicketUC,
			ucs.updateTicketUC,
			ucs.resolveTicketUC,
			ucs.deleteTicketUC,
			ucs.searchTicketsUC,
			ucs.listTicketsUC,
			ucs.getCategoryCountsUC,
			c.log.Named("ticket_handler"),
		),
		apiRequestHandler: apiRequestHandlers.NewAPIRequestHandler(
			ucs.recordAPIRequestUC,
			ucs.getAPIRequestUC,
			ucs.listAPIRequestsUC,
			ucs.deleteAPIRequestUC,
			c.log.Named("api_request_handler"),
		),
	}
}

type failingPinger struct{ err error }

func (p failingPinger) PingContext(context.Context) error { return p.err }
