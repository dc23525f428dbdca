package http

import (
	apiRequestUsecases "ticketdesk/internal/application/apirequest/usecases"
	ticketUsecases "ticketdesk/internal/application/ticket/usecases"
	"ticketdesk/internal/shared/services/markdown"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Ticket
	createTicketUC      *ticketUsecases.CreateTicketUseCase
	getTicketUC         *ticketUsecases.GetTicketUseCase
	updateTicketUC      *ticketUsecases.UpdateTicketUseCase
	resolveTicketUC     *ticketUsecases.ResolveTicketUseCase
	deleteTicketUC      *ticketUsecases.DeleteTicketUseCase
	searchTicketsUC     *ticketUsecases.SearchTicketsUseCase
	listTicketsUC       *ticketUsecases.ListTicketsUseCase
	getCategoryCountsUC *ticketUsecases.GetCategoryCountsUseCase

	// API request logs
	recordAPIRequestUC *apiRequestUsecases.RecordAPIRequestUseCase
	getAPIRequestUC    *apiRequestUsecases.GetAPIRequestUseCase
	listAPIRequestsUC  *apiRequestUsecases.ListAPIRequestsUseCase
	deleteAPIRequestUC *apiRequestUsecases.DeleteAPIRequestUseCase
}

func (c *Container) newUseCases() *allUseCases {
	renderer := markdown.NewMarkdownService()
	ticketLog := c.log.Named("ticket")
	requestLog := c.log.Named("api_request")

	// Interface values must stay untyped nil when the backing component is
	// off; the use cases compare against nil.
	var ticketCache ticketUsecases.TicketCache
	if c.ticketCache != nil {
		ticketCache = c.ticketCache
	}
	var ticketMetrics ticketUsecases.TicketMetrics
	if c.metrics != nil {
		ticketMetrics = c.metrics
	}

	repo := c.repos.ticketRepo
	searchUC := ticketUsecases.NewSearchTicketsUseCase(repo, ticketLog)

	return &allUseCases{
		createTicketUC:      ticketUsecases.NewCreateTicketUseCase(repo, renderer, ticketMetrics, ticketLog),
		getTicketUC:         ticketUsecases.NewGetTicketUseCase(repo, ticketCache, renderer, ticketLog),
		updateTicketUC:      ticketUsecases.NewUpdateTicketUseCase(repo, c.repos.txMgr, ticketCache, renderer, ticketMetrics, ticketLog),
		resolveTicketUC:     ticketUsecases.NewResolveTicketUseCase(repo, c.repos.txMgr, ticketCache, ticketMetrics, ticketLog),
		deleteTicketUC:      ticketUsecases.NewDeleteTicketUseCase(repo, ticketCache, ticketLog),
		searchTicketsUC:     searchUC,
		listTicketsUC:       ticketUsecases.NewListTicketsUseCase(searchUC),
		getCategoryCountsUC: ticketUsecases.NewGetCategoryCountsUseCase(repo, ticketLog),

		recordAPIRequestUC: apiRequestUsecases.NewRecordAPIRequestUseCase(c.repos.apiRequestRepo, requestLog),
		getAPIRequestUC:    apiRequestUsecases.NewGetAPIRequestUseCase(c.repos.apiRequestRepo, requestLog),
		listAPIRequestsUC:  apiRequestUsecases.NewListAPIRequestsUseCase(c.repos.apiRequestRepo, requestLog),
		deleteAPIRequestUC: apiRequestUsecases.NewDeleteAPIRequestUseCase(c.repos.apiRequestRepo, requestLog),
	}
}
