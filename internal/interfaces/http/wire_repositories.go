package http

import (
	"gorm.io/gorm"

	"ticketdesk/internal/infrastructure/repository"
	"ticketdesk/internal/shared/db"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	ticketRepo     *repository.TicketRepository
	apiRequestRepo *repository.APIRequestRepository
	txMgr          *db.TransactionManager
}

func newRepositories(gdb *gorm.DB) *repositories {
	return &repositories{
		ticketRepo:     repository.NewTicketRepository(gdb),
		apiRequestRepo: repository.NewAPIRequestRepository(gdb),
		txMgr:          db.NewTransactionManager(gdb),
	}
}
