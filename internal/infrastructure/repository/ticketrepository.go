package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"ticketdesk/internal/domain/ticket"
	vo "ticketdesk/internal/domain/ticket/valueobjects"
	"ticketdesk/internal/infrastructure/persistence/mappers"
	"ticketdesk/internal/infrastructure/persistence/models"
	"ticketdesk/internal/shared/db"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/query"
)

var ticketColumns = columns{
	ticket.FieldID:            "id",
	ticket.FieldTitle:         "title",
	ticket.FieldDescription:   "description",
	ticket.FieldReporterEmail: "reporter_email",
	ticket.FieldCategory:      "category",
	ticket.FieldPriority:      "priority",
	ticket.FieldPriorityRank:  "CASE priority WHEN 'high' THEN 2 WHEN 'medium' THEN 1 ELSE 0 END",
	ticket.FieldStatus:        "status",
	ticket.FieldCreatedAt:     "created_at",
	ticket.FieldUpdatedAt:     "updated_at",
	ticket.FieldResolvedAt:    "resolved_at",
}

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return err
	}
	t.SetTimestamps(mappers.FromMilli(model.CreatedAt), mappers.FromMilli(model.UpdatedAt))

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("ticket not found", fmt.Sprintf("%d", id))
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context, spec query.Spec) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	q, err := applySpec(tx.Model(&models.TicketModel{}), spec, ticketColumns)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build ticket query: %w", err)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	q, err = applyOrder(q, spec.Order, ticketColumns)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build ticket query: %w", err)
	}

	var ticketModels []*models.TicketModel
	if err := applyPage(q, spec.Page).Find(&ticketModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets, err := r.mapper.ToDomainList(ticketModels)
	if err != nil {
		return nil, 0, err
	}
	return tickets, total, nil
}

// Update writes every mutable column. created_at is never touched.
func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(model).
		Select("title", "description", "reporter_email", "category", "priority", "status", "resolved_at", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		// MySQL reports zero affected rows for no-op updates, so confirm
		// the row is really missing.
		var count int64
		if err := tx.Model(&models.TicketModel{}).Where("id = ?", model.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to update ticket: %w", err)
		}
		if count == 0 {
			return errors.NewNotFoundError("ticket not found", fmt.Sprintf("%d", model.ID))
		}
	}

	t.SetTimestamps(t.CreatedAt(), mappers.FromMilli(model.UpdatedAt))
	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.TicketModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("ticket not found", fmt.Sprintf("%d", id))
	}
	return nil
}

func (r *TicketRepository) CountByCategory(ctx context.Context) (map[vo.Category]int64, error) {
	var rows []struct {
		Category string
		Count    int64
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.TicketModel{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets by category: %w", err)
	}

	counts := make(map[vo.Category]int64, len(rows))
	for _, row := range rows {
		counts[vo.Category(row.Category)] = row.Count
	}
	return counts, nil
}
