package usecases

import (
	"context"
	"sync"
	"time"

	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/domain/ticket"
	vo "ticketdesk/internal/domain/ticket/valueobjects"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/query"
	"ticketdesk/internal/shared/services/markdown"
)

type mockTicketRepository struct {
	CreateFunc          func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc         func(ctx context.Context, id uint) (*ticket.Ticket, error)
	ListFunc            func(ctx context.Context, spec query.Spec) ([]*ticket.Ticket, int64, error)
	UpdateFunc          func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc          func(ctx context.Context, id uint) error
	CountByCategoryFunc func(ctx context.Context) (map[vo.Category]int64, error)
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("ticket not found")
}

func (m *mockTicketRepository) List(ctx context.Context, spec query.Spec) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, spec)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTicketRepository) CountByCategory(ctx context.Context) (map[vo.Category]int64, error) {
	if m.CountByCategoryFunc != nil {
		return m.CountByCategoryFunc(ctx)
	}
	return map[vo.Category]int64{}, nil
}

// memTicketRepository is an in-memory TicketRepository evaluating specs with
// query.Apply. Stored tickets are copies so callers cannot mutate them.
type memTicketRepository struct {
	mu      sync.Mutex
	nextID  uint
	tickets map[uint]*ticket.Ticket
}

func newMemTicketRepository() *memTicketRepository {
	return &memTicketRepository{nextID: 1, tickets: make(map[uint]*ticket.Ticket)}
}

func cloneTicket(t *ticket.Ticket) *ticket.Ticket {
	c, err := ticket.ReconstructTicket(t.ID(), t.Title(), t.Description(), t.ReporterEmail(),
		t.Category(), t.Priority(), t.Status(), t.CreatedAt(), t.UpdatedAt(), t.ResolvedAt())
	if err != nil {
		panic(err)
	}
	return c
}

func (r *memTicketRepository) Create(_ context.Context, t *ticket.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := t.SetID(r.nextID); err != nil {
		return err
	}
	r.nextID++
	r.tickets[t.ID()] = cloneTicket(t)
	return nil
}

func (r *memTicketRepository) GetByID(_ context.Context, id uint) (*ticket.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tickets[id]
	if !ok {
		return nil, errors.NewNotFoundError("ticket not found")
	}
	return cloneTicket(t), nil
}

func (r *memTicketRepository) List(_ context.Context, spec query.Spec) ([]*ticket.Ticket, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]*ticket.Ticket, 0, len(r.tickets))
	for id := uint(1); id < r.nextID; id++ {
		if t, ok := r.tickets[id]; ok {
			all = append(all, cloneTicket(t))
		}
	}
	page, total := query.Apply(all, spec)
	return page, total, nil
}

func (r *memTicketRepository) Update(_ context.Context, t *ticket.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tickets[t.ID()]; !ok {
		return errors.NewNotFoundError("ticket not found")
	}
	r.tickets[t.ID()] = cloneTicket(t)
	return nil
}

func (r *memTicketRepository) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tickets[id]; !ok {
		return errors.NewNotFoundError("ticket not found")
	}
	delete(r.tickets, id)
	return nil
}

func (r *memTicketRepository) CountByCategory(_ context.Context) (map[vo.Category]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[vo.Category]int64)
	for _, t := range r.tickets {
		out[t.Category()]++
	}
	return out, nil
}

// seed stores a ticket with a fixed creation time.
func (r *memTicketRepository) seed(title, description string, createdAt time.Time) *ticket.Ticket {
	c := ticket.Classify(title, description)
	r.mu.Lock()
	defer r.mu.Unlock()
	t, err := ticket.ReconstructTicket(r.nextID, title, description, "", c.Category, c.Priority,
		vo.StatusOpen, createdAt, createdAt, nil)
	if err != nil {
		panic(err)
	}
	r.tickets[r.nextID] = t
	r.nextID++
	return cloneTicket(t)
}

type mockTicketCache struct {
	GetFunc        func(ctx context.Context, id uint) (*dto.TicketDTO, error)
	SetFunc        func(ctx context.Context, t *dto.TicketDTO) error
	InvalidateFunc func(ctx context.Context, id uint) error
}

func (m *mockTicketCache) Get(ctx context.Context, id uint) (*dto.TicketDTO, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketCache) Set(ctx context.Context, t *dto.TicketDTO) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketCache) Invalidate(ctx context.Context, id uint) error {
	if m.InvalidateFunc != nil {
		return m.InvalidateFunc(ctx, id)
	}
	return nil
}

type mockTicketMetrics struct {
	mu       sync.Mutex
	created  []string
	resolved []string
}

func (m *mockTicketMetrics) TicketCreated(category, priority string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created = append(m.created, category+"/"+priority)
}

func (m *mockTicketMetrics) TicketResolved(category string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resolved = append(m.resolved, category)
}

func newRenderer() TextRenderer {
	return markdown.NewMarkdownService()
}

func ptr[T any](v T) *T {
	return &v
}

// passthroughTx runs fn without a transaction.
type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
