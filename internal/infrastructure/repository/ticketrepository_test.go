package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketdesk/internal/domain/ticket"
	vo "ticketdesk/internal/domain/ticket/valueobjects"
	"ticketdesk/internal/shared/db"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/query"
)

func createTicket(t *testing.T, repo *TicketRepository, title, description string) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(title, description, "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), tk))
	return tk
}

func TestTicketRepository_CreateAndGet(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()

	tk, err := ticket.NewTicket("Urgent billing issue", "invoice payment failed, critical", "cust@example.com")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, tk))
	assert.NotZero(t, tk.ID())

	found, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, tk.ID(), found.ID())
	assert.Equal(t, tk.Title(), found.Title())
	assert.Equal(t, tk.Description(), found.Description())
	assert.Equal(t, "cust@example.com", found.ReporterEmail())
	assert.Equal(t, vo.CategoryBilling, found.Category())
	assert.Equal(t, vo.PriorityHigh, found.Priority())
	assert.Equal(t, vo.StatusOpen, found.Status())
	assert.True(t, tk.CreatedAt().Equal(found.CreatedAt()))
	assert.Nil(t, found.ResolvedAt())
}

func TestTicketRepository_GetByID_NotFound(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))

	_, err := repo.GetByID(context.Background(), 999)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestTicketRepository_Update(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()

	tk := createTicket(t, repo, "Question", "How do I export?")
	created := tk.CreatedAt()

	_, err := tk.UpdateContent(ptr("Export throws exception"), nil)
	require.NoError(t, err)
	require.NoError(t, tk.Resolve())
	require.NoError(t, repo.Update(ctx, tk))

	found, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, "Export throws exception", found.Title())
	assert.Equal(t, vo.CategoryBug, found.Category())
	assert.Equal(t, vo.StatusResolved, found.Status())
	require.NotNil(t, found.ResolvedAt())
	assert.True(t, created.Equal(found.CreatedAt()))

	require.NoError(t, tk.ChangeStatus(vo.StatusOpen))
	require.NoError(t, repo.Update(ctx, tk))
	found, err = repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Nil(t, found.ResolvedAt())

	ghost, err := ticket.ReconstructTicket(404, "t", "d", "", vo.CategorySupport, vo.PriorityMedium, vo.StatusOpen, time.Now(), time.Now(), nil)
	require.NoError(t, err)
	assert.True(t, errors.IsNotFoundError(repo.Update(ctx, ghost)))
}

func TestTicketRepository_Delete(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()

	tk := createTicket(t, repo, "t", "d")
	require.NoError(t, repo.Delete(ctx, tk.ID()))

	_, err := repo.GetByID(ctx, tk.ID())
	assert.True(t, errors.IsNotFoundError(err))
	assert.True(t, errors.IsNotFoundError(repo.Delete(ctx, tk.ID())))
}

func TestTicketRepository_List(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()

	createTicket(t, repo, "Login error", "stack trace attached")
	createTicket(t, repo, "Dark mode", "feature please")
	createTicket(t, repo, "Invoice wrong", "urgent: double charged 100%")
	createTicket(t, repo, "How to export", "question about CSV")

	titles := func(ts []*ticket.Ticket) []string {
		out := make([]string, 0, len(ts))
		for _, tk := range ts {
			out = append(out, tk.Title())
		}
		return out
	}

	tests := []struct {
		name      string
		params    ticket.SearchParams
		want      []string
		wantTotal int64
	}{
		{name: "all by id", params: ticket.SearchParams{SortBy: "id"}, want: []string{"Login error", "Dark mode", "Invoice wrong", "How to export"}, wantTotal: 4},
		{name: "search is case-insensitive", params: ticket.SearchParams{Search: "LOGIN"}, want: []string{"Login error"}, wantTotal: 1},
		{name: "search description", params: ticket.SearchParams{Search: "csv"}, want: []string{"How to export"}, wantTotal: 1},
		{name: "absent term", params: ticket.SearchParams{Search: "kubernetes"}, want: []string{}, wantTotal: 0},
		{name: "percent is literal", params: ticket.SearchParams{Search: "100%"}, want: []string{"Invoice wrong"}, wantTotal: 1},
		{name: "underscore is literal", params: ticket.SearchParams{Search: "_"}, want: []string{}, wantTotal: 0},
		{name: "category", params: ticket.SearchParams{Category: "feature_request"}, want: []string{"Dark mode"}, wantTotal: 1},
		{name: "priority", params: ticket.SearchParams{Priority: "high"}, want: []string{"Invoice wrong"}, wantTotal: 1},
		{name: "title desc", params: ticket.SearchParams{SortBy: "title", SortOrder: "desc"}, want: []string{"Login error", "Invoice wrong", "How to export", "Dark mode"}, wantTotal: 4},
		{name: "priority desc puts high first", params: ticket.SearchParams{SortBy: "priority", SortOrder: "desc"}, want: []string{"Invoice wrong", "Login error", "Dark mode", "How to export"}, wantTotal: 4},
		{name: "page two", params: ticket.SearchParams{SortBy: "id", Page: 2, PageSize: 3}, want: []string{"How to export"}, wantTotal: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := ticket.BuildSearchSpec(tt.params)
			require.NoError(t, err)

			got, total, err := repo.List(ctx, spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(got))
			assert.Equal(t, tt.wantTotal, total)
		})
	}
}

func TestTicketRepository_List_NonASCIISearch(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()

	createTicket(t, repo, "Échec de paiement", "la facture est fausse")
	createTicket(t, repo, "Login error", "stack trace attached")

	tests := []struct {
		term      string
		wantFound bool
	}{
		{term: "Échec", wantFound: true},
		{term: "ÉCHEC", wantFound: true},
		{term: "PAIEMENT", wantFound: true},
		// SQLite leaves non-ASCII letters in their stored case.
		{term: "échec de", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			spec, err := ticket.BuildSearchSpec(ticket.SearchParams{Search: tt.term})
			require.NoError(t, err)

			got, total, err := repo.List(ctx, spec)
			require.NoError(t, err)
			if !tt.wantFound {
				assert.Empty(t, got)
				assert.Zero(t, total)
				return
			}
			require.Len(t, got, 1)
			assert.Equal(t, "Échec de paiement", got[0].Title())
			assert.EqualValues(t, 1, total)
		})
	}
}

func TestTicketRepository_List_AgreesWithInMemoryApply(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()

	var all []*ticket.Ticket
	for _, row := range [][2]string{
		{"Login error", "stack trace attached"},
		{"Dark mode", "feature please"},
		{"Invoice wrong", "urgent: double charged 100%"},
		{"How to export", "question about CSV"},
		{"Export throws exception", "critical, asap"},
	} {
		all = append(all, createTicket(t, repo, row[0], row[1]))
	}

	params := []ticket.SearchParams{
		{SortBy: "id"},
		{Search: "ex", SortBy: "title"},
		{Category: "bug", SortBy: "title", SortOrder: "desc"},
		{Priority: "medium", SortBy: "id", Page: 2, PageSize: 2},
		{Status: "open", Search: "100%", SortBy: "id"},
	}

	for _, p := range params {
		t.Run(fmt.Sprintf("%+v", p), func(t *testing.T) {
			spec, err := ticket.BuildSearchSpec(p)
			require.NoError(t, err)

			want, wantTotal := query.Apply(all, spec)
			got, total, err := repo.List(ctx, spec)
			require.NoError(t, err)

			assert.Equal(t, wantTotal, total)
			require.Len(t, got, len(want))
			for i := range want {
				assert.Equal(t, want[i].ID(), got[i].ID())
			}
		})
	}
}

func TestLowerTerm_SQLite(t *testing.T) {
	q := setupTestDB(t)
	assert.Equal(t, "Échec 100%", lowerTerm(q, "ÉCHEC 100%"))
	assert.Equal(t, "straße", lowerTerm(q, "STRAßE"))
}

func TestTicketRepository_List_CreatedAtDesc(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()

	for i := range 5 {
		createTicket(t, repo, fmt.Sprintf("ticket %d", i), "d")
	}

	spec, err := ticket.BuildSearchSpec(ticket.SearchParams{SortBy: "created_at", SortOrder: "desc"})
	require.NoError(t, err)
	got, _, err := repo.List(ctx, spec)
	require.NoError(t, err)
	require.Len(t, got, 5)
	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].CreatedAt().After(got[i-1].CreatedAt()))
	}
}

func TestTicketRepository_List_RejectsUnknownField(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))

	_, _, err := repo.List(context.Background(), query.Spec{Order: query.Order{Field: "password"}})
	assert.Error(t, err)

	_, _, err = repo.List(context.Background(), query.Spec{Conditions: []query.Condition{query.Eq("1=1 OR title", "x")}})
	assert.Error(t, err)
}

func TestTicketRepository_CountByCategory(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))

	createTicket(t, repo, "Login error", "")
	createTicket(t, repo, "Crash", "exception")
	createTicket(t, repo, "Invoice", "")

	counts, err := repo.CountByCategory(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[vo.CategoryBug])
	assert.Equal(t, int64(1), counts[vo.CategoryBilling])
	assert.Zero(t, counts[vo.CategorySupport])
}

func TestTicketRepository_Transaction(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewTicketRepository(gdb)
	txMgr := db.NewTransactionManager(gdb)
	ctx := context.Background()

	tk := createTicket(t, repo, "Question", "body")

	err := txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		found, err := repo.GetByID(txCtx, tk.ID())
		if err != nil {
			return err
		}
		if _, err := found.UpdateContent(ptr("changed"), nil); err != nil {
			return err
		}
		if err := repo.Update(txCtx, found); err != nil {
			return err
		}
		return errors.NewBadRequestError("abort")
	})
	require.Error(t, err)

	found, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, "Question", found.Title(), "rolled back update must not persist")
}

func ptr[T any](v T) *T {
	return &v
}
