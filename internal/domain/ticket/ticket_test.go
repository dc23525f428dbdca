package ticket

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "ticketdesk/internal/domain/ticket/valueobjects"
)

func ptr[T any](v T) *T {
	return &v
}

func TestNewTicket(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		email       string
		wantErr     string
	}{
		{name: "valid", title: "Login error", description: "500 on submit", email: "a@example.com"},
		{name: "valid without email", title: "Question", description: ""},
		{name: "blank title", title: "   ", description: "x", wantErr: "title is required"},
		{name: "title too long", title: strings.Repeat("a", MaxTitleLength+1), wantErr: "title exceeds"},
		{name: "description too long", title: "t", description: strings.Repeat("d", MaxDescriptionLength+1), wantErr: "description exceeds"},
		{name: "bad email", title: "t", email: "not-an-email", wantErr: "invalid reporter email"},
		{name: "email with display name", title: "t", email: "Bob <bob@example.com>", wantErr: "invalid reporter email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk, err := NewTicket(tt.title, tt.description, tt.email)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, tk)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.title, tk.Title())
			assert.Equal(t, tt.description, tk.Description())
			assert.Equal(t, tt.email, tk.ReporterEmail())
			assert.Equal(t, vo.StatusOpen, tk.Status())
			assert.Nil(t, tk.ResolvedAt())
			assert.False(t, tk.CreatedAt().IsZero())
			assert.Equal(t, tk.CreatedAt(), tk.UpdatedAt())
		})
	}
}

func TestNewTicket_Classifies(t *testing.T) {
	tk, err := NewTicket("Application error on save", "An exception occurs when saving data", "")
	require.NoError(t, err)
	assert.Equal(t, vo.CategoryBug, tk.Category())
	assert.Equal(t, vo.PriorityMedium, tk.Priority())

	tk, err = NewTicket("Urgent billing issue", "invoice payment failed, critical", "")
	require.NoError(t, err)
	assert.Equal(t, vo.CategoryBilling, tk.Category())
	assert.Equal(t, vo.PriorityHigh, tk.Priority())
}

func TestReconstructTicket(t *testing.T) {
	now := time.Now()

	_, err := ReconstructTicket(0, "t", "d", "", vo.CategoryBug, vo.PriorityHigh, vo.StatusOpen, now, now, nil)
	assert.Error(t, err)

	_, err = ReconstructTicket(1, "t", "d", "", vo.Category("other"), vo.PriorityHigh, vo.StatusOpen, now, now, nil)
	assert.Error(t, err)

	_, err = ReconstructTicket(1, "t", "d", "", vo.CategoryBug, vo.Priority("low"), vo.StatusOpen, now, now, nil)
	assert.Error(t, err)

	_, err = ReconstructTicket(1, "t", "d", "", vo.CategoryBug, vo.PriorityHigh, vo.TicketStatus("closed"), now, now, nil)
	assert.Error(t, err)

	tk, err := ReconstructTicket(7, "t", "d", "r@example.com", vo.CategoryBug, vo.PriorityHigh, vo.StatusResolved, now, now, &now)
	require.NoError(t, err)
	assert.Equal(t, uint(7), tk.ID())
	assert.Equal(t, &now, tk.ResolvedAt())
}

func TestTicket_SetID(t *testing.T) {
	tk, err := NewTicket("t", "d", "")
	require.NoError(t, err)

	assert.Error(t, tk.SetID(0))
	require.NoError(t, tk.SetID(3))
	assert.Equal(t, uint(3), tk.ID())
	assert.Error(t, tk.SetID(4))
}

func TestTicket_UpdateContent_Reclassifies(t *testing.T) {
	tk, err := NewTicket("Question", "How do I export?", "")
	require.NoError(t, err)
	require.Equal(t, vo.CategorySupport, tk.Category())
	created := tk.CreatedAt()

	changed, err := tk.UpdateContent(ptr("Export throws exception"), nil)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "Export throws exception", tk.Title())
	assert.Equal(t, "How do I export?", tk.Description())
	assert.Equal(t, vo.CategoryBug, tk.Category())
	assert.Equal(t, created, tk.CreatedAt())

	changed, err = tk.UpdateContent(nil, ptr("urgent"))
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, vo.PriorityHigh, tk.Priority())
}

func TestTicket_UpdateContent_NoChange(t *testing.T) {
	tk, err := NewTicket("Question", "body", "")
	require.NoError(t, err)
	changed, err := tk.UpdateContent(ptr("Question"), nil)
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = tk.UpdateContent(nil, nil)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestTicket_UpdateContent_Invalid(t *testing.T) {
	tk, err := NewTicket("Question", "body", "")
	require.NoError(t, err)

	_, err = tk.UpdateContent(ptr(""), nil)
	assert.Error(t, err)
	assert.Equal(t, "Question", tk.Title())
}

func TestTicket_ChangeStatus(t *testing.T) {
	tk, err := NewTicket("t", "d", "")
	require.NoError(t, err)

	require.NoError(t, tk.Resolve())
	assert.Equal(t, vo.StatusResolved, tk.Status())
	require.NotNil(t, tk.ResolvedAt())
	first := *tk.ResolvedAt()

	require.NoError(t, tk.Resolve())
	assert.Equal(t, first, *tk.ResolvedAt())

	require.NoError(t, tk.ChangeStatus(vo.StatusOpen))
	assert.Equal(t, vo.StatusOpen, tk.Status())
	assert.Nil(t, tk.ResolvedAt())

	assert.Error(t, tk.ChangeStatus(vo.TicketStatus("closed")))
}

func TestTicket_SetReporterEmail(t *testing.T) {
	tk, err := NewTicket("t", "d", "")
	require.NoError(t, err)

	require.NoError(t, tk.SetReporterEmail("x@example.com"))
	assert.Equal(t, "x@example.com", tk.ReporterEmail())
	assert.Error(t, tk.SetReporterEmail("bad"))
	assert.Equal(t, "x@example.com", tk.ReporterEmail())
	require.NoError(t, tk.SetReporterEmail(""))
	assert.Empty(t, tk.ReporterEmail())
}

func TestTicket_Field(t *testing.T) {
	tk, err := NewTicket("Urgent", "payment", "")
	require.NoError(t, err)

	v, ok := tk.Field(FieldCategory)
	assert.True(t, ok)
	assert.Equal(t, "billing", v)

	v, ok = tk.Field(FieldPriorityRank)
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = tk.Field(FieldResolvedAt)
	assert.False(t, ok)

	_, ok = tk.Field("unknown")
	assert.False(t, ok)
}
