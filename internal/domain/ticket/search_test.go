package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "ticketdesk/internal/domain/ticket/valueobjects"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/query"
)

func fixtureTickets(t *testing.T) []*Ticket {
	t.Helper()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := []struct {
		title, desc string
		cat         vo.Category
		pri         vo.Priority
		status      vo.TicketStatus
	}{
		{"Login error", "stack trace attached", vo.CategoryBug, vo.PriorityMedium, vo.StatusOpen},
		{"Dark mode", "feature please", vo.CategoryFeatureRequest, vo.PriorityMedium, vo.StatusResolved},
		{"Invoice wrong", "urgent: double charged", vo.CategoryBilling, vo.PriorityHigh, vo.StatusOpen},
		{"How to export", "question about CSV", vo.CategorySupport, vo.PriorityMedium, vo.StatusOpen},
	}

	out := make([]*Ticket, 0, len(rows))
	for i, r := range rows {
		ts := base.Add(time.Duration(i) * time.Hour)
		tk, err := ReconstructTicket(uint(i+1), r.title, r.desc, "", r.cat, r.pri, r.status, ts, ts, nil)
		require.NoError(t, err)
		out = append(out, tk)
	}
	return out
}

func ids(ts []*Ticket) []uint {
	out := make([]uint, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.ID())
	}
	return out
}

func TestBuildSearchSpec(t *testing.T) {
	tests := []struct {
		name    string
		params  SearchParams
		wantIDs []uint
	}{
		{name: "no filters matches all", params: SearchParams{}, wantIDs: []uint{1, 2, 3, 4}},
		{name: "search title", params: SearchParams{Search: "LOGIN"}, wantIDs: []uint{1}},
		{name: "search description", params: SearchParams{Search: "csv"}, wantIDs: []uint{4}},
		{name: "search absent term", params: SearchParams{Search: "kubernetes"}, wantIDs: []uint{}},
		{name: "whitespace search ignored", params: SearchParams{Search: "   "}, wantIDs: []uint{1, 2, 3, 4}},
		{name: "category", params: SearchParams{Category: "billing"}, wantIDs: []uint{3}},
		{name: "category any case", params: SearchParams{Category: "Feature_Request"}, wantIDs: []uint{2}},
		{name: "status", params: SearchParams{Status: "open"}, wantIDs: []uint{1, 3, 4}},
		{name: "priority", params: SearchParams{Priority: "high"}, wantIDs: []uint{3}},
		{name: "filters combine with and", params: SearchParams{Status: "open", Priority: "medium"}, wantIDs: []uint{1, 4}},
		{name: "created_at desc", params: SearchParams{SortOrder: "desc"}, wantIDs: []uint{4, 3, 2, 1}},
		{name: "title asc", params: SearchParams{SortBy: "title"}, wantIDs: []uint{2, 4, 3, 1}},
		{name: "priority desc puts high first", params: SearchParams{SortBy: "priority", SortOrder: "desc"}, wantIDs: []uint{3, 1, 2, 4}},
		{name: "paging", params: SearchParams{Page: 2, PageSize: 3}, wantIDs: []uint{4}},
	}

	tickets := fixtureTickets(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := BuildSearchSpec(tt.params)
			require.NoError(t, err)

			got, _ := query.Apply(tickets, spec)
			assert.Equal(t, tt.wantIDs, ids(got))
		})
	}
}

func TestBuildSearchSpec_CreatedAtDescNonIncreasing(t *testing.T) {
	spec, err := BuildSearchSpec(SearchParams{SortBy: "created_at", SortOrder: "desc"})
	require.NoError(t, err)

	got, total := query.Apply(fixtureTickets(t), spec)
	assert.EqualValues(t, 4, total)
	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].CreatedAt().After(got[i-1].CreatedAt()))
	}
}

func TestBuildSearchSpec_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		params    SearchParams
		wantParam string
	}{
		{name: "unknown sort field", params: SearchParams{SortBy: "reporter_email"}, wantParam: "sort_by"},
		{name: "unknown sort order", params: SearchParams{SortOrder: "sideways"}, wantParam: "sort_order"},
		{name: "unknown category", params: SearchParams{Category: "other"}, wantParam: "category"},
		{name: "unknown status", params: SearchParams{Status: "closed"}, wantParam: "status"},
		{name: "unknown priority", params: SearchParams{Priority: "low"}, wantParam: "priority"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildSearchSpec(tt.params)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
			assert.Contains(t, errors.GetAppError(err).Message, tt.wantParam)
		})
	}
}
