package ticket

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	vo "ticketdesk/internal/domain/ticket/valueobjects"
)

func TestClassify_Scenarios(t *testing.T) {
	tests := []struct {
		name         string
		title        string
		description  string
		wantCategory vo.Category
		wantPriority vo.Priority
	}{
		{
			name:         "bug on save",
			title:        "Application error on save",
			description:  "An exception occurs when saving data",
			wantCategory: vo.CategoryBug,
			wantPriority: vo.PriorityMedium,
		},
		{
			name:         "urgent billing",
			title:        "Urgent billing issue",
			description:  "invoice payment failed, critical",
			wantCategory: vo.CategoryBilling,
			wantPriority: vo.PriorityHigh,
		},
		{
			name:         "feature wins over billing",
			title:        "add support for billing",
			description:  "",
			wantCategory: vo.CategoryFeatureRequest,
			wantPriority: vo.PriorityMedium,
		},
		{
			name:         "bug wins over feature",
			title:        "Feature export throws an Exception",
			description:  "please fix asap",
			wantCategory: vo.CategoryBug,
			wantPriority: vo.PriorityHigh,
		},
		{
			name:         "traceback in description",
			title:        "Crash",
			description:  "Traceback (most recent call last)",
			wantCategory: vo.CategoryBug,
			wantPriority: vo.PriorityMedium,
		},
		{
			name:         "no keywords defaults to support",
			title:        "Question",
			description:  "How do I change my password?",
			wantCategory: vo.CategorySupport,
			wantPriority: vo.PriorityMedium,
		},
		{
			name:         "empty input",
			wantCategory: vo.CategorySupport,
			wantPriority: vo.PriorityMedium,
		},
		{
			name:         "substring match on address",
			title:        "Wrong address",
			description:  "my shipping address is outdated",
			wantCategory: vo.CategoryFeatureRequest,
			wantPriority: vo.PriorityMedium,
		},
		{
			name:         "keyword split across title and description does not match",
			title:        "inv",
			description:  "oice",
			wantCategory: vo.CategorySupport,
			wantPriority: vo.PriorityMedium,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.title, tt.description)
			assert.Equal(t, tt.wantCategory, got.Category)
			assert.Equal(t, tt.wantPriority, got.Priority)
		})
	}
}

func TestClassify_BugKeywordsAnyCase(t *testing.T) {
	for _, kw := range []string{"error", "exception", "traceback"} {
		for _, variant := range []string{kw, strings.ToUpper(kw), strings.ToUpper(kw[:1]) + kw[1:]} {
			t.Run(variant, func(t *testing.T) {
				assert.Equal(t, vo.CategoryBug, Classify("Report", "we saw "+variant+" today").Category)
				assert.Equal(t, vo.CategoryBug, Classify(variant, "").Category)
			})
		}
	}
}

func TestClassify_HighPriorityKeywords(t *testing.T) {
	for _, kw := range []string{"urgent", "ASAP", "Critical"} {
		t.Run(kw, func(t *testing.T) {
			assert.Equal(t, vo.PriorityHigh, Classify("", fmt.Sprintf("this is %s", kw)).Priority)
		})
	}
	assert.Equal(t, vo.PriorityMedium, Classify("Login", "cannot log in").Priority)
}

func TestClassify_AlwaysValid(t *testing.T) {
	inputs := []string{"", " ", "ERROR", "payment", "ünïcödé", "add", "urgent urgent", "\x00"}
	for _, a := range inputs {
		for _, b := range inputs {
			got := Classify(a, b)
			assert.True(t, got.Category.IsValid(), "category for %q/%q", a, b)
			assert.True(t, got.Priority.IsValid(), "priority for %q/%q", a, b)
			assert.Equal(t, got, Classify(a, b), "classification must be deterministic")
		}
	}
}
