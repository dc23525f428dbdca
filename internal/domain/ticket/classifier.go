package ticket

import (
	"strings"

	"golang.org/x/text/cases"

	vo "ticketdesk/internal/domain/ticket/valueobjects"
)

// Classification is the derived category and priority of a ticket.
type Classification struct {
	Category vo.Category
	Priority vo.Priority
}

type categoryRule struct {
	category vo.Category
	keywords []string
}

// categoryRules are evaluated in order and the first match wins, so a text
// mentioning both "add" and "invoice" is a feature request, not billing.
var categoryRules = []categoryRule{
	{vo.CategoryBug, []string{"error", "exception", "traceback"}},
	{vo.CategoryFeatureRequest, []string{"feature", "enhancement", "add", "support"}},
	{vo.CategoryBilling, []string{"bill", "invoice", "payment"}},
}

var highPriorityKeywords = []string{"urgent", "asap", "critical"}

// Classify derives category and priority from a ticket's title and
// description. Keywords match as case-insensitive substrings, so "address"
// counts as "add" and "billing" as "bill".
func Classify(title, description string) Classification {
	text := cases.Fold().String(title + " " + description)

	return Classification{
		Category: classifyCategory(text),
		Priority: classifyPriority(text),
	}
}

func classifyCategory(text string) vo.Category {
	for _, rule := range categoryRules {
		if containsAny(text, rule.keywords) {
			return rule.category
		}
	}
	return vo.CategorySupport
}

func classifyPriority(text string) vo.Priority {
	if containsAny(text, highPriorityKeywords) {
		return vo.PriorityHigh
	}
	return vo.PriorityMedium
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
