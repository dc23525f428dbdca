package query

import (
	"slices"
)

// Apply filters, orders and pages items in memory. It returns the page and
// the number of matches before paging. Repositories that translate a Spec
// to SQL must return the same rows; in-memory fakes use it directly.
func Apply[T Record](items []T, spec Spec) ([]T, int64) {
	matched := make([]T, 0, len(items))
	for _, it := range items {
		if spec.Match(it) {
			matched = append(matched, it)
		}
	}

	slices.SortStableFunc(matched, func(a, b T) int {
		switch {
		case spec.Less(a, b):
			return -1
		case spec.Less(b, a):
			return 1
		}
		return 0
	})

	total := int64(len(matched))
	if !spec.Page.Enabled() {
		return matched, total
	}

	start := min(spec.Page.Offset(), len(matched))
	end := min(start+spec.Page.Limit(), len(matched))
	return matched[start:end], total
}
