package query

import (
	"fmt"
	"math"

	"ticketdesk/internal/shared/errors"
)

type Number interface {
	~int | ~int64 | ~float64
}

// Bound names a query parameter and its optional value.
type Bound[T Number] struct {
	Param string
	Value *T
}

// Range builds the gte/lte conditions for field. Non-finite or negative
// bounds and lo > hi are rejected with the offending parameter named.
func Range[T Number](field string, lo, hi Bound[T]) ([]Condition, error) {
	var conds []Condition

	for _, b := range []Bound[T]{lo, hi} {
		if b.Value == nil {
			continue
		}
		// NaN compares false against everything, so it would slip past
		// both checks below.
		if v := float64(*b.Value); math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.NewInvalidParamError(b.Param, "must be a finite number")
		}
		if *b.Value < 0 {
			return nil, errors.NewInvalidParamError(b.Param, "must not be negative")
		}
	}

	if lo.Value != nil && hi.Value != nil && *lo.Value > *hi.Value {
		return nil, errors.NewInvalidParamError(lo.Param,
			fmt.Sprintf("%s (%v) must not exceed %s (%v)", lo.Param, *lo.Value, hi.Param, *hi.Value))
	}

	if lo.Value != nil {
		conds = append(conds, Gte(field, *lo.Value))
	}
	if hi.Value != nil {
		conds = append(conds, Lte(field, *hi.Value))
	}
	return conds, nil
}
