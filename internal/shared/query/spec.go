// Package query describes list queries independently of any storage engine.
// A Spec is a conjunction of conditions plus an ordering and a page window;
// repositories translate it to SQL, and Match/Less evaluate it in memory.
package query

import (
	"strings"
	"time"
)

type Operator string

const (
	OpEq       Operator = "eq"
	OpGte      Operator = "gte"
	OpLte      Operator = "lte"
	OpContains Operator = "contains"
)

// Condition is a single predicate. Eq, Gte and Lte compare Field with Value.
// Contains tests whether the string Value occurs, ignoring case, in the
// space-joined values of Fields.
type Condition struct {
	Field  string
	Fields []string
	Op     Operator
	Value  any
}

func Eq(field string, value any) Condition {
	return Condition{Field: field, Op: OpEq, Value: value}
}

func Gte(field string, value any) Condition {
	return Condition{Field: field, Op: OpGte, Value: value}
}

func Lte(field string, value any) Condition {
	return Condition{Field: field, Op: OpLte, Value: value}
}

func Contains(term string, fields ...string) Condition {
	return Condition{Fields: fields, Op: OpContains, Value: term}
}

type Order struct {
	Field     string
	Direction Direction
}

// Spec is the predicate and ordering handed to a repository.
type Spec struct {
	Conditions []Condition
	Order      Order
	Page       PageFilter
}

// Record exposes named field values for in-memory evaluation.
type Record interface {
	Field(name string) (any, bool)
}

// Match reports whether r satisfies every condition. An empty spec matches all.
func (s Spec) Match(r Record) bool {
	for _, c := range s.Conditions {
		if !c.Match(r) {
			return false
		}
	}
	return true
}

func (c Condition) Match(r Record) bool {
	if c.Op == OpContains {
		term, _ := c.Value.(string)
		parts := make([]string, 0, len(c.Fields))
		for _, f := range c.Fields {
			v, ok := r.Field(f)
			if !ok {
				continue
			}
			if s, ok := v.(string); ok {
				parts = append(parts, s)
			}
		}
		return strings.Contains(strings.ToLower(strings.Join(parts, " ")), strings.ToLower(term))
	}

	v, ok := r.Field(c.Field)
	if !ok {
		return false
	}
	cmp, ok := compare(v, c.Value)
	if !ok {
		return false
	}
	switch c.Op {
	case OpEq:
		return cmp == 0
	case OpGte:
		return cmp >= 0
	case OpLte:
		return cmp <= 0
	}
	return false
}

// Less orders a before b according to s.Order. Records with equal sort keys
// are left to the caller's stable sort.
func (s Spec) Less(a, b Record) bool {
	if s.Order.Field == "" {
		return false
	}
	av, aok := a.Field(s.Order.Field)
	bv, bok := b.Field(s.Order.Field)
	if !aok || !bok {
		return false
	}
	cmp, ok := compare(av, bv)
	if !ok {
		return false
	}
	if s.Order.Direction == Desc {
		return cmp > 0
	}
	return cmp < 0
}

func compare(a, b any) (int, bool) {
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		if !ok {
			return 0, false
		}
		return strings.Compare(av, bv), true
	case time.Time:
		bv, ok := b.(time.Time)
		if !ok {
			return 0, false
		}
		return av.Compare(bv), true
	}

	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if !aok || !bok {
		return 0, false
	}
	switch {
	case af < bf:
		return -1, true
	case af > bf:
		return 1, true
	default:
		return 0, true
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	}
	return 0, false
}
