package query

import (
	"fmt"
	"slices"
	"strings"

	"ticketdesk/internal/shared/errors"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection accepts asc/desc in any case. An empty string means ascending.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc":
		return Asc, nil
	case "desc":
		return Desc, nil
	}
	return "", errors.NewInvalidParamError("sort_order", fmt.Sprintf("must be one of [asc desc], got %q", s))
}

// SortFields is the allow-list of sortable columns for one entity.
type SortFields struct {
	Allowed []string
	Default string
}

// Order resolves sort_by/sort_order against the allow-list. An empty sortBy
// falls back to the default field.
func (sf SortFields) Order(sortBy, sortOrder string) (Order, error) {
	field := strings.ToLower(strings.TrimSpace(sortBy))
	if field == "" {
		field = sf.Default
	}
	if !slices.Contains(sf.Allowed, field) {
		return Order{}, errors.NewInvalidParamError("sort_by",
			fmt.Sprintf("must be one of [%s], got %q", strings.Join(sf.Allowed, " "), sortBy))
	}

	dir, err := ParseDirection(sortOrder)
	if err != nil {
		return Order{}, err
	}

	return Order{Field: field, Direction: dir}, nil
}
