package repository

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"ticketdesk/internal/shared/query"
)

// columns maps query field names to SQL expressions. Fields that are not
// listed can be neither filtered nor ordered on, which keeps user input out
// of the generated SQL.
type columns map[string]string

func (c columns) expr(field string) (string, error) {
	col, ok := c[field]
	if !ok {
		return "", fmt.Errorf("field %q is not queryable", field)
	}
	return col, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// applySpec adds the WHERE clauses of spec to q. Ordering and paging are
// applied separately so the caller can count matches first.
func applySpec(q *gorm.DB, spec query.Spec, cols columns) (*gorm.DB, error) {
	for _, c := range spec.Conditions {
		var err error
		q, err = applyCondition(q, c, cols)
		if err != nil {
			return nil, err
		}
	}
	return q, nil
}

func applyCondition(q *gorm.DB, c query.Condition, cols columns) (*gorm.DB, error) {
	if c.Op == query.OpContains {
		term, _ := c.Value.(string)
		exprs := make([]string, 0, len(c.Fields))
		for _, f := range c.Fields {
			col, err := cols.expr(f)
			if err != nil {
				return nil, err
			}
			exprs = append(exprs, col)
		}
		if len(exprs) == 0 {
			return q, nil
		}
		pattern := "%" + likeEscaper.Replace(lowerTerm(q, term)) + "%"
		return q.Where("LOWER("+concat(q, exprs)+") LIKE ?"+likeEscapeClause(q), pattern), nil
	}

	col, err := cols.expr(c.Field)
	if err != nil {
		return nil, err
	}
	value := c.Value
	if t, ok := value.(time.Time); ok {
		value = t.UnixMilli()
	}

	switch c.Op {
	case query.OpEq:
		return q.Where(col+" = ?", value), nil
	case query.OpGte:
		return q.Where(col+" >= ?", value), nil
	case query.OpLte:
		return q.Where(col+" <= ?", value), nil
	}
	return nil, fmt.Errorf("unsupported operator %q", c.Op)
}

// applyOrder sorts by the requested field with id as a tie-breaker so equal
// keys keep insertion order.
func applyOrder(q *gorm.DB, order query.Order, cols columns) (*gorm.DB, error) {
	if order.Field == "" {
		return q.Order("id ASC"), nil
	}
	col, err := cols.expr(order.Field)
	if err != nil {
		return nil, err
	}
	dir := "ASC"
	if order.Direction == query.Desc {
		dir = "DESC"
	}
	q = q.Order(col + " " + dir)
	if order.Field != "id" {
		q = q.Order("id ASC")
	}
	return q, nil
}

func applyPage(q *gorm.DB, page query.PageFilter) *gorm.DB {
	if !page.Enabled() {
		return q
	}
	return q.Limit(page.Limit()).Offset(page.Offset())
}

// concat joins column expressions with a single space, matching how the
// in-memory matcher builds its search text.
func concat(q *gorm.DB, exprs []string) string {
	if len(exprs) == 1 {
		return exprs[0]
	}
	if isMySQL(q) {
		return "CONCAT_WS(' ', " + strings.Join(exprs, ", ") + ")"
	}
	return strings.Join(exprs, " || ' ' || ")
}

// lowerTerm folds the search term the same way the database folds the
// column. SQLite's LOWER() only maps ASCII letters, so the term gets the
// same treatment there: "ÉCHEC" still finds "Échec", while "échec" does
// not. MySQL folds Unicode and its _ci collations ignore case anyway.
func lowerTerm(q *gorm.DB, term string) string {
	if isMySQL(q) {
		return strings.ToLower(term)
	}
	return strings.Map(func(r rune) rune {
		if 'A' <= r && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, term)
}

// MySQL already treats backslash as the LIKE escape character.
func likeEscapeClause(q *gorm.DB) string {
	if isMySQL(q) {
		return ""
	}
	return ` ESCAPE '\'`
}

func isMySQL(q *gorm.DB) bool {
	return q.Dialector != nil && q.Dialector.Name() == "mysql"
}
