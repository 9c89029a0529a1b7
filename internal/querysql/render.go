package querysql

import (
	"strings"

	"github.com/mohdwajid07/SNQL-to-SQL-parser/internal/queryir"
)

// Render converts a Query into one SQL statement terminated by ";".
//
// Returns a *queryir.ValidationError if the query is structurally invalid.
func Render(q *queryir.Query) (string, error) {
	if err := queryir.Validate(q); err != nil {
		return "", err
	}

	var b strings.Builder

	b.WriteString("SELECT ")
	b.WriteString(renderFields(q.Fields))
	b.WriteString(" FROM ")
	b.WriteString(q.Table)

	for _, j := range q.Joins {
		b.WriteString(" ")
		b.WriteString(j.String())
	}

	if q.Where != "" {
		b.WriteString(" WHERE ")
		b.WriteString(q.Where)
	}

	if q.GroupBy != "" {
		b.WriteString(" GROUP BY ")
		b.WriteString(q.GroupBy)
	}

	if q.Having != "" {
		b.WriteString(" HAVING ")
		b.WriteString(q.Having)
	}

	if q.OrderBy != nil {
		b.WriteString(" ORDER BY ")
		b.WriteString(q.OrderBy.Fields)
		b.WriteString(" ")
		b.WriteString(string(q.OrderBy.Direction))
	}

	if q.Limit != "" {
		b.WriteString(" LIMIT ")
		b.WriteString(q.Limit)
	}

	b.WriteString(";")
	return b.String(), nil
}

// renderFields joins the projection list in source order.
// Example: [{name} {id COUNT}] → "name, COUNT(id)"
func renderFields(fields []queryir.Field) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.String()
	}
	return strings.Join(parts, ", ")
}
