package snql

import (
	"fmt"

	"github.com/mohdwajid07/SNQL-to-SQL-parser/internal/queryir"
	"github.com/mohdwajid07/SNQL-to-SQL-parser/internal/querysql"
)

// Parse segments a query and parses every clause into a queryir.Query.
//
// Returns *SyntaxError if the anchor phrase is missing.
func Parse(query string) (*queryir.Query, error) {
	seg, err := Segment(query)
	if err != nil {
		return nil, err
	}

	q := &queryir.Query{
		Table:  seg.Table,
		Fields: ParseFields(seg.Fields),
		Joins:  ParseJoins(seg),
	}

	if where, ok := seg.Lookup(KeywordWhere); ok {
		q.Where = TranslateCondition(where)
	}
	if groupBy, ok := seg.Lookup(KeywordGroupBy); ok {
		q.GroupBy = groupBy
	}
	if having, ok := seg.Lookup(KeywordHaving); ok {
		q.Having = TranslateHaving(having)
	}
	if orderBy, ok := seg.Lookup(KeywordOrderBy); ok {
		q.OrderBy = ParseOrder(orderBy)
	}
	if limit, ok := seg.Lookup(KeywordLimit); ok {
		if n, ok := ParseLimit(limit); ok {
			q.Limit = n
		}
	}

	return q, nil
}

// Translate converts one SNQL query into one SQL SELECT statement.
//
// The result is either SQL text or a *SyntaxError, never both. Translate is
// deterministic and safe for concurrent use.
func Translate(query string) (string, error) {
	q, err := Parse(query)
	if err != nil {
		return "", err
	}

	sql, err := querysql.Render(q)
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	return sql, nil
}
