package snql

import (
	"regexp"
	"strings"

	"github.com/mohdwajid07/SNQL-to-SQL-parser/internal/queryir"
)

// joinBodyPattern splits a join clause body into its table and ON condition.
var joinBodyPattern = regexp.MustCompile(`(?is)^(\w+)\s+on\s+(.+)$`)

// ParseJoins builds the join list from the segmented join clauses.
//
// Joins keep source order. The segmenter has already bounded each body at
// the next clause keyword, so the condition never swallows a following join
// or terminal clause. A join phrase without "<table> on <condition>" is
// dropped.
func ParseJoins(seg Segments) []queryir.Join {
	var joins []queryir.Join

	for _, clause := range seg.JoinClauses() {
		kind, ok := clause.Keyword.JoinKind()
		if !ok {
			continue
		}
		m := joinBodyPattern.FindStringSubmatch(clause.Text)
		if m == nil {
			continue
		}
		joins = append(joins, queryir.Join{
			Kind:      kind,
			Table:     m[1],
			Condition: strings.TrimSpace(m[2]),
		})
	}

	return joins
}
