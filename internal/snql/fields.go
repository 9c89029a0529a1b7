package snql

import (
	"regexp"
	"strings"

	"github.com/mohdwajid07/SNQL-to-SQL-parser/internal/queryir"
)

// aggregatePattern matches "<agg> of <expr>" for the five aggregate names.
var aggregatePattern = regexp.MustCompile(`(?is)^(` + aggregateAlternation() + `)\s+of\s+(.+)$`)

// aggregateAlternation returns "count|sum|avg|max|min".
func aggregateAlternation() string {
	names := make([]string, len(queryir.Aggregates))
	for i, agg := range queryir.Aggregates {
		names[i] = strings.ToLower(string(agg))
	}
	return strings.Join(names, "|")
}

// ParseFields parses the projection list between "get" and "from".
//
// Items are split on commas. An item phrased "<agg> of <expr>" becomes an
// aggregated field over expr; anything else passes through trimmed.
func ParseFields(raw string) []queryir.Field {
	items := strings.Split(raw, ",")
	fields := make([]queryir.Field, 0, len(items))

	for _, item := range items {
		item = strings.TrimSpace(item)
		if m := aggregatePattern.FindStringSubmatch(item); m != nil {
			fields = append(fields, queryir.Field{
				Name:      strings.TrimSpace(m[2]),
				Aggregate: queryir.Aggregate(strings.ToUpper(m[1])),
			})
			continue
		}
		fields = append(fields, queryir.Field{Name: item})
	}

	return fields
}
