package snql

import (
	"regexp"
	"strings"

	"github.com/mohdwajid07/SNQL-to-SQL-parser/internal/queryir"
)

var (
	descPattern  = regexp.MustCompile(`(?i)\s+desc\b`)
	ascPattern   = regexp.MustCompile(`(?i)\s+asc\b`)
	limitPattern = regexp.MustCompile(`^(\d+)\b`)
)

// orderAggregateRules rewrite "<agg> of <field>" inside an ORDER BY
// fragment, one rule per aggregate name.
var orderAggregateRules = func() []rewriteRule {
	rules := make([]rewriteRule, len(queryir.Aggregates))
	for i, agg := range queryir.Aggregates {
		name := strings.ToLower(string(agg))
		rules[i] = newRule(name+" of", `\b`+name+`\s+of\s+(\w+(?:\.\w+)*)`, string(agg)+`(${1})`)
	}
	return rules
}()

// ParseOrder parses an ORDER BY fragment.
//
// Aggregate phrases are rewritten first. Then, if " desc" appears anywhere
// in the fragment, the direction is DESC and every such token is removed;
// otherwise " asc" tokens are removed and the direction is ASC. One
// direction applies to the whole clause, even when it lists several fields.
//
// Returns nil if nothing remains once the direction token is removed.
func ParseOrder(raw string) *queryir.OrderBy {
	fields := applyRules(orderAggregateRules, strings.TrimSpace(raw))

	direction := queryir.Ascending
	switch {
	case descPattern.MatchString(fields):
		fields = descPattern.ReplaceAllString(fields, "")
		direction = queryir.Descending
	case ascPattern.MatchString(fields):
		fields = ascPattern.ReplaceAllString(fields, "")
	}

	fields = strings.TrimSpace(fields)
	if fields == "" {
		return nil
	}
	return &queryir.OrderBy{Fields: fields, Direction: direction}
}

// ParseLimit extracts the row cap from a LIMIT fragment. The integer is
// taken verbatim with no range check. Returns false if the fragment does not
// start with an integer.
func ParseLimit(raw string) (string, bool) {
	m := limitPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return "", false
	}
	return m[1], true
}
