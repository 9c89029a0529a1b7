package querysql

import (
	"regexp"
	"sort"
)

var (
	tableRefPattern = regexp.MustCompile(`(?i)\b(?:FROM|JOIN)\s+(\w+)`)
	wherePattern    = regexp.MustCompile(`(?i)\bWHERE\b`)
	joinPattern     = regexp.MustCompile(`(?i)\bJOIN\b`)
)

// ExtractTables returns the distinct table names that follow a FROM or JOIN
// keyword in sql. The result is sorted so output is deterministic; callers
// should treat it as a set.
//
// The scan is textual and informational only.
func ExtractTables(sql string) []string {
	seen := make(map[string]struct{})
	tables := []string{}

	for _, m := range tableRefPattern.FindAllStringSubmatch(sql, -1) {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		tables = append(tables, m[1])
	}

	sort.Strings(tables)
	return tables
}

// Summary describes a rendered statement for display next to its results.
type Summary struct {
	Tables        []string `json:"tables"`
	ColumnCount   int      `json:"column_count"`
	HasConditions bool     `json:"has_conditions"`
	HasJoins      bool     `json:"has_joins"`
}

// Summarize builds a Summary for sql. columnCount is the number of result
// columns reported by the executing store.
func Summarize(sql string, columnCount int) Summary {
	return Summary{
		Tables:        ExtractTables(sql),
		ColumnCount:   columnCount,
		HasConditions: wherePattern.MatchString(sql),
		HasJoins:      joinPattern.MatchString(sql),
	}
}
