package engine

import (
	"fmt"

	"github.com/spf13/cast"
)

// NullDisplay is how a NULL value is shown to the user.
const NullDisplay = "NULL"

// Result is the outcome of a successful statement.
type Result struct {
	// Columns are the result column names as reported by the store.
	Columns []string `json:"columns"`

	// Rows hold one value per column: int64, float64, string, bool,
	// time.Time or nil.
	Rows [][]any `json:"rows"`

	// Truncated is set when rows past the executor's cap were discarded.
	Truncated bool `json:"truncated,omitempty"`
}

// DisplayRows renders every value as a string, with NULL for nil.
func (r *Result) DisplayRows() [][]string {
	out := make([][]string, len(r.Rows))
	for i, row := range r.Rows {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = DisplayValue(v)
		}
		out[i] = cells
	}
	return out
}

// DisplayValue renders a single result value for display.
// Example: nil → "NULL", float64(75000) → "75000", int64(28) → "28"
func DisplayValue(v any) string {
	if v == nil {
		return NullDisplay
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return s
}
