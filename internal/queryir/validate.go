package queryir

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// limitPattern accepts any run of ASCII digits. The row cap is carried
// verbatim, so it is not bounded to a machine integer.
var limitPattern = regexp.MustCompile(`^[0-9]+$`)

// ValidationError describes a structurally malformed Query.
//
// The translator never produces an invalid Query from text that passed the
// anchor check. ValidationError exists for callers that construct a Query
// by hand and hand it to the renderer.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid query: %s: %s", e.Field, e.Message)
}

// IsValidationError returns true if err is, or wraps, a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Validate checks the structural invariants of a Query.
//
// Rules:
//  1. Table is required
//  2. At least one field is required, and aggregated fields need a name
//  3. Every join has a valid kind, a table and a condition
//  4. OrderBy, when present, has fields and a valid direction
//  5. Limit, when present, is a string of decimal digits of any length
//
// Validate is a pure function. It does not check that tables or columns
// exist; that is the executing store's concern.
func Validate(q *Query) error {
	if q == nil {
		return &ValidationError{Field: "query", Message: "query is nil"}
	}

	if strings.TrimSpace(q.Table) == "" {
		return &ValidationError{Field: "table", Message: "table is required"}
	}

	if len(q.Fields) == 0 {
		return &ValidationError{Field: "fields", Message: "at least one field is required"}
	}
	for i, f := range q.Fields {
		if !f.Aggregate.IsValid() {
			return &ValidationError{
				Field:   fmt.Sprintf("fields[%d]", i),
				Message: fmt.Sprintf("unknown aggregate %q", f.Aggregate),
			}
		}
		if f.Aggregate != AggregateNone && strings.TrimSpace(f.Name) == "" {
			return &ValidationError{
				Field:   fmt.Sprintf("fields[%d]", i),
				Message: fmt.Sprintf("%s requires a column", f.Aggregate),
			}
		}
	}

	for i, j := range q.Joins {
		field := fmt.Sprintf("joins[%d]", i)
		switch {
		case !j.Kind.IsValid():
			return &ValidationError{Field: field, Message: fmt.Sprintf("unknown join kind %q", j.Kind)}
		case strings.TrimSpace(j.Table) == "":
			return &ValidationError{Field: field, Message: "join table is required"}
		case strings.TrimSpace(j.Condition) == "":
			return &ValidationError{Field: field, Message: "join condition is required"}
		}
	}

	if q.OrderBy != nil {
		if strings.TrimSpace(q.OrderBy.Fields) == "" {
			return &ValidationError{Field: "order_by", Message: "order by requires at least one field"}
		}
		if q.OrderBy.Direction != Ascending && q.OrderBy.Direction != Descending {
			return &ValidationError{
				Field:   "order_by",
				Message: fmt.Sprintf("unknown direction %q", q.OrderBy.Direction),
			}
		}
	}

	if q.Limit != "" {
		if !limitPattern.MatchString(q.Limit) {
			return &ValidationError{
				Field:   "limit",
				Message: fmt.Sprintf("limit %q is not a non-negative integer", q.Limit),
			}
		}
	}

	return nil
}
