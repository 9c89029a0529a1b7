package harness

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/huandu/go-sqlbuilder"
	"github.com/spf13/cast"

	"github.com/mohdwajid07/SNQL-to-SQL-parser/internal/engine"
)

// AssertionError provides detailed context for assertion failures.
type AssertionError struct {
	Type     string
	Expected string
	Actual   string
	Trace    []TraceEvent
}

// Error implements the error interface with a readable trace dump.
func (e *AssertionError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s assertion failed\n", e.Type)
	fmt.Fprintf(&b, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&b, "  Actual:   %s\n", e.Actual)
	if len(e.Trace) > 0 {
		b.WriteString("\nFull trace:\n")
		for _, event := range e.Trace {
			status := "ok"
			switch {
			case event.SyntaxError:
				status = "syntax error"
			case event.Error != "":
				status = "error: " + event.Error
			}
			fmt.Fprintf(&b, "  [%d] %s -> %s (%s)\n", event.Step, event.Query, event.SQL, status)
		}
	}
	return b.String()
}

// EvaluateAssertions checks every assertion against the result trace and,
// for final_state, against the store. Returns one error per failed
// assertion.
func EvaluateAssertions(ctx context.Context, result *Result, assertions []Assertion, src SessionSource) []error {
	var errs []error
	for _, a := range assertions {
		if err := evaluateAssertion(ctx, result, a, src); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func evaluateAssertion(ctx context.Context, result *Result, a Assertion, src SessionSource) error {
	switch a.Type {
	case AssertSQLContains:
		return assertSQLContains(result.Trace, a)
	case AssertRowCount:
		return assertRowCount(result.Trace, a)
	case AssertFinalState:
		return assertFinalState(ctx, result.Trace, a, src)
	default:
		return fmt.Errorf("unknown assertion type: %s", a.Type)
	}
}

func stepEvent(trace []TraceEvent, a Assertion) (TraceEvent, error) {
	if a.Step < 1 || a.Step > len(trace) {
		return TraceEvent{}, &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("step %d", a.Step),
			Actual:   fmt.Sprintf("%d steps in trace", len(trace)),
			Trace:    trace,
		}
	}
	return trace[a.Step-1], nil
}

func assertSQLContains(trace []TraceEvent, a Assertion) error {
	event, err := stepEvent(trace, a)
	if err != nil {
		return err
	}
	if !strings.Contains(event.SQL, a.Text) {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("step %d SQL containing %q", a.Step, a.Text),
			Actual:   fmt.Sprintf("%q", event.SQL),
			Trace:    trace,
		}
	}
	return nil
}

func assertRowCount(trace []TraceEvent, a Assertion) error {
	event, err := stepEvent(trace, a)
	if err != nil {
		return err
	}
	if len(event.Rows) != a.Count {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("step %d returning %d rows", a.Step, a.Count),
			Actual:   fmt.Sprintf("%d rows", len(event.Rows)),
			Trace:    trace,
		}
	}
	return nil
}

// validIdentifier matches safe SQL identifiers (alphanumeric + underscore, not starting with digit).
var validIdentifier = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// assertFinalState checks that exactly one row of a.Table matches a.Where
// and carries the a.Expect column values. Values compare by their display
// form, so 85000 in YAML matches a REAL 85000.0 in the store.
func assertFinalState(ctx context.Context, trace []TraceEvent, a Assertion, src SessionSource) error {
	if !validIdentifier.MatchString(a.Table) {
		return fmt.Errorf("final_state: invalid table name %q", a.Table)
	}

	sb := sqlbuilder.SQLite.NewSelectBuilder()
	sb.Select("*").From(a.Table)
	for _, key := range sortedKeys(a.Where) {
		if !validIdentifier.MatchString(key) {
			return fmt.Errorf("final_state: invalid column name %q", key)
		}
		sb.Where(sb.Equal(key, a.Where[key]))
	}
	query, args := sb.Build()

	conn, err := src.Session(ctx)
	if err != nil {
		return fmt.Errorf("final_state: %w", err)
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("final_state: query %s failed: %w", a.Table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("final_state: %w", err)
	}

	var matched []map[string]any
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return fmt.Errorf("final_state: %w", err)
		}
		row := make(map[string]any, len(columns))
		for i, col := range columns {
			row[col] = values[i]
		}
		matched = append(matched, row)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("final_state: %w", err)
	}

	if len(matched) != 1 {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("exactly one %s row where %v", a.Table, a.Where),
			Actual:   fmt.Sprintf("%d rows", len(matched)),
			Trace:    trace,
		}
	}

	row := matched[0]
	for _, key := range sortedKeys(a.Expect) {
		actual, ok := row[key]
		if !ok {
			return &AssertionError{
				Type:     a.Type,
				Expected: fmt.Sprintf("column %s.%s", a.Table, key),
				Actual:   fmt.Sprintf("columns %v", columns),
				Trace:    trace,
			}
		}
		if want, got := expectedDisplay(a.Expect[key]), engine.DisplayValue(actual); want != got {
			return &AssertionError{
				Type:     a.Type,
				Expected: fmt.Sprintf("%s.%s = %s", a.Table, key, want),
				Actual:   got,
				Trace:    trace,
			}
		}
	}
	return nil
}

func expectedDisplay(v any) string {
	if v == nil {
		return engine.NullDisplay
	}
	return cast.ToString(v)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
