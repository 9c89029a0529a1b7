package harness

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strings"

	"github.com/mohdwajid07/SNQL-to-SQL-parser/internal/dataset"
	"github.com/mohdwajid07/SNQL-to-SQL-parser/internal/engine"
	"github.com/mohdwajid07/SNQL-to-SQL-parser/internal/store"
	"github.com/mohdwajid07/SNQL-to-SQL-parser/internal/testutil"
)

// SessionSource hands out store sessions. *store.Store implements it.
type SessionSource interface {
	Session(ctx context.Context) (*sql.Conn, error)
}

// RunFresh executes a scenario against its own in-memory store, seeded
// from the scenario dataset (or the embedded sample when none is set).
func RunFresh(ctx context.Context, scenario *Scenario) (*Result, error) {
	ds, err := dataset.Load(scenario.Dataset)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	st, err := store.Open(store.MemoryPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	if err := st.Seed(ctx, ds); err != nil {
		return nil, fmt.Errorf("failed to seed store: %w", err)
	}

	return Run(ctx, scenario, st)
}

// Run executes every step of a scenario on sessions from src, checks each
// step's expect clause, then evaluates the assertions.
//
// Returns an error only when the store itself is unusable. Syntax and
// execution errors are part of the trace.
func Run(ctx context.Context, scenario *Scenario, src SessionSource) (*Result, error) {
	executor := engine.New(
		engine.WithRequestIDs(testutil.NewConstantRequestID(scenario.RequestID)),
	)

	result := NewResult()
	for i, step := range scenario.Steps {
		event, err := runStep(ctx, executor, src, i+1, step.Query)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		result.AddStep(event)

		for _, msg := range checkExpect(event, step.Expect) {
			result.AddError(fmt.Sprintf("step %d: %s", i+1, msg))
		}
	}

	for _, err := range EvaluateAssertions(ctx, result, scenario.Assertions, src) {
		result.AddError(err.Error())
	}

	return result, nil
}

func runStep(ctx context.Context, executor *engine.Executor, src SessionSource, n int, query string) (TraceEvent, error) {
	conn, err := src.Session(ctx)
	if err != nil {
		return TraceEvent{}, err
	}
	defer conn.Close()

	out := executor.Run(ctx, conn, query)
	event := TraceEvent{
		Step:        n,
		RequestID:   out.RequestID,
		Query:       query,
		SQL:         out.SQL,
		SyntaxError: out.SyntaxError,
	}
	if out.Err != nil {
		event.Error = out.Err.Error()
	}
	if out.Result != nil {
		event.Columns = out.Result.Columns
		event.Rows = out.Result.DisplayRows()
	}
	if out.Summary != nil {
		event.Tables = out.Summary.Tables
	}
	return event, nil
}

// checkExpect returns one message per mismatch between event and expect.
func checkExpect(event TraceEvent, expect *Expect) []string {
	var errs []string

	if expect == nil {
		// Without an expect clause only execution errors fail the step
		if event.Error != "" && !event.SyntaxError {
			errs = append(errs, fmt.Sprintf("unexpected execution error: %s", event.Error))
		}
		return errs
	}

	switch {
	case expect.SyntaxError && !event.SyntaxError:
		errs = append(errs, fmt.Sprintf("expected syntax error, got SQL %q", event.SQL))
	case !expect.SyntaxError && event.SyntaxError:
		errs = append(errs, "unexpected syntax error")
	}

	if expect.SQL != "" && expect.SQL != event.SQL {
		errs = append(errs, fmt.Sprintf("sql: expected %q, got %q", expect.SQL, event.SQL))
	}

	switch {
	case expect.Error != "" && !strings.Contains(event.Error, expect.Error):
		errs = append(errs, fmt.Sprintf("error: expected text containing %q, got %q", expect.Error, event.Error))
	case expect.Error == "" && event.Error != "" && !event.SyntaxError:
		errs = append(errs, fmt.Sprintf("unexpected execution error: %s", event.Error))
	}

	if expect.Columns != nil && !slices.Equal(expect.Columns, event.Columns) {
		errs = append(errs, fmt.Sprintf("columns: expected %v, got %v", expect.Columns, event.Columns))
	}

	if expect.Rows != nil && !rowsEqual(expect.Rows, event.Rows) {
		errs = append(errs, fmt.Sprintf("rows: expected %v, got %v", expect.Rows, event.Rows))
	}

	if expect.RowCount != nil && *expect.RowCount != len(event.Rows) {
		errs = append(errs, fmt.Sprintf("row_count: expected %d, got %d", *expect.RowCount, len(event.Rows)))
	}

	if expect.Tables != nil && !slices.Equal(expect.Tables, event.Tables) {
		errs = append(errs, fmt.Sprintf("tables: expected %v, got %v", expect.Tables, event.Tables))
	}

	return errs
}

func rowsEqual(a, b [][]string) bool {
	return slices.EqualFunc(a, b, func(x, y []string) bool {
		return slices.Equal(x, y)
	})
}
