package engine

import (
	"context"
	"database/sql"
	"time"

	"github.com/rs/zerolog/log"
)

// Session is the store handle one execution runs on. *sql.Conn, *sql.DB
// and *sql.Tx all satisfy it.
type Session interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// DefaultMaxRows caps the rows read from a single result.
const DefaultMaxRows = 10000

// Executor runs SQL on an injected session.
//
// Thread-safety: Executor holds no mutable state after construction and is
// safe for concurrent use, provided each goroutine uses its own session.
type Executor struct {
	ids     RequestIDGenerator
	maxRows int
	now     func() time.Time
}

// Option configures an Executor.
type Option func(*Executor)

// WithRequestIDs sets the request ID generator. Default: UUIDv7Generator.
func WithRequestIDs(g RequestIDGenerator) Option {
	return func(e *Executor) {
		e.ids = g
	}
}

// WithMaxRows caps the number of rows read per statement. Rows past the cap
// are discarded and the Result is marked Truncated. A value <= 0 removes
// the cap.
func WithMaxRows(n int) Option {
	return func(e *Executor) {
		e.maxRows = n
	}
}

// WithClock overrides the time source used to measure durations.
// Default: time.Now.
func WithClock(now func() time.Time) Option {
	return func(e *Executor) {
		e.now = now
	}
}

// New creates an Executor.
func New(opts ...Option) *Executor {
	e := &Executor{
		ids:     UUIDv7Generator{},
		maxRows: DefaultMaxRows,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute runs one SQL statement on session and reads every row.
//
// Returns *ExecutionError on any store failure. The statement is passed to
// the store unchanged and without bound arguments.
func (e *Executor) Execute(ctx context.Context, session Session, query string) (*Result, error) {
	logger := log.Ctx(ctx)
	start := e.now()

	rows, err := session.QueryContext(ctx, query)
	if err != nil {
		logger.Debug().Err(err).Str("sql", query).Msg("execution failed")
		return nil, newExecutionError(query, err)
	}
	defer rows.Close()

	result, err := e.readRows(rows)
	if err != nil {
		logger.Debug().Err(err).Str("sql", query).Msg("reading rows failed")
		return nil, newExecutionError(query, err)
	}

	logger.Debug().
		Str("sql", query).
		Int("columns", len(result.Columns)).
		Int("rows", len(result.Rows)).
		Bool("truncated", result.Truncated).
		Dur("duration", e.now().Sub(start)).
		Msg("statement executed")
	return result, nil
}

func (e *Executor) readRows(rows *sql.Rows) (*Result, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	result := &Result{Columns: cols, Rows: [][]any{}}
	for rows.Next() {
		if e.maxRows > 0 && len(result.Rows) >= e.maxRows {
			result.Truncated = true
			break
		}

		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		for i, v := range values {
			// BLOB values arrive as []byte.
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		result.Rows = append(result.Rows, values)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
