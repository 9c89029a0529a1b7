package engine

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mohdwajid07/SNQL-to-SQL-parser/internal/querysql"
	"github.com/mohdwajid07/SNQL-to-SQL-parser/internal/snql"
)

// Outcome is everything known about one submitted query.
//
// Exactly one of these holds:
//   - SyntaxError is true and Err is a *snql.SyntaxError; SQL is empty
//   - SQL is set and Err is an *ExecutionError; Result is nil
//   - SQL is set, Result is set and Err is nil
type Outcome struct {
	RequestID   string
	Query       string
	SQL         string
	SyntaxError bool
	Result      *Result
	Err         error

	// Summary is set whenever SQL was produced.
	Summary *querysql.Summary

	Duration time.Duration
}

// Failed reports whether the query could not be translated or executed.
func (o *Outcome) Failed() bool {
	return o.Err != nil
}

// DisplaySQL returns the SQL, or the syntax error message when the query
// could not be translated.
func (o *Outcome) DisplaySQL() string {
	if o.SyntaxError {
		return o.Err.Error()
	}
	return o.SQL
}

// ErrorMessage returns the execution error text, or "" if there was none.
// Syntax errors are reported through DisplaySQL instead.
func (o *Outcome) ErrorMessage() string {
	if o.Err == nil || o.SyntaxError {
		return ""
	}
	return o.Err.Error()
}

// Run translates an SNQL query and, if translation succeeds, executes the
// SQL on session.
//
// Run never returns an error: failures are recorded on the Outcome so
// callers can tell "could not translate" from "translated but failed to
// execute".
func (e *Executor) Run(ctx context.Context, session Session, query string) *Outcome {
	start := e.now()
	out := &Outcome{
		RequestID: e.ids.Generate(),
		Query:     query,
	}

	logger := log.Ctx(ctx).With().Str("request_id", out.RequestID).Logger()
	ctx = logger.WithContext(ctx)

	sql, err := snql.Translate(query)
	if err != nil {
		out.Err = err
		out.SyntaxError = snql.IsSyntaxError(err)
		out.Duration = e.now().Sub(start)
		logger.Info().
			Str("query", query).
			Bool("syntax_error", out.SyntaxError).
			Msg("query not translated")
		return out
	}
	out.SQL = sql

	columns := 0
	result, err := e.Execute(ctx, session, sql)
	if err != nil {
		out.Err = err
	} else {
		out.Result = result
		columns = len(result.Columns)
	}

	summary := querysql.Summarize(sql, columns)
	out.Summary = &summary
	out.Duration = e.now().Sub(start)

	event := logger.Info()
	if out.Err != nil {
		event = logger.Warn().Err(out.Err)
	}
	event.
		Str("sql", sql).
		Strs("tables", summary.Tables).
		Dur("duration", out.Duration).
		Msg("query handled")
	return out
}
