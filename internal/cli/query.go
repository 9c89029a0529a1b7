package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mohdwajid07/SNQL-to-SQL-parser/internal/engine"
	"github.com/mohdwajid07/SNQL-to-SQL-parser/internal/querysql"
)

// QueryOptions holds flags for the query command.
type QueryOptions struct {
	*RootOptions
	MaxRows int

	// RequestIDs allows overriding the request ID generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	RequestIDs engine.RequestIDGenerator
}

// QueryResult is the JSON payload of the query command.
type QueryResult struct {
	Query     string            `json:"query"`
	SQL       string            `json:"sql,omitempty"`
	Columns   []string          `json:"columns,omitempty"`
	Rows      [][]any           `json:"rows,omitempty"`
	Truncated bool              `json:"truncated,omitempty"`
	Summary   *querysql.Summary `json:"summary,omitempty"`
}

// NewQueryCommand creates the query command.
func NewQueryCommand(rootOpts *RootOptions) *cobra.Command {
	return newQueryCommand(&QueryOptions{RootOptions: rootOpts})
}

func newQueryCommand(opts *QueryOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <snql>...",
		Short: "Translate an SNQL query and run it",
		Long: `Translate an SNQL query and run the SQL against the database.

The database is seeded from the dataset before the query runs. With the
default --db :memory: every invocation starts from the sample data.

Exit codes:
  0 - Query executed
  1 - Invalid SNQL syntax, or the SQL failed to execute
  2 - Command error (bad dataset, database unavailable, etc.)

Examples:
  snql query "get name, email from users order by name"
  snql query get count of id from users --format json
  snql query "get label from items" --dataset ./shop.cue`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(opts, strings.Join(args, " "), cmd)
		},
	}

	cmd.Flags().IntVar(&opts.MaxRows, "max-rows", engine.DefaultMaxRows, "maximum rows to read (0 for no limit)")

	return cmd
}

func runQuery(opts *QueryOptions, query string, cmd *cobra.Command) error {
	ctx := cmd.Context()

	st, err := openStore(ctx, opts.RootOptions)
	if err != nil {
		return err
	}
	defer closeStore(ctx, st)

	conn, err := st.Session(ctx)
	if err != nil {
		return WrapExitError(ExitCommandError, "database unavailable", err)
	}
	defer conn.Close()

	executorOpts := []engine.Option{engine.WithMaxRows(opts.MaxRows)}
	if opts.RequestIDs != nil {
		executorOpts = append(executorOpts, engine.WithRequestIDs(opts.RequestIDs))
	}
	out := engine.New(executorOpts...).Run(ctx, conn, query)

	f := opts.formatter(cmd)
	f.TraceID = out.RequestID
	f.VerboseLog("request %s took %s", out.RequestID, out.Duration)

	result := QueryResult{Query: query, SQL: out.SQL, Summary: out.Summary}
	if out.Result != nil {
		result.Columns = out.Result.Columns
		result.Rows = out.Result.Rows
		result.Truncated = out.Result.Truncated
	}

	switch {
	case out.SyntaxError:
		if err := f.Error(ErrCodeSyntax, out.Err.Error(), nil); err != nil {
			return err
		}
		return NewExitError(ExitFailure, out.Err.Error())
	case out.Err != nil:
		if !f.isJSON() {
			fmt.Fprintln(cmd.OutOrStdout(), out.SQL)
		}
		if err := f.ErrorWithData(ErrCodeExecution, out.Err.Error(), nil, result); err != nil {
			return err
		}
		return NewExitError(ExitFailure, out.Err.Error())
	}

	if f.isJSON() {
		return f.Success(result)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, out.SQL)
	fmt.Fprintln(w)
	if len(out.Result.Rows) == 0 {
		fmt.Fprintln(w, "Query executed successfully. No results to display.")
	} else {
		f.Table(out.Result.Columns, out.Result.DisplayRows())
		fmt.Fprintf(w, "(%s)\n", rowCount(len(out.Result.Rows), out.Result.Truncated))
	}
	writeSummary(w, out.Summary)
	return nil
}

func rowCount(n int, truncated bool) string {
	s := fmt.Sprintf("%d rows", n)
	if n == 1 {
		s = "1 row"
	}
	if truncated {
		s += ", truncated"
	}
	return s
}

func writeSummary(w io.Writer, s *querysql.Summary) {
	if s == nil {
		return
	}
	tables := "None detected"
	if len(s.Tables) > 0 {
		tables = strings.Join(s.Tables, ", ")
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Tables: %s\n", tables)
	fmt.Fprintf(w, "Columns Selected: %d\n", s.ColumnCount)
	fmt.Fprintf(w, "Conditions: %s\n", yesNo(s.HasConditions))
	fmt.Fprintf(w, "Joins: %s\n", yesNo(s.HasJoins))
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
