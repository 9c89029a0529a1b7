package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mohdwajid07/SNQL-to-SQL-parser/internal/querysql"
	"github.com/mohdwajid07/SNQL-to-SQL-parser/internal/snql"
)

// TranslateOptions holds flags for the translate command.
type TranslateOptions struct {
	*RootOptions
	Explain bool // print the parsed clauses as well
}

// TranslateResult is the JSON payload of the translate command.
type TranslateResult struct {
	Query  string         `json:"query"`
	SQL    string         `json:"sql"`
	Tables []string       `json:"tables"`
	Parsed *ParsedClauses `json:"parsed,omitempty"`
}

// ParsedClauses shows how the translator segmented a query.
type ParsedClauses struct {
	Table   string   `json:"table"`
	Fields  []string `json:"fields"`
	Joins   []string `json:"joins,omitempty"`
	Where   string   `json:"where,omitempty"`
	GroupBy string   `json:"group_by,omitempty"`
	Having  string   `json:"having,omitempty"`
	OrderBy string   `json:"order_by,omitempty"`
	Limit   string   `json:"limit,omitempty"`
}

// NewTranslateCommand creates the translate command.
func NewTranslateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TranslateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "translate <snql>...",
		Short: "Translate an SNQL query into SQL",
		Long: `Translate an SNQL query into SQL without executing it.

Arguments are joined with single spaces, so the query may be quoted
or not.

Exit codes:
  0 - Query translated
  1 - Invalid SNQL syntax

Examples:
  snql translate "get name from users where age is greater than 25"
  snql translate get count of id from users --explain
  snql translate "get name from users" --format json`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(opts, strings.Join(args, " "), cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Explain, "explain", false, "show the parsed clauses")

	return cmd
}

func runTranslate(opts *TranslateOptions, query string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	sql, err := snql.Translate(query)
	if err != nil {
		if snql.IsSyntaxError(err) {
			if ferr := f.Error(ErrCodeSyntax, err.Error(), nil); ferr != nil {
				return ferr
			}
			return NewExitError(ExitFailure, err.Error())
		}
		return WrapExitError(ExitCommandError, "translation failed", err)
	}

	result := TranslateResult{
		Query:  query,
		SQL:    sql,
		Tables: querysql.ExtractTables(sql),
	}
	if opts.Explain {
		parsed, err := explain(query)
		if err != nil {
			return WrapExitError(ExitCommandError, "parse failed", err)
		}
		result.Parsed = parsed
	}

	if f.isJSON() {
		return f.Success(result)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, sql)
	if p := result.Parsed; p != nil {
		rows := [][]string{
			{"table", p.Table},
			{"fields", strings.Join(p.Fields, ", ")},
		}
		for _, j := range p.Joins {
			rows = append(rows, []string{"join", j})
		}
		for _, c := range [][2]string{
			{"where", p.Where},
			{"group by", p.GroupBy},
			{"having", p.Having},
			{"order by", p.OrderBy},
			{"limit", p.Limit},
		} {
			if c[1] != "" {
				rows = append(rows, []string{c[0], c[1]})
			}
		}
		f.Table([]string{"CLAUSE", "VALUE"}, rows)
	}
	return nil
}

func explain(query string) (*ParsedClauses, error) {
	q, err := snql.Parse(query)
	if err != nil {
		return nil, err
	}

	p := &ParsedClauses{
		Table:   q.Table,
		Where:   q.Where,
		GroupBy: q.GroupBy,
		Having:  q.Having,
		Limit:   q.Limit,
	}
	for _, field := range q.Fields {
		p.Fields = append(p.Fields, field.String())
	}
	for _, j := range q.Joins {
		p.Joins = append(p.Joins, j.String())
	}
	if q.OrderBy != nil {
		p.OrderBy = fmt.Sprintf("%s %s", q.OrderBy.Fields, q.OrderBy.Direction)
	}
	return p, nil
}
