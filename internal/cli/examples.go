package cli

import (
	"github.com/spf13/cobra"

	"github.com/mohdwajid07/SNQL-to-SQL-parser/internal/snql"
)

// ExampleInfo is one example query with its translation.
type ExampleInfo struct {
	Label string `json:"label"`
	Query string `json:"query"`
	SQL   string `json:"sql"`
}

// NewExamplesCommand creates the examples command.
func NewExamplesCommand(rootOpts *RootOptions) *cobra.Command {
	var showSQL bool

	cmd := &cobra.Command{
		Use:   "examples",
		Short: "Show example SNQL queries",
		Long: `Show the built-in example queries.

Examples:
  snql examples
  snql examples --sql
  snql examples --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listExamples(rootOpts, showSQL, cmd)
		},
	}

	cmd.Flags().BoolVar(&showSQL, "sql", false, "also show the translated SQL")

	return cmd
}

func listExamples(opts *RootOptions, showSQL bool, cmd *cobra.Command) error {
	examples := snql.Examples()
	infos := make([]ExampleInfo, len(examples))
	for i, ex := range examples {
		sql, err := snql.Translate(ex.Query)
		if err != nil {
			return WrapExitError(ExitCommandError, "example "+ex.Label+" does not translate", err)
		}
		infos[i] = ExampleInfo{Label: ex.Label, Query: ex.Query, SQL: sql}
	}

	f := opts.formatter(cmd)
	if f.isJSON() {
		return f.Success(infos)
	}

	header := []string{"EXAMPLE", "QUERY"}
	if showSQL {
		header = append(header, "SQL")
	}
	rows := make([][]string, len(infos))
	for i, info := range infos {
		row := []string{info.Label, info.Query}
		if showSQL {
			row = append(row, info.SQL)
		}
		rows[i] = row
	}
	f.Table(header, rows)
	return nil
}
