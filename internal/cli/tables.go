package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// TableInfo describes one table of the database.
type TableInfo struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
}

// NewTablesCommand creates the tables command.
func NewTablesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "List the tables and columns available to queries",
		Long: `List the tables and columns of the database after seeding.

Examples:
  snql tables
  snql tables --dataset ./shop.cue --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listTables(rootOpts, cmd)
		},
	}
}

func listTables(opts *RootOptions, cmd *cobra.Command) error {
	ctx := cmd.Context()

	st, err := openStore(ctx, opts)
	if err != nil {
		return err
	}
	defer closeStore(ctx, st)

	names, err := st.Tables(ctx)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list tables", err)
	}

	tables := make([]TableInfo, 0, len(names))
	for _, name := range names {
		cols, err := st.Columns(ctx, name)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to list columns of "+name, err)
		}
		tables = append(tables, TableInfo{Name: name, Columns: cols})
	}

	f := opts.formatter(cmd)
	if f.isJSON() {
		return f.Success(tables)
	}

	rows := make([][]string, len(tables))
	for i, t := range tables {
		rows[i] = []string{t.Name, strings.Join(t.Columns, ", ")}
	}
	f.Table([]string{"TABLE", "COLUMNS"}, rows)
	return nil
}
