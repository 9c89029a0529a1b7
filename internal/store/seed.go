package store

import (
	"context"
	"fmt"

	"github.com/huandu/go-sqlbuilder"
	"github.com/rs/zerolog/log"

	"github.com/mohdwajid07/SNQL-to-SQL-parser/internal/dataset"
)

// statement is one built SQL statement with its bound arguments.
type statement struct {
	sql  string
	args []any
}

// Seed writes the dataset into the store. For every table, in order:
//
//	CREATE TABLE IF NOT EXISTS <table> (...)
//	DELETE FROM <table>
//	INSERT INTO <table> (...) VALUES (...), ...
//
// All statements run in one transaction; on error nothing is changed.
func (s *Store) Seed(ctx context.Context, ds *dataset.Dataset) error {
	if ds == nil {
		return fmt.Errorf("seed: dataset is nil")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed: begin: %w", err)
	}
	defer tx.Rollback()

	rows := 0
	for _, table := range ds.Tables {
		for _, stmt := range seedStatements(table) {
			if _, err := tx.ExecContext(ctx, stmt.sql, stmt.args...); err != nil {
				return fmt.Errorf("seed table %s: %w", table.Name, err)
			}
		}
		rows += len(table.Rows)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed: commit: %w", err)
	}

	log.Ctx(ctx).Debug().
		Str("path", s.path).
		Int("tables", len(ds.Tables)).
		Int("rows", rows).
		Msg("sample data seeded")
	return nil
}

// seedStatements builds the create, reset and insert statements for one
// table. The insert is omitted for a table without rows.
func seedStatements(t dataset.Table) []statement {
	ctb := sqlbuilder.SQLite.NewCreateTableBuilder()
	ctb.CreateTable(t.Name).IfNotExists()
	for _, c := range t.Columns {
		def := []string{c.Name, string(c.Type)}
		if c.PrimaryKey {
			def = append(def, "PRIMARY KEY")
		}
		ctb.Define(def...)
	}
	createSQL, createArgs := ctb.Build()

	del := sqlbuilder.SQLite.NewDeleteBuilder()
	del.DeleteFrom(t.Name)
	deleteSQL, deleteArgs := del.Build()

	stmts := []statement{
		{sql: createSQL, args: createArgs},
		{sql: deleteSQL, args: deleteArgs},
	}

	if len(t.Rows) == 0 {
		return stmts
	}

	ib := sqlbuilder.SQLite.NewInsertBuilder()
	ib.InsertInto(t.Name).Cols(t.ColumnNames()...)
	for _, row := range t.Rows {
		ib.Values(row...)
	}
	insertSQL, insertArgs := ib.Build()

	return append(stmts, statement{sql: insertSQL, args: insertArgs})
}
