package dataset

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
)

//go:embed schema.cue
var schemaSource []byte

//go:embed sample.cue
var sampleSource []byte

// LoadError describes a dataset that could not be loaded, with the CUE
// source position when one is known.
type LoadError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Default returns the embedded sample dataset: users and orders.
func Default() (*Dataset, error) {
	return Parse("sample.cue", sampleSource)
}

// Load reads and parses a dataset file. An empty path loads the embedded
// sample.
func Load(path string) (*Dataset, error) {
	if path == "" {
		return Default()
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return Parse(path, src)
}

// Parse compiles CUE source, validates it against the dataset schema and
// decodes it. filename is used in error positions only.
func Parse(filename string, src []byte) (*Dataset, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compile dataset schema: %w", err)
	}

	data := ctx.CompileBytes(src, cue.Filename(filename))
	if err := data.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	v := schema.LookupPath(cue.ParsePath("#Dataset")).Unify(data)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, formatCUEError(err)
	}

	tablesVal := v.LookupPath(cue.ParsePath("tables"))
	iter, err := tablesVal.Fields()
	if err != nil {
		return nil, formatCUEError(err)
	}

	ds := &Dataset{}
	for iter.Next() {
		table, err := decodeTable(iter.Label(), iter.Value())
		if err != nil {
			return nil, err
		}
		ds.Tables = append(ds.Tables, table)
	}

	if len(ds.Tables) == 0 {
		return nil, &LoadError{Field: "tables", Message: "at least one table is required", Pos: tablesVal.Pos()}
	}
	return ds, nil
}

func decodeTable(name string, v cue.Value) (Table, error) {
	table := Table{Name: name}

	if err := v.LookupPath(cue.ParsePath("columns")).Decode(&table.Columns); err != nil {
		return Table{}, formatCUEError(err)
	}

	seen := make(map[string]bool, len(table.Columns))
	for _, c := range table.Columns {
		if seen[c.Name] {
			return Table{}, &LoadError{
				Field:   "tables." + name + ".columns",
				Message: fmt.Sprintf("duplicate column %q", c.Name),
				Pos:     v.Pos(),
			}
		}
		seen[c.Name] = true
	}

	rowsVal := v.LookupPath(cue.ParsePath("rows"))
	if err := rowsVal.Decode(&table.Rows); err != nil {
		return Table{}, formatCUEError(err)
	}

	for i, row := range table.Rows {
		field := fmt.Sprintf("tables.%s.rows[%d]", name, i)
		if len(row) != len(table.Columns) {
			return Table{}, &LoadError{
				Field:   field,
				Message: fmt.Sprintf("row has %d values, table has %d columns", len(row), len(table.Columns)),
				Pos:     rowsVal.Pos(),
			}
		}
		for j, cell := range row {
			if !accepts(table.Columns[j].Type, cell) {
				return Table{}, &LoadError{
					Field:   field,
					Message: fmt.Sprintf("column %q is %s, got %T", table.Columns[j].Name, table.Columns[j].Type, cell),
					Pos:     rowsVal.Pos(),
				}
			}
		}
	}

	return table, nil
}

// accepts reports whether a decoded cell fits the column's storage class.
// NULL fits every column.
func accepts(t ColumnType, cell any) bool {
	switch cell.(type) {
	case nil:
		return true
	case int, int64:
		return t == TypeInteger || t == TypeReal
	case float64:
		return t == TypeReal
	case string:
		return t == TypeText
	}
	return false
}

// formatCUEError extracts the first error and its position from a CUE
// error list.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	first := errs[0]
	if positions := errors.Positions(first); len(positions) > 0 {
		return &LoadError{
			Field:   "cue",
			Message: first.Error(),
			Pos:     positions[0],
		}
	}
	return &LoadError{Field: "cue", Message: first.Error()}
}
