package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_SampleTables(t *testing.T) {
	ds, err := Default()
	require.NoError(t, err)

	assert.Equal(t, []string{"users", "orders"}, ds.TableNames())

	users, ok := ds.Table("users")
	require.True(t, ok)
	assert.Equal(t, []string{"id", "name", "email", "age", "department", "salary", "join_date"}, users.ColumnNames())
	require.Len(t, users.Rows, 5)
	assert.Equal(t, []any{1, "John Doe", "john@example.com", 28, "Engineering", 75000, "2020-01-15"}, users.Rows[0])
	assert.True(t, users.Columns[0].PrimaryKey)
	assert.Equal(t, TypeReal, users.Columns[5].Type)

	orders, ok := ds.Table("orders")
	require.True(t, ok)
	assert.Equal(t, []string{"id", "user_id", "amount", "order_date", "status"}, orders.ColumnNames())
	require.Len(t, orders.Rows, 7)
	assert.Equal(t, []any{7, 5, 300, "2023-03-15", "pending"}, orders.Rows[6])

	_, ok = ds.Table("products")
	assert.False(t, ok)
}

func TestLoad_EmptyPathIsDefault(t *testing.T) {
	ds, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, []string{"users", "orders"}, ds.TableNames())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shop.cue")
	src := `
tables: products: {
	columns: [
		{name: "id", type: "INTEGER", primary_key: true},
		{name: "title", type: "TEXT"},
		{name: "price", type: "REAL"},
	]
	rows: [
		[1, "lamp", 19.5],
		[2, "desk", null],
	]
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))

	ds, err := Load(path)
	require.NoError(t, err)

	products, ok := ds.Table("products")
	require.True(t, ok)
	assert.Equal(t, [][]any{{1, "lamp", 19.5}, {2, "desk", nil}}, products.Rows)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.cue"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		src     string
		wantMsg string
	}{
		{
			name:    "cue syntax",
			src:     `tables: {`,
			wantMsg: "cue",
		},
		{
			name: "unknown column type",
			src: `tables: t: {
	columns: [{name: "id", type: "BLOB"}]
	rows: []
}`,
			wantMsg: "cue",
		},
		{
			name: "no columns",
			src: `tables: t: {
	columns: []
	rows: []
}`,
			wantMsg: "cue",
		},
		{
			name: "row width",
			src: `tables: t: {
	columns: [{name: "id", type: "INTEGER"}, {name: "name", type: "TEXT"}]
	rows: [[1]]
}`,
			wantMsg: "row has 1 values, table has 2 columns",
		},
		{
			name: "cell type",
			src: `tables: t: {
	columns: [{name: "id", type: "INTEGER"}]
	rows: [["one"]]
}`,
			wantMsg: `column "id" is INTEGER, got string`,
		},
		{
			name: "duplicate column",
			src: `tables: t: {
	columns: [{name: "id", type: "INTEGER"}, {name: "id", type: "TEXT"}]
	rows: []
}`,
			wantMsg: `duplicate column "id"`,
		},
		{
			name:    "no tables",
			src:     `tables: {}`,
			wantMsg: "at least one table is required",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse("bad.cue", []byte(tc.src))
			require.Error(t, err)

			var loadErr *LoadError
			require.ErrorAs(t, err, &loadErr)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestAccepts(t *testing.T) {
	assert.True(t, accepts(TypeInteger, 1))
	assert.True(t, accepts(TypeReal, 1))
	assert.True(t, accepts(TypeReal, 1.5))
	assert.False(t, accepts(TypeInteger, 1.5))
	assert.True(t, accepts(TypeText, "x"))
	assert.False(t, accepts(TypeText, 1))
	assert.True(t, accepts(TypeText, nil))
	assert.False(t, accepts(TypeText, true))
}
