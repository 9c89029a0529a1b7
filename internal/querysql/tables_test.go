package querysql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTables(t *testing.T) {
	testCases := []struct {
		name string
		sql  string
		want []string
	}{
		{
			name: "single table",
			sql:  "SELECT name FROM users;",
			want: []string{"users"},
		},
		{
			name: "join",
			sql:  "SELECT * FROM users JOIN orders ON users.id = orders.user_id;",
			want: []string{"orders", "users"},
		},
		{
			name: "duplicates collapse",
			sql:  "SELECT * FROM users JOIN orders ON users.id = orders.user_id LEFT JOIN orders ON 1 = 1;",
			want: []string{"orders", "users"},
		},
		{
			name: "case insensitive",
			sql:  "select * from users left join orders on users.id = orders.user_id",
			want: []string{"orders", "users"},
		},
		{
			name: "no tables",
			sql:  "SELECT 1;",
			want: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractTables(tc.sql))
		})
	}
}

func TestExtractTables_SetSemantics(t *testing.T) {
	tables := ExtractTables("SELECT * FROM users JOIN orders ON users.id = orders.user_id;")
	assert.ElementsMatch(t, []string{"users", "orders"}, tables)
}

func TestSummarize(t *testing.T) {
	s := Summarize("SELECT users.name FROM users JOIN orders ON users.id = orders.user_id WHERE orders.amount > 100;", 1)
	assert.Equal(t, []string{"orders", "users"}, s.Tables)
	assert.Equal(t, 1, s.ColumnCount)
	assert.True(t, s.HasConditions)
	assert.True(t, s.HasJoins)

	plain := Summarize("SELECT name, email FROM users;", 2)
	assert.Equal(t, []string{"users"}, plain.Tables)
	assert.Equal(t, 2, plain.ColumnCount)
	assert.False(t, plain.HasConditions)
	assert.False(t, plain.HasJoins)
}
