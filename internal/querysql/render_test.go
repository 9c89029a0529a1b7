package querysql

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohdwajid07/SNQL-to-SQL-parser/internal/queryir"
)

func TestRender_SimpleSelect(t *testing.T) {
	q := &queryir.Query{
		Table:  "users",
		Fields: []queryir.Field{{Name: "name"}, {Name: "email"}},
	}

	sql, err := Render(q)
	require.NoError(t, err)
	assert.Equal(t, "SELECT name, email FROM users;", sql)
}

func TestRender_AllClauses(t *testing.T) {
	q := &queryir.Query{
		Table: "users",
		Fields: []queryir.Field{
			{Name: "users.name"},
			{Name: "orders.amount", Aggregate: queryir.AggregateSum},
		},
		Joins: []queryir.Join{
			{Kind: queryir.JoinLeft, Table: "orders", Condition: "users.id = orders.user_id"},
		},
		Where:   "users.age > 20",
		GroupBy: "users.id",
		Having:  "SUM(orders.amount) > 100",
		OrderBy: &queryir.OrderBy{Fields: "SUM(orders.amount)", Direction: queryir.Descending},
		Limit:   "3",
	}

	sql, err := Render(q)
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT users.name, SUM(orders.amount) FROM users"+
			" LEFT JOIN orders ON users.id = orders.user_id"+
			" WHERE users.age > 20"+
			" GROUP BY users.id"+
			" HAVING SUM(orders.amount) > 100"+
			" ORDER BY SUM(orders.amount) DESC"+
			" LIMIT 3;",
		sql)
}

func TestRender_CanonicalClauseOrder(t *testing.T) {
	q := &queryir.Query{
		Table:   "t",
		Fields:  []queryir.Field{{Name: "a"}},
		Joins:   []queryir.Join{{Kind: queryir.JoinPlain, Table: "u", Condition: "t.id = u.id"}},
		Where:   "a > 1",
		GroupBy: "a",
		Having:  "a < 9",
		OrderBy: &queryir.OrderBy{Fields: "a", Direction: queryir.Ascending},
		Limit:   "1",
	}

	sql, err := Render(q)
	require.NoError(t, err)

	keywords := []string{"SELECT", "FROM", "JOIN", "WHERE", "GROUP BY", "HAVING", "ORDER BY", "LIMIT"}
	last := -1
	for _, kw := range keywords {
		pos := strings.Index(sql, kw)
		require.GreaterOrEqual(t, pos, 0, "missing %s in %s", kw, sql)
		assert.Greater(t, pos, last, "%s out of order in %s", kw, sql)
		last = pos
	}
	assert.True(t, strings.HasSuffix(sql, ";"))
}

func TestRender_MultipleJoinsInOrder(t *testing.T) {
	q := &queryir.Query{
		Table:  "a",
		Fields: []queryir.Field{{Name: "*"}},
		Joins: []queryir.Join{
			{Kind: queryir.JoinInner, Table: "b", Condition: "a.id = b.a_id"},
			{Kind: queryir.JoinRight, Table: "c", Condition: "b.id = c.b_id"},
			{Kind: queryir.JoinOuter, Table: "d", Condition: "c.id = d.c_id"},
		},
	}

	sql, err := Render(q)
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT * FROM a INNER JOIN b ON a.id = b.a_id RIGHT JOIN c ON b.id = c.b_id OUTER JOIN d ON c.id = d.c_id;",
		sql)
}

func TestRender_OmitsAbsentClauses(t *testing.T) {
	q := &queryir.Query{
		Table:   "users",
		Fields:  []queryir.Field{{Name: "id", Aggregate: queryir.AggregateCount}},
		OrderBy: nil,
	}

	sql, err := Render(q)
	require.NoError(t, err)
	assert.Equal(t, "SELECT COUNT(id) FROM users;", sql)
	for _, kw := range []string{"JOIN", "WHERE", "GROUP BY", "HAVING", "ORDER BY", "LIMIT"} {
		assert.NotContains(t, sql, kw)
	}
}

func TestRender_InvalidQuery(t *testing.T) {
	_, err := Render(&queryir.Query{Fields: []queryir.Field{{Name: "a"}}})
	require.Error(t, err)
	assert.True(t, queryir.IsValidationError(err))

	_, err = Render(nil)
	require.Error(t, err)
}

func TestRender_Deterministic(t *testing.T) {
	q := &queryir.Query{
		Table:   "users",
		Fields:  []queryir.Field{{Name: "name"}, {Name: "age", Aggregate: queryir.AggregateMax}},
		GroupBy: "name",
	}

	first, err := Render(q)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Render(q)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
