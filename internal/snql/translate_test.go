package snql

import (
	"fmt"
	"sync"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohdwajid07/SNQL-to-SQL-parser/internal/queryir"
)

func TestTranslate_Scenarios(t *testing.T) {
	testCases := []struct {
		name  string
		query string
		want  string
	}{
		{
			name:  "filter sort limit",
			query: "get name, email from users where age is greater than 25 order by name limit 5",
			want:  "SELECT name, email FROM users WHERE age > 25 ORDER BY name ASC LIMIT 5;",
		},
		{
			name:  "count with filter",
			query: "get count of id from users where age is greater than 30",
			want:  "SELECT COUNT(id) FROM users WHERE age > 30;",
		},
		{
			name:  "plain join",
			query: "get users.name, orders.amount from users join orders on users.id = orders.user_id",
			want:  "SELECT users.name, orders.amount FROM users JOIN orders ON users.id = orders.user_id;",
		},
		{
			name:  "group statistics",
			query: `get count of id, avg of salary from users where department is equal to "Engineering" group by department`,
			want:  `SELECT COUNT(id), AVG(salary) FROM users WHERE department = "Engineering" GROUP BY department;`,
		},
		{
			name:  "clauses out of order",
			query: "get name from users limit 2 order by name desc where age is less than 40",
			want:  "SELECT name FROM users WHERE age < 40 ORDER BY name DESC LIMIT 2;",
		},
		{
			name:  "left join then join",
			query: "get * from a left join b on a.id = b.a_id join c on b.id = c.b_id",
			want:  "SELECT * FROM a LEFT JOIN b ON a.id = b.a_id JOIN c ON b.id = c.b_id;",
		},
		{
			name:  "having",
			query: "get department, count of id from users group by department having total is greater than 1",
			want:  "SELECT department, COUNT(id) FROM users GROUP BY department HAVING total > 1;",
		},
		{
			name:  "uppercase keywords",
			query: "GET Name FROM Users WHERE Age IS GREATER THAN 5",
			want:  "SELECT Name FROM Users WHERE Age > 5;",
		},
		{
			name:  "quoted keyword in like",
			query: `get name from users where name like "%join%"`,
			want:  "SELECT name FROM users WHERE name LIKE '%join%';",
		},
		{
			name:  "limit beyond uint64 kept verbatim",
			query: "get name from users limit 99999999999999999999999",
			want:  "SELECT name FROM users LIMIT 99999999999999999999999;",
		},
		{
			name:  "invalid limit dropped",
			query: "get name from users limit many",
			want:  "SELECT name FROM users;",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Translate(tc.query)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTranslate_SyntaxError(t *testing.T) {
	sql, err := Translate("hello world")
	require.Error(t, err)
	assert.Empty(t, sql)
	assert.True(t, IsSyntaxError(err))
	assert.Equal(t, "Invalid SNQL syntax", err.Error())

	var se *SyntaxError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "hello world", se.Query)
}

func TestTranslate_WrappedSyntaxError(t *testing.T) {
	_, err := Translate("select * from users")
	wrapped := fmt.Errorf("translate: %w", err)
	assert.True(t, IsSyntaxError(wrapped))
	assert.False(t, IsSyntaxError(fmt.Errorf("other")))
}

func TestTranslate_Deterministic(t *testing.T) {
	query := "get users.name, sum of orders.amount from users left join orders on users.id = orders.user_id group by users.id order by sum of orders.amount desc limit 3"

	first, err := Translate(query)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Translate(query)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestTranslate_ConcurrentCalls(t *testing.T) {
	examples := Examples()
	want := make([]string, len(examples))
	for i, ex := range examples {
		sql, err := Translate(ex.Query)
		require.NoError(t, err)
		want[i] = sql
	}

	var wg sync.WaitGroup
	results := make([][]string, 8)
	for w := range results {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			got := make([]string, len(examples))
			for i, ex := range examples {
				got[i], _ = Translate(ex.Query)
			}
			results[w] = got
		}(w)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestParse_BuildsQuery(t *testing.T) {
	q, err := Parse("get name, count of id from users inner join orders on users.id = orders.user_id where age is greater than 18 group by name having total is less than 5 order by name desc limit 10")
	require.NoError(t, err)

	assert.Equal(t, &queryir.Query{
		Table: "users",
		Fields: []queryir.Field{
			{Name: "name"},
			{Name: "id", Aggregate: queryir.AggregateCount},
		},
		Joins: []queryir.Join{
			{Kind: queryir.JoinInner, Table: "orders", Condition: "users.id = orders.user_id"},
		},
		Where:   "age > 18",
		GroupBy: "name",
		Having:  "total < 5",
		OrderBy: &queryir.OrderBy{Fields: "name", Direction: queryir.Descending},
		Limit:   "10",
	}, q)
}

func TestParse_AbsentClauses(t *testing.T) {
	q, err := Parse("get name from users")
	require.NoError(t, err)

	assert.Empty(t, q.Joins)
	assert.Empty(t, q.Where)
	assert.Empty(t, q.GroupBy)
	assert.Empty(t, q.Having)
	assert.Nil(t, q.OrderBy)
	assert.Empty(t, q.Limit)
}

// TestExamples_Golden pins the SQL produced for every built-in example.
//
// To regenerate golden files, run:
//
//	go test ./internal/snql -run TestExamples_Golden -update
func TestExamples_Golden(t *testing.T) {
	names := []string{
		"basic_select",
		"count_records",
		"join_tables",
		"aggregate_functions",
		"filter_sort_limit",
		"join_with_condition",
		"group_statistics",
		"top_spenders",
	}

	examples := Examples()
	require.Len(t, examples, len(names))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	for i, ex := range examples {
		t.Run(names[i], func(t *testing.T) {
			sql, err := Translate(ex.Query)
			require.NoError(t, err)
			g.Assert(t, names[i], []byte(sql+"\n"))
		})
	}
}

func TestExamples_FreshSlice(t *testing.T) {
	first := Examples()
	first[0].Query = "changed"
	assert.NotEqual(t, "changed", Examples()[0].Query)
}
