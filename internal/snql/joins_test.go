package snql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohdwajid07/SNQL-to-SQL-parser/internal/queryir"
)

func parseJoins(t *testing.T, query string) []queryir.Join {
	t.Helper()
	seg, err := Segment(query)
	require.NoError(t, err)
	return ParseJoins(seg)
}

func TestParseJoins_EachKind(t *testing.T) {
	testCases := []struct {
		phrase string
		kind   queryir.JoinKind
	}{
		{"join", queryir.JoinPlain},
		{"left join", queryir.JoinLeft},
		{"right join", queryir.JoinRight},
		{"inner join", queryir.JoinInner},
		{"outer join", queryir.JoinOuter},
		{"LEFT JOIN", queryir.JoinLeft},
	}

	for _, tc := range testCases {
		t.Run(tc.phrase, func(t *testing.T) {
			joins := parseJoins(t, "get * from users "+tc.phrase+" orders on users.id = orders.user_id")
			require.Len(t, joins, 1)
			assert.Equal(t, queryir.Join{
				Kind:      tc.kind,
				Table:     "orders",
				Condition: "users.id = orders.user_id",
			}, joins[0])
		})
	}
}

func TestParseJoins_SourceOrder(t *testing.T) {
	joins := parseJoins(t, "get * from a right join b on a.id = b.a_id join c on b.id = c.b_id left join d on c.id = d.c_id where a.x is greater than 1")
	require.Len(t, joins, 3)

	assert.Equal(t, queryir.JoinRight, joins[0].Kind)
	assert.Equal(t, "b", joins[0].Table)
	assert.Equal(t, "a.id = b.a_id", joins[0].Condition)

	assert.Equal(t, queryir.JoinPlain, joins[1].Kind)
	assert.Equal(t, "c", joins[1].Table)
	assert.Equal(t, "b.id = c.b_id", joins[1].Condition)

	assert.Equal(t, queryir.JoinLeft, joins[2].Kind)
	assert.Equal(t, "d", joins[2].Table)
	assert.Equal(t, "c.id = d.c_id", joins[2].Condition, "condition must stop before where")
}

func TestParseJoins_ConditionBoundaries(t *testing.T) {
	terminals := []string{"where a is null", "group by a", "order by a", "limit 4"}

	for _, terminal := range terminals {
		t.Run(terminal, func(t *testing.T) {
			joins := parseJoins(t, "get * from a join b on a.id = b.id "+terminal)
			require.Len(t, joins, 1)
			assert.Equal(t, "a.id = b.id", joins[0].Condition)
		})
	}
}

func TestParseJoins_WithoutOnIsDropped(t *testing.T) {
	joins := parseJoins(t, "get * from a join b where x is null")
	assert.Empty(t, joins)
}

func TestParseJoins_None(t *testing.T) {
	assert.Empty(t, parseJoins(t, "get name from users"))
}
