package snql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslateCondition(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want string
	}{
		{"greater than", "age is greater than 25", "age > 25"},
		{"less than", "age is less than 30", "age < 30"},
		{"equal to double quoted", `department is equal to "Sales"`, `department = "Sales"`},
		{"equal to number", "id is equal to 3", "id = 3"},
		{"not equal to", "name is not equal to 'Bob'", "name != 'Bob'"},
		{"is null", "email is null", "email IS NULL"},
		{"is not null", "email is not null", "email IS NOT NULL"},
		{"like", `name like "J%"`, "name LIKE 'J%'"},
		{"between", "age between 20 and 30", "age BETWEEN 20 AND 30"},
		{"and", "age is greater than 20 and age is less than 40", "age > 20 AND age < 40"},
		{"or", "department is equal to 'Sales' or age is greater than 40", "department = 'Sales' OR age > 40"},
		{"not", "age is greater than 20 and not department is equal to 'Sales'", "age > 20 AND NOT department = 'Sales'"},
		{"between then and", "age between 20 and 30 and salary is greater than 50000", "age BETWEEN 20 AND 30 AND salary > 50000"},
		{"qualified column", "orders.amount is greater than 100", "orders.amount > 100"},
		{"uppercase phrase", "AGE IS GREATER THAN 5", "AGE > 5"},
		{"already sql", "age > 5", "age > 5"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TranslateCondition(tc.raw))
		})
	}
}

func TestTranslateCondition_OutOfGrammarLiterals(t *testing.T) {
	// Negative numbers and multi-word quoted literals are not rewritten.
	assert.Equal(t, "age is greater than -5", TranslateCondition("age is greater than -5"))
	assert.Equal(t, `name is equal to "John Doe"`, TranslateCondition(`name is equal to "John Doe"`))
}

func TestTranslateCondition_BetweenSurvivesConnectiveRewrite(t *testing.T) {
	got := TranslateCondition("age between 20 and 30")
	assert.Equal(t, "age BETWEEN 20 AND 30", got)
	assert.NotContains(t, got, "between")
}

func TestTranslateHaving_OnlyComparisonRules(t *testing.T) {
	assert.Equal(t, "total > 1", TranslateHaving("total is greater than 1"))
	assert.Equal(t, "total < 10", TranslateHaving("total is less than 10"))

	// Rules beyond greater/less are not applied to HAVING.
	assert.Equal(t, "total is equal to 3", TranslateHaving("total is equal to 3"))
	assert.Equal(t, "a > 1 and b > 2", TranslateHaving("a is greater than 1 and b is greater than 2"))

	// SQL-shaped aggregate conditions pass through.
	assert.Equal(t, "COUNT(id) > 1", TranslateHaving("COUNT(id) > 1"))
}

func TestConditionRules_Order(t *testing.T) {
	names := make([]string, len(conditionRules))
	for i, r := range conditionRules {
		names[i] = r.name
	}
	assert.Equal(t, []string{
		"greater than", "less than", "equal to", "not equal to",
		"is null", "is not null", "like", "between",
		"and", "or", "not",
	}, names)
	assert.Len(t, havingRules, 2)
}
