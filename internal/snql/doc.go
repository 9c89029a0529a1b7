// Package snql translates SNQL, a small English-flavoured query language,
// into a single SQL SELECT statement.
//
// # Grammar
//
// Every query must contain the anchor phrase:
//
//	get <fields> from <table>
//
// followed by any of these optional clauses, in any order:
//
//	[left|right|inner|outer] join <table> on <condition>   (zero or more)
//	where <condition>
//	group by <fields>
//	having <condition>
//	order by <fields> [asc|desc]
//	limit <n>
//
// Keywords are matched case-insensitively. Fields may use aggregate phrasing
// ("count of id", "avg of salary"), which becomes COUNT(id), AVG(salary).
// Conditions use comparison phrases ("age is greater than 25") which are
// rewritten to SQL operators by an ordered rule pipeline (see conditions.go).
//
// # Pipeline
//
//	Segment  →  ParseFields / ParseJoins / TranslateCondition / ParseOrder / ParseLimit
//	         →  queryir.Query  →  querysql.Render  →  SQL
//
// The whole pipeline is a pure function of its input. It performs no I/O,
// holds no shared state, and is safe for concurrent use without locking.
//
// # Errors
//
// The only error the translator raises is *SyntaxError, returned when the
// anchor phrase is missing. No partial SQL is produced in that case. Clauses
// that are absent simply render as nothing.
//
// # Example
//
//	sql, err := snql.Translate("get name, email from users where age is greater than 25 order by name limit 5")
//	// sql == "SELECT name, email FROM users WHERE age > 25 ORDER BY name ASC LIMIT 5;"
package snql
