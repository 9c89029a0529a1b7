// Package querysql renders a queryir.Query as SQL text and inspects
// rendered SQL.
//
// Rendering is a deterministic concatenation in canonical SQL clause order:
//
//	SELECT <fields> FROM <table>
//	  [ <KIND> <table> ON <cond> ]...
//	  [ WHERE <cond> ]
//	  [ GROUP BY <fields> ]
//	  [ HAVING <cond> ]
//	  [ ORDER BY <fields> <ASC|DESC> ]
//	  [ LIMIT <n> ]
//	;
//
// The order is fixed regardless of the order clauses were written in.
//
// Values are interpolated, not parameterized: conditions arrive as
// already-translated text from the SNQL phrase grammar.
package querysql
