// Package queryir provides the intermediate representation (IR) of a parsed
// SNQL query.
//
// The IR is the boundary between the SNQL parser and the SQL renderer:
//
//	[SNQL text] → [snql.Parse] → [queryir.Query] → [querysql.Render] → [SQL text]
//
// A Query is created by a single translation call, owned exclusively by it,
// and discarded once rendered. Nothing in this package is shared or mutated
// concurrently.
//
// SHAPE:
//
// The IR mirrors the flat phrase grammar rather than a full SQL AST:
//   - Fields: ordered projection list, each optionally wrapped in an aggregate
//   - Joins: zero or more joins in source order, each with a kind, table and raw ON text
//   - Where / Having: already-translated condition text (opaque strings)
//   - GroupBy: raw grouping fragment
//   - OrderBy: one fragment plus ONE direction for the whole clause
//   - Limit: row cap, verbatim
//
// Conditions are deliberately opaque. The translator rewrites phrases to
// operators textually and the IR does not attempt to model expressions.
//
// ORDER BY DIRECTION:
//
// The grammar recognizes a single direction token for the whole ORDER BY
// fragment. A Query therefore carries one Direction, not one per sort key.
// Multi-key sorts such as "order by a desc, b" render as "ORDER BY a, b DESC".
package queryir
