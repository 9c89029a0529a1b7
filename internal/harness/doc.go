// Package harness runs SNQL scenario files against the sample store and
// compares the outcome with expectations and golden snapshots.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	dataset: shop.cue            # optional, relative to the scenario file
//	request_id: req-1            # optional, defaults to "test-request"
//	steps:
//	  - query: get name from users where age is greater than 25
//	    expect:
//	      sql: "SELECT name FROM users WHERE age > 25;"
//	      columns: [name]
//	      rows: [["John Doe"], ["Jane Smith"]]
//	      tables: [users]
//	  - query: hello world
//	    expect:
//	      syntax_error: true
//	assertions:
//	  - type: sql_contains
//	    step: 1
//	    text: "WHERE age > 25"
//	  - type: final_state
//	    table: users
//	    where: { id: 3 }
//	    expect: { name: "Mike Johnson" }
//
// Unknown fields are rejected so typos fail loudly.
//
// # Expectations
//
// Every field of an expect clause is optional; only the fields present are
// checked. Rows compare as display strings (NULL for nil) and in order.
// An execution error fails the step unless expect.error names a substring
// of it.
//
// # Assertion Types
//
//   - sql_contains: the SQL of a step (1-based) contains text
//   - row_count: a step returned exactly count rows
//   - final_state: exactly one row of table matches where, with the
//     expected column values
//
// # Deterministic Testing
//
// Every scenario run by RunFresh gets its own in-memory store seeded from
// the scenario dataset, and a constant request ID, so trace snapshots are
// byte-identical across runs.
package harness
