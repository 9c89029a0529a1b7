// Package engine executes translated SQL against the sample store.
//
// The Executor is the collaborator on the far side of the translator: it
// receives SQL text and an explicit store session, and returns either the
// result columns and rows or an ExecutionError carrying the store's
// message verbatim.
//
// FLOW (Run):
//
//	[SNQL text] → snql.Translate → [SQL] → Execute(session) → [Result]
//	                  │                           │
//	                  └─ *snql.SyntaxError        └─ *ExecutionError
//
// A syntax error stops the flow before execution. Both error classes are
// reported on the Outcome as values; Run itself never fails.
//
// SESSIONS:
//
// The Executor holds no connection. Every call is handed the session it
// runs on, so the caller owns its lifecycle (see store.Store.Session).
// An Executor is safe for concurrent use.
//
// REQUEST IDS:
//
// Each Run is stamped with a request ID from a RequestIDGenerator. The ID
// is attached to the context logger and returned on the Outcome, so log
// lines and API responses for one query can be correlated.
package engine
