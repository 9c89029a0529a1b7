// Package store provides the SQLite database that translated queries run
// against.
//
// A Store wraps one database handle, either a file or a private in-memory
// database. The sample dataset is written with Seed, which is idempotent:
// tables are created if missing, emptied, and refilled in one transaction.
//
// # Sessions
//
// Queries never share a package-level connection. Each execution asks the
// Store for a Session, a dedicated *sql.Conn that the caller closes when
// done. The pool is capped at one connection, so sessions are serialized
// and an in-memory database keeps its contents for the life of the Store.
//
// Methods on Store other than Session use the same single connection and
// must not be called while the caller still holds an open Session.
package store
