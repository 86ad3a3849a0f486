// Package sqlite provides the SQLite-backed search history store.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation
// that requires no CGO, enabling easy cross-compilation. The recent
// search set is a single table keyed by the unique term with an indexed
// created_at column for recency ordering.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in
// the migrations/ directory as .up.sql files.
//
// # Data Location
//
// By default, the database is stored at ~/.shopfeed/data/history.db
//
// # Thread Safety
//
// All operations are thread-safe and individually atomic. The store uses
// database-level locking provided by SQLite in WAL mode; there are no
// cross-call transactions.
package sqlite
