// Package sqlite provides a SQLite-based implementation of the charta
// storage ports.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO. One database connection backs both stores:
//
//   - TemplateStore: the template catalog, in registration order
//   - CharterRecordStore: the append-only charter record log
//
// # Schema
//
// The schema is managed through versioned migrations in the migrations/
// directory. Each migration is a pair of .up.sql and .down.sql files and
// records its own version in schema_migrations.
//
// # Data Location
//
// By default, the database is stored at ~/.charta/data/charta.db
//
// # Thread Safety
//
// All operations are safe for concurrent use. The store relies on SQLite's
// WAL mode and busy timeout for locking.
package sqlite
