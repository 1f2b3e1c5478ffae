// Package sqlite provides a SQLite-backed implementation of the
// review history store. The database schema is managed through
// embedded, versioned migrations.
package sqlite
