// Package database records rendered reports in a SQLite file.
//
// Each successful run is stored as one row in the renders table, keyed by
// the run ID: destination path, page and element counts, file size, the
// document fingerprint and the run's start and finish times. The history
// command reads it back newest first.
//
// The database lives in a single file (h3report.db) and is opened through
// modernc.org/sqlite, which needs no cgo.
package database
