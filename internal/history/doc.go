// Package history persists a ledger of conversion runs in SQLite.
//
// Every `tickgen convert` invocation records one row, successful or failed,
// with the scheduling statistics and output paths of the run. The CLI's
// `history` commands read it back. Schema changes bump the version in
// schema.go; users delete the database to adopt the new schema.
package history
