// Package store keeps the history of part entries focset has written.
//
// The default backend is SQLite (modernc.org/sqlite, see the sqlite
// subpackage). Building with -tags bolt swaps in a bbolt file instead.
// Both backends store the same [model.Submission] records.
package store
