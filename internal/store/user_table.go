package store

import "github.com/cuiconnect/cuiconnect/internal/directory"

// UserTable owns the durable user table. Save rewrites the table in full
// from the directory's user collection; there is no incremental append.
// Load repopulates the directory from disk, replacing its users only when
// the table actually holds records.
//
// Implementations must treat I/O failures as non-fatal for the session:
// errors are returned for the caller to report, and a failed save simply
// means the mutation had no durable effect.
type UserTable interface {
	// Save serializes every user in the directory and overwrites the
	// table. Safe to call after every mutating operation.
	Save(dir *directory.Directory) error

	// Load reads the table and replaces the directory's user collection
	// with the decoded records. An absent or empty table leaves the
	// directory untouched. Individually malformed records are skipped,
	// never fatal.
	Load(dir *directory.Directory) error
}
