// Package store defines the persistence interface for the user table and
// the sentinel errors shared by the registry and its callers. The concrete
// flat-file implementation lives in internal/platform/flatfile.
package store
