// Package flatfile implements the store.UserTable interface on top of a
// line-oriented text file, one pipe-delimited record per user. It owns
// both the record codec (field escaping and role-specific layouts) and
// the full-rewrite save / tolerant load lifecycle of the table.
package flatfile
