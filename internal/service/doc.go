// Package service implements the operations exposed to the menu layer:
// registration and authentication, the society/group membership engine,
// and community operations (societies, groups, events, announcements).
//
// Error handling follows two tracks. Operations that can only fail due to
// a state conflict (already a member, not pending) return a bool and
// never an error. Operations with real failure modes (duplicate email,
// unknown user) return sentinel errors checked with errors.Is. I/O
// failures from the persistence store are logged and swallowed here: a
// failed save means the mutation had no durable effect, never an aborted
// session.
package service
