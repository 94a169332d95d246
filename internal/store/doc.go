// Package store provides SQLite-backed durable storage for tournament state.
//
// Each event owns exactly one row: the current bracket and its schedule
// projection, serialized as JSON, plus the revision that produced them. Save
// replaces the whole row in a single statement, so a reader can never observe
// a bracket from one revision alongside a schedule from another.
//
// Load treats corruption as absence: a row whose JSON no longer unmarshals is
// reported as missing (with a warning log) rather than as an error, so the
// caller can fall back to regenerating the bracket.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
