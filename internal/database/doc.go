// Package database provides SurrealDB connectivity for the Ascend API.
//
// The Database interface abstracts the client so repositories can be tested
// against a real instance (see internal/testing/testdb) and services never
// touch the driver directly.
//
// # Query Methods
//
//   - Query: one {"status", "result"} entry per statement
//   - QueryOne: the first record of the first statement, or ErrNotFound
//   - Execute: mutations with no result
//
// # Atomic Writes
//
// Multi-record writes (a quest flag plus the hunter document, a guild plus
// its leader) go through AtomicBatch, which wraps the statements in one
// BEGIN TRANSACTION / COMMIT TRANSACTION block.
//
// # Error Types
//
//   - ErrNotFound: record does not exist
//   - ErrDuplicate: unique index violation
//   - ErrConnection: connection or sign-in failure
//   - ErrQuery: statement or transaction failure
//
// # Schema
//
// ApplyMigrations runs the embedded *.surql files from the migrations
// package at startup and in tests.
package database
