// Package client contains client-side building blocks for Kontax.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) to talk
//     to the Kontax backend: Register/Login, Ping, card publishing and
//     presigned voice-note uploads.
//  2. A concrete JSON-over-HTTP implementation (see HTTPClient) that keeps
//     the token pair in memory, transparently refreshes expired access
//     tokens, and maps HTTP status codes to sentinel errors.
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations),
//     wiring an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable, ErrUnauthorized, ErrLocalDataNotAvailable.
//
// Concurrency & Contexts
//
// HTTPClient is not safe for concurrent token mutation; the REPL drives it
// from a single goroutine plus the status watcher, which only calls Ping.
// All operations accept context.Context and honor cancellation/timeouts.
package client
