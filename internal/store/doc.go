// Package store provides a SQLite-backed ledger of harness runs.
//
// A run records one scenario executed against one catalogue check; each
// case of the scenario becomes a case_results row holding the outcome and,
// for rejected values, the failure report as JSON.
//
// # Ordering
//
// Runs and case results are ordered by logical sequence numbers, never by
// timestamps, so two ledgers built from the same runs read back
// identically. Every query orders by seq ASC with id COLLATE BINARY as the
// tie-breaker.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait up to 5s on lock contention
//   - foreign_keys=ON: case results must reference a run
package store
