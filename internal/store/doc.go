// Package store provides SQLite-backed history of completed benchmark runs.
//
// Each saved run keeps its report header (cycles, seed, mode) plus one row
// per unit with the accumulated total and invocation count, so results from
// repeated runs can be compared later.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// Seeds are stored as decimal TEXT because the driver rejects uint64 values
// with the high bit set.
package store
