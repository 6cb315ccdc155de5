// Package sim provides the discrete-event CPU scheduling simulator core.
//
// # Reading Guide
//
// Start with these three files to understand the scheduling kernel:
//   - job.go: the Job record and its timing fields
//   - engine.go: the dispatch engine (arrivals, completions, quantum expiry,
//     and the preemption search)
//   - simulator.go: the event loop that drives an Engine through a workload
//
// # Architecture
//
// The engine itself is synchronous and single-threaded: the caller supplies
// monotonically non-decreasing simulated times through the three event
// handlers, and the engine answers with core placements. The Simulator in
// this package is one such caller; tests drive the Engine directly.
//
// Supporting pieces:
//   - waitlist.go: generic comparator-ordered waitlist (stable, identity-removal)
//   - policy.go: the six scheduling schemes as a comparator family
//   - corebank.go: core occupancy slots and time advancement
//   - stats.go: wait / turnaround / response accumulators
//   - sim/trace/: pure-data decision records
//
// Protocol violations (evicting the wrong job, assigning onto a busy core,
// time moving backward) panic: they are caller bugs, not runtime conditions.
// Empty results (no idle core, empty waitlist) are ordinary (value, false)
// returns.
package sim
