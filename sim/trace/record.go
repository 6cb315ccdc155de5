// Package trace provides decision-trace recording for scheduling analysis.
// This package has no dependencies on sim/ and stores pure data types.
package trace

// PlacementCause identifies why a job landed on a core.
type PlacementCause string

const (
	CauseArrival    PlacementCause = "arrival"    // idle core at arrival
	CausePreemption PlacementCause = "preemption" // arrival evicted a running job
	CauseCompletion PlacementCause = "completion" // core freed by a finished job
	CauseQuantum    PlacementCause = "quantum"    // round-robin rotation
)

// PlacementRecord captures a single job-to-core placement decision.
type PlacementRecord struct {
	JobID int
	Core  int
	Clock int64
	Cause PlacementCause
}

// PreemptionRecord captures a running job being displaced by an arrival.
type PreemptionRecord struct {
	EvictedID int
	WinnerID  int
	Core      int
	Clock     int64
}
