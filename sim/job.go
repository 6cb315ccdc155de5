// Defines the Job struct that models one schedulable unit of work.
// Tracks arrival time, remaining work, priority, and the timestamps needed
// for wait / turnaround / response accounting.

package sim

import (
	"fmt"

	"github.com/markphelps/optional"
)

// JobState represents the lifecycle state of a job.
type JobState string

const (
	StateWaiting JobState = "waiting"
	StateRunning JobState = "running"
)

// Job models a single job's lifecycle in the simulation. While alive it is
// owned by exactly one of {a core slot, the waitlist}; the engine performs the
// handoff between the two atomically inside its event handlers.
type Job struct {
	ID int // Process-unique identifier

	ArrivalTime int64 // Tick at which the job arrived (immutable)
	RunTime     int64 // Total work the job needs (immutable)
	Remaining   int64 // Work left; decremented on every time advance while running
	Priority    int   // Lower value = more urgent (immutable)

	State JobState // waiting or running

	// firstRun is the tick at which the job first began executing. Set at
	// most once, on the first time advance after the job lands on a core;
	// response time is folded into the statistics at the same moment.
	firstRun optional.Int64

	// lastUpdate is the tick at which Remaining was last reconciled.
	// Restamped on assignment, eviction, and every time advance.
	lastUpdate int64
}

// NewJob constructs a freshly arrived job with all of its work remaining.
func NewJob(id int, arrival, runTime int64, priority int) *Job {
	return &Job{
		ID:          id,
		ArrivalTime: arrival,
		RunTime:     runTime,
		Remaining:   runTime,
		Priority:    priority,
		State:       StateWaiting,
	}
}

// FirstRunTime returns the tick of the job's first execution, if it has begun.
func (j *Job) FirstRunTime() (int64, bool) {
	v, err := j.firstRun.Get()
	if err != nil {
		return 0, false
	}
	return v, true
}

func (j *Job) String() string {
	return fmt.Sprintf("Job: (ID: %d, State: %s, Remaining: %d/%d, ArrivalTime: %d, Priority: %d)",
		j.ID, j.State, j.Remaining, j.RunTime, j.ArrivalTime, j.Priority)
}
