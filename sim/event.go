package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/sched-sim/sched-sim/sim/trace"
)

// Event defines the interface for all simulation events.
// Each event has a Timestamp (in ticks) and an Execute method that advances
// simulation state when invoked. Stale events (the core's occupant changed
// after scheduling) are filtered out by the Run loop before they can touch
// the clock.
type Event interface {
	Timestamp() int64
	Execute(*Simulator)
	stale(*Simulator) bool
}

// eventOrder breaks timestamp ties deterministically: completions run before
// arrivals, and quantum expiries last, so a job finishing exactly on a
// quantum boundary completes rather than cycling back to the waitlist.
func eventOrder(e Event) int {
	switch e.(type) {
	case *CompletionEvent:
		return 0
	case *ArrivalEvent:
		return 1
	case *QuantumEvent:
		return 2
	default:
		return 3
	}
}

// ArrivalEvent represents a new job entering the system.
type ArrivalEvent struct {
	time int64
	Spec JobSpec
}

// Timestamp returns the scheduled time of the ArrivalEvent.
func (e *ArrivalEvent) Timestamp() int64 {
	return e.time
}

// Arrivals come from the workload and never go stale.
func (e *ArrivalEvent) stale(*Simulator) bool {
	return false
}

// Execute hands the arrival to the engine and, if the job was placed,
// schedules the core's completion (and quantum) events.
func (e *ArrivalEvent) Execute(sim *Simulator) {
	logrus.Infof("<< Arrival: job %d at %d ticks", e.Spec.ID, e.time)

	// Snapshot occupancy so a preemption can be told apart from an
	// idle-core placement after the engine decides.
	previous := sim.occupantSnapshot()

	core, placed := sim.Engine.OnArrival(e.Spec.ID, e.time, e.Spec.RunTime, e.Spec.Priority)
	if !placed {
		return
	}

	cause := trace.CauseArrival
	if victim, wasOccupied := previous[core]; wasOccupied {
		cause = trace.CausePreemption
		sim.Trace.RecordPreemption(trace.PreemptionRecord{
			EvictedID: victim,
			WinnerID:  e.Spec.ID,
			Core:      core,
			Clock:     e.time,
		})
		logrus.Infof("[tick %07d] job %d preempted job %d on core %d", e.time, e.Spec.ID, victim, core)
	}
	sim.Trace.RecordPlacement(trace.PlacementRecord{JobID: e.Spec.ID, Core: core, Clock: e.time, Cause: cause})

	sim.invalidate(core)
	sim.scheduleCoreEvents(core, e.time)
}

// CompletionEvent represents the job on a core exhausting its remaining work.
// The event is generation-stamped: if the core's occupant has changed since
// it was scheduled (preemption, quantum rotation), the event is stale and is
// skipped on pop.
type CompletionEvent struct {
	time  int64
	Core  int
	JobID int
	gen   uint64
}

// Timestamp returns the scheduled time of the CompletionEvent.
func (e *CompletionEvent) Timestamp() int64 {
	return e.time
}

func (e *CompletionEvent) stale(sim *Simulator) bool {
	return e.gen != sim.gen[e.Core]
}

// Execute completes the job and moves the waitlist head onto the freed core.
func (e *CompletionEvent) Execute(sim *Simulator) {
	logrus.Infof("<< Completion: job %d on core %d at %d ticks", e.JobID, e.Core, e.time)

	nextID, ok := sim.Engine.OnCompletion(e.Core, e.JobID, e.time)
	sim.invalidate(e.Core)
	if !ok {
		return
	}
	sim.Trace.RecordPlacement(trace.PlacementRecord{JobID: nextID, Core: e.Core, Clock: e.time, Cause: trace.CauseCompletion})
	sim.scheduleCoreEvents(e.Core, e.time)
}

// QuantumEvent represents a round-robin quantum running out on a core.
// Generation-stamped like CompletionEvent.
type QuantumEvent struct {
	time int64
	Core int
	gen  uint64
}

// Timestamp returns the scheduled time of the QuantumEvent.
func (e *QuantumEvent) Timestamp() int64 {
	return e.time
}

func (e *QuantumEvent) stale(sim *Simulator) bool {
	return e.gen != sim.gen[e.Core]
}

// Execute rotates the core's occupant back through the waitlist.
func (e *QuantumEvent) Execute(sim *Simulator) {
	logrus.Infof("<< QuantumExpired: core %d at %d ticks", e.Core, e.time)

	nextID, ok := sim.Engine.OnQuantumExpired(e.Core, e.time)
	sim.invalidate(e.Core)
	if !ok {
		return
	}
	sim.Trace.RecordPlacement(trace.PlacementRecord{JobID: nextID, Core: e.Core, Clock: e.time, Cause: trace.CauseQuantum})
	sim.scheduleCoreEvents(e.Core, e.time)
}
