// Implements the DispatchEngine, which turns job arrival, completion, and
// quantum-expiry events into core placements under the active scheme.

package sim

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Engine owns the state of one simulation run: the simulated clock, the core
// bank, the waitlist, and the running statistics. Event handlers must be
// called in non-decreasing simulated-time order; each advances the core
// timers before making any placement decision, so Remaining always reflects
// the current tick at decision time.
//
// A single Engine is not safe for concurrent use; parallel runs each get
// their own instance.
type Engine struct {
	scheme   Scheme
	clock    int64
	cores    *CoreBank
	waitlist *Waitlist[*Job]
	stats    *RunningStatistics

	arrived   int
	completed int
}

// NewEngine starts a simulation run with the given core count and scheme.
func NewEngine(cores int, scheme Scheme) *Engine {
	e := &Engine{
		scheme:   scheme,
		cores:    NewCoreBank(cores),
		waitlist: NewWaitlist[*Job](scheme.Compare),
		stats:    NewRunningStatistics(),
	}
	e.cores.AdvanceAllTo(0, e.stats)
	return e
}

// advance moves the simulated clock forward and reconciles all running jobs.
func (e *Engine) advance(time int64) {
	if time < e.clock {
		logrus.Panicf("engine: time moved backward from %d to %d", e.clock, time)
	}
	e.clock = time
	e.cores.AdvanceAllTo(time, e.stats)
}

// OnArrival handles a new job entering the system. If the job should begin
// running immediately, either on an idle core or by preempting a running job
// under a preemptive scheme, it returns the core index and true. Otherwise
// the job joins the waitlist and the bool is false.
func (e *Engine) OnArrival(jobID int, time int64, runTime int64, priority int) (int, bool) {
	e.advance(time)
	job := NewJob(jobID, time, runTime, priority)
	e.arrived++

	if idx, ok := e.cores.FirstIdleSlot(); ok {
		e.cores.Assign(idx, job)
		logrus.Debugf("[tick %07d] job %d -> idle core %d", time, jobID, idx)
		return idx, true
	}

	if e.scheme.Preemptive() {
		if idx, ok := e.preempt(job); ok {
			logrus.Debugf("[tick %07d] job %d preempts core %d", time, jobID, idx)
			return idx, true
		}
	}

	pos := e.waitlist.Insert(job)
	logrus.Debugf("[tick %07d] job %d queued at position %d", time, jobID, pos)
	return 0, false
}

// preempt searches for a running job the arriving job should displace.
// It tracks the most negative comparison seen; only a strictly negative
// comparison qualifies (a tie is not enough to evict). Among cores tied at
// the most negative value, the one whose job arrived later is preferred, so
// the oldest running job keeps its core.
func (e *Engine) preempt(job *Job) (int, bool) {
	best := 0
	core := -1
	for i := 0; i < e.cores.Cores(); i++ {
		cmp := e.scheme.Compare(job, e.cores.Peek(i))
		if cmp < best {
			best = cmp
			core = i
		} else if cmp == best && core != -1 {
			if e.cores.Peek(core).ArrivalTime < e.cores.Peek(i).ArrivalTime {
				core = i
			}
		}
	}
	if core < 0 {
		return 0, false
	}

	victim := e.cores.Evict(core, e.cores.Peek(core).ID)
	victim.State = StateWaiting
	e.waitlist.Insert(victim)
	e.cores.Assign(core, job)
	return core, true
}

// OnCompletion handles the job on core finishing at time. Completion
// statistics are folded in and the job is released. If the waitlist is
// non-empty its head takes over the core; the new occupant's id is returned
// with true. Otherwise the core goes idle and the bool is false.
func (e *Engine) OnCompletion(core int, jobID int, time int64) (int, bool) {
	e.advance(time)
	job := e.cores.Evict(core, jobID)

	// A running job is never also queued; any waitlist entry here means a
	// double-accounting bug upstream.
	if n := e.waitlist.RemoveAll(job); n > 0 {
		logrus.Warnf("[tick %07d] completed job %d was also on the waitlist (%d entries)", time, jobID, n)
	}

	e.stats.foldWait(time - job.ArrivalTime - job.RunTime)
	e.stats.foldTurnaround(time - job.ArrivalTime)
	e.completed++
	logrus.Debugf("[tick %07d] job %d completed on core %d", time, jobID, core)

	if next, ok := e.waitlist.Poll(); ok {
		e.cores.Assign(core, next)
		return next.ID, true
	}
	return 0, false
}

// OnQuantumExpired handles a round-robin quantum running out on core. The
// occupant returns to the waitlist with its remaining work intact, and the
// new head of the waitlist takes the core. With a single job in the system
// that is the same job, and its id is still returned with true.
func (e *Engine) OnQuantumExpired(core int, time int64) (int, bool) {
	e.advance(time)
	occupant := e.cores.Peek(core)
	if occupant == nil {
		logrus.Panicf("OnQuantumExpired: core %d is idle at tick %d", core, time)
	}
	job := e.cores.Evict(core, occupant.ID)
	job.State = StateWaiting
	e.waitlist.Insert(job)

	if next, ok := e.waitlist.Poll(); ok {
		e.cores.Assign(core, next)
		return next.ID, true
	}
	return 0, false
}

// Shutdown releases the waitlist and all core slots. Statistics remain
// readable afterwards.
func (e *Engine) Shutdown() {
	e.waitlist.Clear()
	e.cores.Clear()
}

// Stats returns the run's statistics accumulators.
func (e *Engine) Stats() *RunningStatistics {
	return e.stats
}

// AvgWaitTime returns the average wait time of completed jobs.
func (e *Engine) AvgWaitTime() float64 { return e.stats.AvgWaitTime() }

// AvgTurnaroundTime returns the average turnaround time of completed jobs.
func (e *Engine) AvgTurnaroundTime() float64 { return e.stats.AvgTurnaroundTime() }

// AvgResponseTime returns the average response time of jobs that have run.
func (e *Engine) AvgResponseTime() float64 { return e.stats.AvgResponseTime() }

// Scheme returns the active scheduling scheme.
func (e *Engine) Scheme() Scheme { return e.scheme }

// Clock returns the current simulated time.
func (e *Engine) Clock() int64 { return e.clock }

// Cores returns the number of cores in the bank.
func (e *Engine) Cores() int { return e.cores.Cores() }

// Waiting returns the number of jobs on the waitlist.
func (e *Engine) Waiting() int { return e.waitlist.Len() }

// Running returns the number of occupied cores.
func (e *Engine) Running() int { return e.cores.Occupied() }

// Arrived returns the number of jobs that have entered the system.
func (e *Engine) Arrived() int { return e.arrived }

// Completed returns the number of jobs that have finished.
func (e *Engine) Completed() int { return e.completed }

// JobOn returns the id of the job running on core, if any.
func (e *Engine) JobOn(core int) (int, bool) {
	if job := e.cores.Peek(core); job != nil {
		return job.ID, true
	}
	return 0, false
}

// RemainingOn returns the remaining work of the job running on core, if any.
func (e *Engine) RemainingOn(core int) (int64, bool) {
	if job := e.cores.Peek(core); job != nil {
		return job.Remaining, true
	}
	return 0, false
}

// QueueString renders the current placement for debugging: each job as
// "id(core)" for running jobs, "id(-1)" for queued ones, running first.
func (e *Engine) QueueString() string {
	var sb strings.Builder
	for i := 0; i < e.cores.Cores(); i++ {
		if job := e.cores.Peek(i); job != nil {
			fmt.Fprintf(&sb, "%d(%d) ", job.ID, i)
		}
	}
	for i := 0; i < e.waitlist.Len(); i++ {
		job, _ := e.waitlist.At(i)
		fmt.Fprintf(&sb, "%d(-1) ", job.ID)
	}
	return strings.TrimSpace(sb.String())
}
