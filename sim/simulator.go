// sim/simulator.go
package sim

import (
	"container/heap"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/sched-sim/sched-sim/sim/trace"
)

// JobSpec describes one job of a workload before it enters the system.
type JobSpec struct {
	ID          int
	ArrivalTime int64
	RunTime     int64
	Priority    int
}

// EventQueue implements heap.Interface and orders events by timestamp,
// breaking ties by event kind (completions, then arrivals, then quantum
// expiries). See the canonical example: https://pkg.go.dev/container/heap
type EventQueue []Event

func (eq EventQueue) Len() int { return len(eq) }
func (eq EventQueue) Less(i, j int) bool {
	if eq[i].Timestamp() != eq[j].Timestamp() {
		return eq[i].Timestamp() < eq[j].Timestamp()
	}
	return eventOrder(eq[i]) < eventOrder(eq[j])
}
func (eq EventQueue) Swap(i, j int) { eq[i], eq[j] = eq[j], eq[i] }

func (eq *EventQueue) Push(x any) {
	*eq = append(*eq, x.(Event))
}

func (eq *EventQueue) Pop() any {
	old := *eq
	n := len(old)
	item := old[n-1]
	*eq = old[0 : n-1]
	return item
}

// Simulator drives one Engine through a workload. It owns the event loop:
// arrivals come from the workload, while completion and quantum events are
// derived from the engine's placement decisions. Events that no longer match
// a core's occupant (the job was preempted or rotated away) are invalidated
// lazily through per-core generation counters and skipped on pop.
type Simulator struct {
	Clock  int64
	Engine *Engine
	// Quantum is the round-robin time slice; only read under RR.
	Quantum int64
	// EventQueue has all the simulator events: arrivals plus the derived
	// completion and quantum-expiry events.
	EventQueue EventQueue
	Trace      *trace.SimulationTrace

	// gen[i] is bumped whenever core i's occupant changes; pending events
	// carry the value current when they were scheduled.
	gen []uint64
}

// NewSimulator builds a simulator for the given machine shape and workload.
// Arrival events for every spec are scheduled immediately.
func NewSimulator(cores int, scheme Scheme, quantum int64, specs []JobSpec, traceLevel trace.Level) *Simulator {
	if scheme.QuantumDriven() && quantum < 1 {
		logrus.Panicf("NewSimulator: round-robin requires a quantum >= 1, got %d", quantum)
	}
	s := &Simulator{
		Engine:     NewEngine(cores, scheme),
		Quantum:    quantum,
		EventQueue: make(EventQueue, 0),
		Trace:      trace.NewSimulationTrace(traceLevel),
		gen:        make([]uint64, cores),
	}
	for _, spec := range specs {
		s.Schedule(&ArrivalEvent{time: spec.ArrivalTime, Spec: spec})
	}
	return s
}

// Schedule pushes an event into the simulator's EventQueue.
func (sim *Simulator) Schedule(ev Event) {
	heap.Push(&sim.EventQueue, ev)
}

// Run processes events in timestamp order until the queue drains. The
// workload is finite, so the queue drains once every job has completed.
// Stale events are discarded before the clock moves, so the final clock is
// the timestamp of the last event that actually executed.
func (sim *Simulator) Run() {
	for len(sim.EventQueue) > 0 {
		ev := heap.Pop(&sim.EventQueue).(Event)
		if ev.stale(sim) {
			logrus.Debugf("[tick %07d] stale %T, skipping", ev.Timestamp(), ev)
			continue
		}
		sim.Clock = ev.Timestamp()
		logrus.Debugf("[tick %07d] Executing %T", sim.Clock, ev)
		ev.Execute(sim)
	}
	logrus.Infof("[tick %07d] Simulation ended", sim.Clock)
}

// invalidate marks all pending events for core stale.
func (sim *Simulator) invalidate(core int) {
	sim.gen[core]++
}

// scheduleCoreEvents schedules the completion (and, under round-robin, the
// quantum expiry) for core's current occupant. No-op if the core is idle.
func (sim *Simulator) scheduleCoreEvents(core int, now int64) {
	remaining, ok := sim.Engine.RemainingOn(core)
	if !ok {
		return
	}
	jobID, _ := sim.Engine.JobOn(core)
	g := sim.gen[core]
	sim.Schedule(&CompletionEvent{time: now + remaining, Core: core, JobID: jobID, gen: g})
	if sim.Engine.Scheme().QuantumDriven() {
		sim.Schedule(&QuantumEvent{time: now + sim.Quantum, Core: core, gen: g})
	}
}

// occupantSnapshot returns the jobs currently on each core, keyed by core
// index; idle cores are absent.
func (sim *Simulator) occupantSnapshot() map[int]int {
	occupants := make(map[int]int, sim.Engine.Cores())
	for i := 0; i < sim.Engine.Cores(); i++ {
		if id, ok := sim.Engine.JobOn(i); ok {
			occupants[i] = id
		}
	}
	return occupants
}

// Report prints the run's statistics and, when tracing was enabled, a
// summary of the recorded decisions.
func (sim *Simulator) Report() {
	sim.Engine.Stats().Print()
	if sim.Trace.Enabled() {
		summary := trace.Summarize(sim.Trace)
		fmt.Println("=== Decision Trace ===")
		fmt.Printf("Placements           : %d\n", summary.TotalPlacements)
		fmt.Printf("Preemptions          : %d\n", summary.Preemptions)
		fmt.Printf("Cores used           : %d\n", summary.UniqueCores)
		for cause, n := range summary.CauseCounts {
			fmt.Printf("  placed on %-10s : %d\n", cause, n)
		}
	}
}
