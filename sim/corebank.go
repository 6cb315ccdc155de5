// Implements the CoreBank, the fixed array of core slots that jobs execute
// on. Each slot holds at most one live job; the engine is the sole mutator.

package sim

import (
	"github.com/sirupsen/logrus"
)

// CoreBank models N processing cores as occupied-by-job-or-idle slots.
// All mutations are protocol-checked: assigning onto an occupied slot,
// evicting from an idle slot, or an identity mismatch on evict indicate a
// caller bug and panic rather than return an error.
type CoreBank struct {
	slots []*Job
	clock int64 // tick of the most recent AdvanceAllTo
}

// NewCoreBank creates a bank of n idle cores. n must be positive.
func NewCoreBank(n int) *CoreBank {
	if n <= 0 {
		logrus.Panicf("NewCoreBank: core count must be positive, got %d", n)
	}
	return &CoreBank{slots: make([]*Job, n)}
}

// Cores returns the number of slots in the bank.
func (b *CoreBank) Cores() int {
	return len(b.slots)
}

// Clock returns the tick of the most recent time advance.
func (b *CoreBank) Clock() int64 {
	return b.clock
}

// Peek returns the job occupying core index, or nil if the slot is idle.
func (b *CoreBank) Peek(index int) *Job {
	b.checkIndex(index)
	return b.slots[index]
}

// Occupied returns the number of non-idle slots.
func (b *CoreBank) Occupied() int {
	n := 0
	for _, job := range b.slots {
		if job != nil {
			n++
		}
	}
	return n
}

// FirstIdleSlot returns the lowest-indexed idle slot. The bool is false when
// every slot is occupied. Preferring the lowest index keeps placement
// deterministic when several cores are idle.
func (b *CoreBank) FirstIdleSlot() (int, bool) {
	for i, job := range b.slots {
		if job == nil {
			return i, true
		}
	}
	return 0, false
}

// Assign places job on core index and stamps the job's last-update time with
// the current tick. Panics if the slot is already occupied.
func (b *CoreBank) Assign(index int, job *Job) {
	b.checkIndex(index)
	if b.slots[index] != nil {
		logrus.Panicf("Assign: core %d already occupied by job %d (assigning job %d)",
			index, b.slots[index].ID, job.ID)
	}
	b.slots[index] = job
	job.lastUpdate = b.clock
	job.State = StateRunning
}

// Evict frees core index and returns the job that occupied it, stamping its
// last-update time with the current tick (the moment it stopped running).
// Panics if the slot is idle or holds a different job than jobID.
func (b *CoreBank) Evict(index int, jobID int) *Job {
	b.checkIndex(index)
	job := b.slots[index]
	if job == nil {
		logrus.Panicf("Evict: core %d is idle (evicting job %d)", index, jobID)
	}
	if job.ID != jobID {
		logrus.Panicf("Evict: core %d holds job %d, not job %d", index, job.ID, jobID)
	}
	b.slots[index] = nil
	job.lastUpdate = b.clock
	return job
}

// AdvanceAllTo reconciles every running job with the simulated time: each
// occupied slot's job loses (time - lastUpdate) of remaining work. The first
// advance after a job lands on a core also stamps its first-run time and
// folds response time into stats. Must run before any placement or eviction
// decision that reads Remaining.
func (b *CoreBank) AdvanceAllTo(time int64, stats *RunningStatistics) {
	if time < b.clock {
		logrus.Panicf("AdvanceAllTo: time moved backward from %d to %d", b.clock, time)
	}
	b.clock = time
	for _, job := range b.slots {
		if job == nil {
			continue
		}
		if !job.firstRun.Present() && job.lastUpdate != time {
			// The job has now actually executed; its first run began at the
			// tick it was assigned, which lastUpdate still holds.
			job.firstRun.Set(job.lastUpdate)
			stats.foldResponse(job.lastUpdate - job.ArrivalTime)
		}
		job.Remaining -= time - job.lastUpdate
		job.lastUpdate = time
	}
}

// Clear idles every slot, releasing the jobs held on them.
func (b *CoreBank) Clear() {
	for i := range b.slots {
		b.slots[i] = nil
	}
}

func (b *CoreBank) checkIndex(index int) {
	if index < 0 || index >= len(b.slots) {
		logrus.Panicf("core index %d out of range [0, %d)", index, len(b.slots))
	}
}
