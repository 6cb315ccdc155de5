// Tracks run-wide scheduling statistics: wait time, turnaround time, and
// response time, folded in as jobs complete (or, for response time, as they
// first begin executing).

package sim

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// RunningStatistics aggregates per-job timing samples for final reporting.
// Wait and turnaround are folded at completion; response is folded the first
// time a job executes. Accessors never divide by zero.
type RunningStatistics struct {
	waitSum   float64
	waitCount int

	turnaroundSum   float64
	turnaroundCount int

	responseSum   float64
	responseCount int

	// Raw samples kept alongside the accumulator pairs so the end-of-run
	// report can show distribution shape, not just means.
	waitSamples       []float64
	turnaroundSamples []float64
	responseSamples   []float64
}

// NewRunningStatistics creates an empty accumulator set.
func NewRunningStatistics() *RunningStatistics {
	return &RunningStatistics{}
}

func (s *RunningStatistics) foldWait(v int64) {
	s.waitSum += float64(v)
	s.waitCount++
	s.waitSamples = append(s.waitSamples, float64(v))
}

func (s *RunningStatistics) foldTurnaround(v int64) {
	s.turnaroundSum += float64(v)
	s.turnaroundCount++
	s.turnaroundSamples = append(s.turnaroundSamples, float64(v))
}

func (s *RunningStatistics) foldResponse(v int64) {
	s.responseSum += float64(v)
	s.responseCount++
	s.responseSamples = append(s.responseSamples, float64(v))
}

// AvgWaitTime returns the average wait time of all completed jobs,
// or 0.0 if none have completed.
func (s *RunningStatistics) AvgWaitTime() float64 {
	if s.waitCount == 0 {
		return 0.0
	}
	return s.waitSum / float64(s.waitCount)
}

// AvgTurnaroundTime returns the average turnaround time of all completed
// jobs, or 0.0 if none have completed.
func (s *RunningStatistics) AvgTurnaroundTime() float64 {
	if s.turnaroundCount == 0 {
		return 0.0
	}
	return s.turnaroundSum / float64(s.turnaroundCount)
}

// AvgResponseTime returns the average response time of all jobs that have
// begun executing, or 0.0 if none have.
func (s *RunningStatistics) AvgResponseTime() float64 {
	if s.responseCount == 0 {
		return 0.0
	}
	return s.responseSum / float64(s.responseCount)
}

// CompletedJobs returns how many jobs have had completion statistics folded.
func (s *RunningStatistics) CompletedJobs() int {
	return s.turnaroundCount
}

// quantiles returns the mean and the p50/p95/p99 of data.
// gonum's empirical quantile requires sorted input; data is copied first.
func quantiles(data []float64) (mean, p50, p95, p99 float64) {
	if len(data) == 0 {
		return 0, 0, 0, 0
	}
	sorted := append([]float64(nil), data...)
	sort.Float64s(sorted)
	mean = stat.Mean(sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p95 = stat.Quantile(0.95, stat.Empirical, sorted, nil)
	p99 = stat.Quantile(0.99, stat.Empirical, sorted, nil)
	return mean, p50, p95, p99
}

// Print displays aggregated statistics at the end of the simulation.
func (s *RunningStatistics) Print() {
	fmt.Println("=== Scheduling Statistics ===")
	fmt.Printf("Completed Jobs       : %d\n", s.CompletedJobs())
	if s.CompletedJobs() == 0 {
		return
	}
	fmt.Printf("Average Wait Time    : %.2f ticks\n", s.AvgWaitTime())
	fmt.Printf("Average Turnaround   : %.2f ticks\n", s.AvgTurnaroundTime())
	fmt.Printf("Average Response     : %.2f ticks\n", s.AvgResponseTime())

	_, w50, w95, w99 := quantiles(s.waitSamples)
	fmt.Printf("Wait p50/p95/p99     : %.1f / %.1f / %.1f ticks\n", w50, w95, w99)
	_, t50, t95, t99 := quantiles(s.turnaroundSamples)
	fmt.Printf("Turnaround p50/p95/p99 : %.1f / %.1f / %.1f ticks\n", t50, t95, t99)
}
