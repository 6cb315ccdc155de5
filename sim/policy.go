package sim

import (
	"fmt"
	"strings"
)

// Scheme selects the scheduling discipline for a whole simulation run.
type Scheme int

const (
	// FCFS runs jobs in arrival order.
	FCFS Scheme = iota
	// SJF runs the job with the smallest total run time first.
	SJF
	// PSJF preempts for jobs with less remaining run time.
	PSJF
	// PRI runs the job with the most urgent (lowest) priority value first.
	PRI
	// PPRI preempts for jobs with more urgent priority values.
	PPRI
	// RR cycles jobs through cores on quantum expiry, FIFO otherwise.
	RR
)

var schemeNames = map[Scheme]string{
	FCFS: "fcfs",
	SJF:  "sjf",
	PSJF: "psjf",
	PRI:  "pri",
	PPRI: "ppri",
	RR:   "rr",
}

func (s Scheme) String() string {
	if name, ok := schemeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("scheme(%d)", int(s))
}

// ParseScheme converts a scheme name (case-insensitive) into a Scheme.
func ParseScheme(name string) (Scheme, error) {
	for s, n := range schemeNames {
		if n == strings.ToLower(name) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown scheduling scheme %q (valid: fcfs, sjf, psjf, pri, ppri, rr)", name)
}

// Preemptive reports whether an arrival may evict a running job under s.
func (s Scheme) Preemptive() bool {
	return s == PSJF || s == PPRI
}

// QuantumDriven reports whether s reconsiders core occupancy on quantum
// expiry rather than through the comparator.
func (s Scheme) QuantumDriven() bool {
	return s == RR
}

// Compare orders two jobs under scheme s: negative means a should run before
// b, zero means the two are tied, positive means a should run after b.
// It is a pure function of the two jobs; ties between distinct jobs are
// legal and are resolved by the caller (stable waitlist insertion, or the
// engine's preemption tie-break).
func (s Scheme) Compare(a, b *Job) int {
	arrivalDiff := int(a.ArrivalTime - b.ArrivalTime)

	switch s {
	case FCFS:
		return arrivalDiff
	case SJF:
		if d := int(a.RunTime - b.RunTime); d != 0 {
			return d
		}
		return arrivalDiff
	case PSJF:
		if d := int(a.Remaining - b.Remaining); d != 0 {
			return d
		}
		return arrivalDiff
	case PRI, PPRI:
		if d := a.Priority - b.Priority; d != 0 {
			return d
		}
		return arrivalDiff
	case RR:
		// FIFO behavior comes purely from insertion order and quantum expiry.
		return 0
	default:
		panic(fmt.Sprintf("unhandled scheme %v", s))
	}
}
