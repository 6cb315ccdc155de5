package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseScheme(t *testing.T) {
	for name, want := range map[string]Scheme{
		"fcfs": FCFS, "sjf": SJF, "psjf": PSJF, "pri": PRI, "ppri": PPRI, "rr": RR,
		"FCFS": FCFS, "Rr": RR,
	} {
		got, err := ParseScheme(name)
		assert.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseScheme("edf")
	assert.Error(t, err)
}

func TestScheme_Properties(t *testing.T) {
	assert.True(t, PSJF.Preemptive())
	assert.True(t, PPRI.Preemptive())
	for _, s := range []Scheme{FCFS, SJF, PRI, RR} {
		assert.False(t, s.Preemptive(), s.String())
	}
	assert.True(t, RR.QuantumDriven())
	assert.False(t, PSJF.QuantumDriven())
}

func TestCompare_FCFS_ByArrival(t *testing.T) {
	early := &Job{ArrivalTime: 5}
	late := &Job{ArrivalTime: 9}
	assert.Negative(t, FCFS.Compare(early, late))
	assert.Positive(t, FCFS.Compare(late, early))
	assert.Zero(t, FCFS.Compare(early, &Job{ArrivalTime: 5}))
}

func TestCompare_SJF_ByRunTimeThenArrival(t *testing.T) {
	short := &Job{RunTime: 3, ArrivalTime: 9}
	long := &Job{RunTime: 8, ArrivalTime: 1}
	assert.Negative(t, SJF.Compare(short, long), "shorter run time wins despite later arrival")

	// Equal run times fall back to arrival order.
	a := &Job{RunTime: 5, ArrivalTime: 1}
	b := &Job{RunTime: 5, ArrivalTime: 2}
	assert.Negative(t, SJF.Compare(a, b))
}

func TestCompare_PSJF_ByRemainingNotOriginal(t *testing.T) {
	// A long job that has nearly finished outranks a short fresh job.
	mostlyDone := &Job{RunTime: 100, Remaining: 1, ArrivalTime: 0}
	fresh := &Job{RunTime: 5, Remaining: 5, ArrivalTime: 10}
	assert.Negative(t, PSJF.Compare(mostlyDone, fresh))
}

func TestCompare_Priority_LowerValueMoreUrgent(t *testing.T) {
	urgent := &Job{Priority: 1, ArrivalTime: 9}
	lax := &Job{Priority: 7, ArrivalTime: 0}
	for _, s := range []Scheme{PRI, PPRI} {
		assert.Negative(t, s.Compare(urgent, lax), s.String())
		assert.Positive(t, s.Compare(lax, urgent), s.String())
	}

	// Equal priorities fall back to arrival order.
	a := &Job{Priority: 3, ArrivalTime: 1}
	b := &Job{Priority: 3, ArrivalTime: 2}
	assert.Negative(t, PRI.Compare(a, b))
}

func TestCompare_RR_AlwaysEqual(t *testing.T) {
	a := &Job{ID: 1, ArrivalTime: 0, RunTime: 10, Priority: 0}
	b := &Job{ID: 2, ArrivalTime: 99, RunTime: 1, Priority: 9}
	assert.Zero(t, RR.Compare(a, b))
	assert.Zero(t, RR.Compare(b, a))
}

func TestCompare_Antisymmetric(t *testing.T) {
	a := &Job{ID: 1, ArrivalTime: 3, RunTime: 7, Remaining: 4, Priority: 2}
	b := &Job{ID: 2, ArrivalTime: 8, RunTime: 2, Remaining: 2, Priority: 5}
	for _, s := range []Scheme{FCFS, SJF, PSJF, PRI, PPRI} {
		ab := s.Compare(a, b)
		ba := s.Compare(b, a)
		if ab != 0 {
			assert.True(t, (ab < 0) != (ba < 0), "scheme %s not antisymmetric", s)
		} else {
			assert.Zero(t, ba, "scheme %s: zero must be symmetric", s)
		}
	}
}
