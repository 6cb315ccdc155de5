package sim

import (
	"testing"
)

func byArrival(a, b *Job) int {
	return int(a.ArrivalTime - b.ArrivalTime)
}

func TestWaitlist_Insert_ReturnsLandingPosition(t *testing.T) {
	// GIVEN an empty waitlist ordered by arrival time
	wl := NewWaitlist[*Job](byArrival)

	// WHEN jobs are inserted out of order
	// THEN each insert reports the position it landed at
	if pos := wl.Insert(&Job{ID: 0, ArrivalTime: 20}); pos != 0 {
		t.Errorf("first insert: got position %d, want 0", pos)
	}
	if pos := wl.Insert(&Job{ID: 1, ArrivalTime: 10}); pos != 0 {
		t.Errorf("earlier arrival: got position %d, want 0", pos)
	}
	if pos := wl.Insert(&Job{ID: 2, ArrivalTime: 30}); pos != 2 {
		t.Errorf("latest arrival: got position %d, want 2", pos)
	}
	if pos := wl.Insert(&Job{ID: 3, ArrivalTime: 15}); pos != 1 {
		t.Errorf("middle arrival: got position %d, want 1", pos)
	}
}

func TestWaitlist_Ordering_NonDecreasingUnderComparator(t *testing.T) {
	// GIVEN a waitlist with arrivals inserted in scrambled order
	wl := NewWaitlist[*Job](byArrival)
	for _, at := range []int64{50, 10, 40, 10, 30, 20, 10} {
		wl.Insert(&Job{ArrivalTime: at})
	}

	// THEN At(i) is non-decreasing in comparator order for all i
	for i := 0; i < wl.Len()-1; i++ {
		a, _ := wl.At(i)
		b, _ := wl.At(i + 1)
		if byArrival(a, b) > 0 {
			t.Errorf("order violated at %d: %d before %d", i, a.ArrivalTime, b.ArrivalTime)
		}
	}
}

func TestWaitlist_Insert_EqualKeysKeepInsertionOrder(t *testing.T) {
	// GIVEN jobs A and B with equal comparator keys
	wl := NewWaitlist[*Job](byArrival)
	jobA := &Job{ID: 1, ArrivalTime: 10}
	jobB := &Job{ID: 2, ArrivalTime: 10}

	// WHEN A is inserted before B
	wl.Insert(jobA)
	pos := wl.Insert(jobB)

	// THEN B lands after A (stable insertion)
	if pos != 1 {
		t.Errorf("equal-key insert: got position %d, want 1", pos)
	}
	head, _ := wl.At(0)
	if head != jobA {
		t.Errorf("head: got job %d, want job %d", head.ID, jobA.ID)
	}
}

func TestWaitlist_RemoveAll_IdentityNotComparator(t *testing.T) {
	// GIVEN jobs A and B that compare equal but are distinct
	wl := NewWaitlist[*Job](byArrival)
	jobA := &Job{ID: 1, ArrivalTime: 10}
	jobB := &Job{ID: 2, ArrivalTime: 10}
	wl.Insert(jobA)
	wl.Insert(jobB)

	// WHEN A is removed by identity
	removed := wl.RemoveAll(jobA)

	// THEN only A is gone and B is still present
	if removed != 1 {
		t.Errorf("RemoveAll: removed %d, want 1", removed)
	}
	if wl.Len() != 1 {
		t.Fatalf("Len after removal: got %d, want 1", wl.Len())
	}
	remaining, _ := wl.Peek()
	if remaining != jobB {
		t.Errorf("remaining job: got %d, want %d", remaining.ID, jobB.ID)
	}
}

func TestWaitlist_RemoveAll_RemovesEveryOccurrence(t *testing.T) {
	// GIVEN the same job inserted twice among others
	wl := NewWaitlist[*Job](byArrival)
	dup := &Job{ID: 1, ArrivalTime: 10}
	other := &Job{ID: 2, ArrivalTime: 5}
	wl.Insert(dup)
	wl.Insert(other)
	wl.Insert(dup)

	// WHEN the duplicated job is removed
	removed := wl.RemoveAll(dup)

	// THEN both occurrences are gone
	if removed != 2 {
		t.Errorf("RemoveAll: removed %d, want 2", removed)
	}
	if wl.Len() != 1 {
		t.Errorf("Len after removal: got %d, want 1", wl.Len())
	}
}

func TestWaitlist_PollAndPeek(t *testing.T) {
	// GIVEN a waitlist with two jobs
	wl := NewWaitlist[*Job](byArrival)
	first := &Job{ID: 1, ArrivalTime: 10}
	second := &Job{ID: 2, ArrivalTime: 20}
	wl.Insert(second)
	wl.Insert(first)

	// WHEN Peek then Poll are called
	peeked, ok := wl.Peek()
	if !ok || peeked != first {
		t.Fatalf("Peek: got %v, want job %d", peeked, first.ID)
	}
	polled, ok := wl.Poll()

	// THEN Poll returns the head and removes it
	if !ok || polled != first {
		t.Fatalf("Poll: got %v, want job %d", polled, first.ID)
	}
	if wl.Len() != 1 {
		t.Errorf("Len after poll: got %d, want 1", wl.Len())
	}
}

func TestWaitlist_EmptyAccessorsReturnFalse(t *testing.T) {
	// GIVEN an empty waitlist
	wl := NewWaitlist[*Job](byArrival)

	// THEN every read reports empty rather than panicking
	if _, ok := wl.Peek(); ok {
		t.Error("Peek on empty: got ok=true")
	}
	if _, ok := wl.Poll(); ok {
		t.Error("Poll on empty: got ok=true")
	}
	if _, ok := wl.At(0); ok {
		t.Error("At(0) on empty: got ok=true")
	}
	if _, ok := wl.RemoveAt(0); ok {
		t.Error("RemoveAt(0) on empty: got ok=true")
	}
}

func TestWaitlist_At_OutOfRange(t *testing.T) {
	// GIVEN a waitlist with one job
	wl := NewWaitlist[*Job](byArrival)
	wl.Insert(&Job{ID: 1, ArrivalTime: 10})

	// THEN indexes at or past size report empty
	if _, ok := wl.At(1); ok {
		t.Error("At(size): got ok=true")
	}
	if _, ok := wl.At(-1); ok {
		t.Error("At(-1): got ok=true")
	}
}

func TestWaitlist_RemoveAt_ShiftsLaterElements(t *testing.T) {
	// GIVEN jobs at arrivals 10, 20, 30
	wl := NewWaitlist[*Job](byArrival)
	j1 := &Job{ID: 1, ArrivalTime: 10}
	j2 := &Job{ID: 2, ArrivalTime: 20}
	j3 := &Job{ID: 3, ArrivalTime: 30}
	wl.Insert(j1)
	wl.Insert(j2)
	wl.Insert(j3)

	// WHEN the middle element is removed
	removed, ok := wl.RemoveAt(1)

	// THEN it is returned and the later element shifts up
	if !ok || removed != j2 {
		t.Fatalf("RemoveAt(1): got %v, want job %d", removed, j2.ID)
	}
	at1, _ := wl.At(1)
	if at1 != j3 {
		t.Errorf("At(1) after removal: got job %d, want job %d", at1.ID, j3.ID)
	}
	if wl.Len() != 2 {
		t.Errorf("Len after removal: got %d, want 2", wl.Len())
	}
}

func TestWaitlist_Clear_Empties(t *testing.T) {
	// GIVEN a waitlist with jobs
	wl := NewWaitlist[*Job](byArrival)
	wl.Insert(&Job{ID: 1, ArrivalTime: 10})
	wl.Insert(&Job{ID: 2, ArrivalTime: 20})

	// WHEN Clear is called
	wl.Clear()

	// THEN the waitlist is empty and usable again
	if wl.Len() != 0 {
		t.Errorf("Len after clear: got %d, want 0", wl.Len())
	}
	if pos := wl.Insert(&Job{ID: 3, ArrivalTime: 5}); pos != 0 {
		t.Errorf("insert after clear: got position %d, want 0", pos)
	}
}
