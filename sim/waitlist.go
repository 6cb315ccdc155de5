// Implements the Waitlist, the ordered list of jobs waiting for a core.
// Jobs are kept sorted under the scheme's comparator; ties keep insertion order.

package sim

import (
	"fmt"
	"strings"
)

// CompareFunc defines a total order over elements: negative means a orders
// before b, zero means the two are tied, positive means a orders after b.
type CompareFunc[T any] func(a, b T) int

// Waitlist is a comparator-ordered sequence of elements. The comparator is
// fixed at construction; for any two adjacent entries a (earlier) and b
// (later), cmp(a, b) <= 0 holds. Elements that compare equal keep their
// insertion order among themselves.
//
// The element type must be comparable so that removal can use identity (==)
// rather than the comparator: two distinct jobs may be tied under the active
// scheme, and removing one must never take the other with it.
type Waitlist[T comparable] struct {
	items []T
	cmp   CompareFunc[T]
}

// NewWaitlist creates an empty Waitlist ordered by cmp.
func NewWaitlist[T comparable](cmp CompareFunc[T]) *Waitlist[T] {
	if cmp == nil {
		panic("NewWaitlist: cmp must not be nil")
	}
	return &Waitlist[T]{cmp: cmp}
}

// Insert places item at the first position whose occupant it strictly
// precedes, so equal-key elements land after existing ones (stable).
// Returns the zero-based position the item landed at.
func (wl *Waitlist[T]) Insert(item T) int {
	for i, existing := range wl.items {
		if wl.cmp(item, existing) < 0 {
			wl.items = append(wl.items, item)
			copy(wl.items[i+1:], wl.items[i:])
			wl.items[i] = item
			return i
		}
	}
	wl.items = append(wl.items, item)
	return len(wl.items) - 1
}

// Peek returns the front element without removing it.
// The second return value is false if the list is empty.
func (wl *Waitlist[T]) Peek() (T, bool) {
	if len(wl.items) == 0 {
		var zero T
		return zero, false
	}
	return wl.items[0], true
}

// Poll removes and returns the front element.
// The second return value is false if the list is empty.
func (wl *Waitlist[T]) Poll() (T, bool) {
	if len(wl.items) == 0 {
		var zero T
		return zero, false
	}
	item := wl.items[0]
	wl.items = wl.items[1:]
	return item, true
}

// At returns the element at position index without removing it.
// The second return value is false if index is out of range.
func (wl *Waitlist[T]) At(index int) (T, bool) {
	if index < 0 || index >= len(wl.items) {
		var zero T
		return zero, false
	}
	return wl.items[index], true
}

// RemoveAll removes every element identical (==) to item and returns how many
// were removed. The comparator is never consulted here.
func (wl *Waitlist[T]) RemoveAll(item T) int {
	removed := 0
	kept := wl.items[:0]
	for _, existing := range wl.items {
		if existing == item {
			removed++
			continue
		}
		kept = append(kept, existing)
	}
	// Release the trailing slots so removed elements are not retained.
	var zero T
	for i := len(kept); i < len(wl.items); i++ {
		wl.items[i] = zero
	}
	wl.items = kept
	return removed
}

// RemoveAt removes and returns the element at position index, shifting later
// elements up one spot. The second return value is false if index is out of
// range.
func (wl *Waitlist[T]) RemoveAt(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(wl.items) {
		return zero, false
	}
	item := wl.items[index]
	copy(wl.items[index:], wl.items[index+1:])
	wl.items[len(wl.items)-1] = zero
	wl.items = wl.items[:len(wl.items)-1]
	return item, true
}

// Len returns the number of elements in the list.
func (wl *Waitlist[T]) Len() int {
	return len(wl.items)
}

// Clear empties the list and releases all retained elements.
func (wl *Waitlist[T]) Clear() {
	var zero T
	for i := range wl.items {
		wl.items[i] = zero
	}
	wl.items = wl.items[:0]
}

func (wl *Waitlist[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, val := range wl.items {
		sb.WriteString(fmt.Sprint(val))
		if i < len(wl.items)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
