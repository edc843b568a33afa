package domain

import (
	"slices"
	"strings"
)

// StateSet is an unordered set of states, used as a DFA macro-state.
// The zero value is an empty set ready for reads; use NewStateSet before Add.
type StateSet map[State]struct{}

// NewStateSet creates a set holding the given states.
func NewStateSet(states ...State) StateSet {
	set := make(StateSet, len(states))
	for _, s := range states {
		set[s] = struct{}{}
	}
	return set
}

// Add inserts s. It reports whether s was not already present.
func (set StateSet) Add(s State) bool {
	if _, ok := set[s]; ok {
		return false
	}
	set[s] = struct{}{}
	return true
}

// AddAll inserts every member of other.
func (set StateSet) AddAll(other StateSet) {
	for s := range other {
		set[s] = struct{}{}
	}
}

// Has reports membership.
func (set StateSet) Has(s State) bool {
	_, ok := set[s]
	return ok
}

// Len returns the number of members.
func (set StateSet) Len() int {
	return len(set)
}

// Equal reports whether both sets hold exactly the same states.
func (set StateSet) Equal(other StateSet) bool {
	if len(set) != len(other) {
		return false
	}
	for s := range set {
		if _, ok := other[s]; !ok {
			return false
		}
	}
	return true
}

// Intersects reports whether any member of set satisfies pred.
func (set StateSet) Intersects(pred func(State) bool) bool {
	for s := range set {
		if pred(s) {
			return true
		}
	}
	return false
}

// Sorted returns the members ordered by name.
func (set StateSet) Sorted() []State {
	out := make([]State, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b State) int {
		return strings.Compare(a.name, b.name)
	})
	return out
}

// Name returns the canonical identity of the set: member names sorted and
// joined by ", " inside brackets, e.g. "[q0, q1]". The empty set is "[]".
// Equal sets always yield equal names, whatever order they were built in.
func (set StateSet) Name() string {
	var sb strings.Builder
	sb.WriteString(setOpen)
	for i, s := range set.Sorted() {
		if i > 0 {
			sb.WriteString(setSeparator)
		}
		sb.WriteString(s.name)
	}
	sb.WriteString(setClose)
	return sb.String()
}

// String implements fmt.Stringer.
func (set StateSet) String() string {
	return set.Name()
}
