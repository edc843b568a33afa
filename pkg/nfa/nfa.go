package nfa

import (
	"fmt"
	"maps"
	"slices"

	"github.com/aretw0/automata/pkg/domain"
)

// NFA is a nondeterministic finite automaton with epsilon transitions.
// It carries no synchronization; conversions running in parallel must use distinct instances.
type NFA struct {
	states   []domain.State
	index    map[domain.State]struct{}
	alphabet map[domain.Symbol]struct{}
	start    domain.State
	final    map[domain.State]struct{}
	delta    map[domain.State]map[domain.Symbol]domain.StateSet
}

// New creates an empty NFA.
func New() *NFA {
	return &NFA{
		index:    make(map[domain.State]struct{}),
		alphabet: make(map[domain.Symbol]struct{}),
		final:    make(map[domain.State]struct{}),
		delta:    make(map[domain.State]map[domain.Symbol]domain.StateSet),
	}
}

// AddState adds a state. Re-adding an existing name is a no-op.
func (n *NFA) AddState(name string) {
	s := domain.NewState(name)
	if _, ok := n.index[s]; ok {
		return
	}
	n.index[s] = struct{}{}
	n.states = append(n.states, s)
}

// AddStartState designates the start state, adding it when missing.
// A later call overrides the previous start.
func (n *NFA) AddStartState(name string) {
	n.AddState(name)
	n.start = domain.NewState(name)
}

// AddFinalState marks a state as accepting, adding it when missing.
func (n *NFA) AddFinalState(name string) {
	n.AddState(name)
	n.final[domain.NewState(name)] = struct{}{}
}

// AddTransition records from --on--> to. on may be domain.Epsilon.
// A second destination for the same (from, on) pair joins the existing set.
func (n *NFA) AddTransition(from string, on domain.Symbol, to string) error {
	src, dst := domain.NewState(from), domain.NewState(to)
	if _, ok := n.index[src]; !ok {
		return fmt.Errorf("transition from %q: %w", from, domain.ErrUnknownState)
	}
	if _, ok := n.index[dst]; !ok {
		return fmt.Errorf("transition to %q: %w", to, domain.ErrUnknownState)
	}

	row, ok := n.delta[src]
	if !ok {
		row = make(map[domain.Symbol]domain.StateSet)
		n.delta[src] = row
	}
	targets, ok := row[on]
	if !ok {
		targets = domain.NewStateSet()
		row[on] = targets
	}
	targets.Add(dst)

	if !on.IsEpsilon() {
		n.alphabet[on] = struct{}{}
	}
	return nil
}

// States returns all states in insertion order.
func (n *NFA) States() []domain.State {
	return slices.Clone(n.states)
}

// FinalStates returns the accepting states in insertion order.
func (n *NFA) FinalStates() []domain.State {
	out := make([]domain.State, 0, len(n.final))
	for _, s := range n.states {
		if _, ok := n.final[s]; ok {
			out = append(out, s)
		}
	}
	return out
}

// StartState returns the designated start state, if any.
func (n *NFA) StartState() (domain.State, bool) {
	return n.start, !n.start.IsZero()
}

// IsFinal reports whether s is accepting.
func (n *NFA) IsFinal(s domain.State) bool {
	_, ok := n.final[s]
	return ok
}

// HasState reports whether s was added.
func (n *NFA) HasState(s domain.State) bool {
	_, ok := n.index[s]
	return ok
}

// Alphabet returns the non-epsilon symbols used by transitions, sorted.
func (n *NFA) Alphabet() []domain.Symbol {
	return slices.Sorted(maps.Keys(n.alphabet))
}

// ToStates returns a copy of the destinations of from on symbol.
// The result is empty when no such transition exists.
func (n *NFA) ToStates(from domain.State, on domain.Symbol) domain.StateSet {
	out := domain.NewStateSet()
	out.AddAll(n.delta[from][on])
	return out
}

// Transitions lists every edge, epsilon edges included, grouped by source in
// state order, then by symbol, then by destination name.
func (n *NFA) Transitions() []domain.Transition {
	var out []domain.Transition
	for _, s := range n.states {
		row := n.delta[s]
		for _, on := range slices.Sorted(maps.Keys(row)) {
			for _, dst := range row[on].Sorted() {
				out = append(out, domain.Transition{From: s, On: on, To: dst})
			}
		}
	}
	return out
}
