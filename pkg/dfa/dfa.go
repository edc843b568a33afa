package dfa

import (
	"fmt"
	"maps"
	"slices"

	"github.com/aretw0/automata/pkg/domain"
)

// DFA is a deterministic finite automaton.
// It carries no synchronization; do not share an instance across goroutines while writing.
type DFA struct {
	states   []domain.State
	index    map[domain.State]struct{}
	alphabet map[domain.Symbol]struct{}
	start    domain.State
	final    map[domain.State]struct{}
	delta    map[domain.State]map[domain.Symbol]domain.State
}

// New creates an empty DFA.
func New() *DFA {
	return &DFA{
		index:    make(map[domain.State]struct{}),
		alphabet: make(map[domain.Symbol]struct{}),
		final:    make(map[domain.State]struct{}),
		delta:    make(map[domain.State]map[domain.Symbol]domain.State),
	}
}

// AddState adds a state. Re-adding an existing name is a no-op.
func (d *DFA) AddState(name string) {
	s := domain.NewState(name)
	if _, ok := d.index[s]; ok {
		return
	}
	d.index[s] = struct{}{}
	d.states = append(d.states, s)
}

// AddStartState designates the start state, adding it when missing.
// A later call overrides the previous start.
func (d *DFA) AddStartState(name string) {
	d.AddState(name)
	d.start = domain.NewState(name)
}

// AddFinalState marks a state as accepting, adding it when missing.
func (d *DFA) AddFinalState(name string) {
	d.AddState(name)
	d.final[domain.NewState(name)] = struct{}{}
}

// AddTransition records from --on--> to.
// Both endpoints must exist. Epsilon is rejected, and so is a second
// destination for an already defined (from, on) pair. Re-adding the same
// edge is a no-op.
func (d *DFA) AddTransition(from string, on domain.Symbol, to string) error {
	src, dst := domain.NewState(from), domain.NewState(to)
	if _, ok := d.index[src]; !ok {
		return fmt.Errorf("transition from %q: %w", from, domain.ErrUnknownState)
	}
	if _, ok := d.index[dst]; !ok {
		return fmt.Errorf("transition to %q: %w", to, domain.ErrUnknownState)
	}
	if on.IsEpsilon() {
		return fmt.Errorf("transition %s -> %s: %w", from, to, domain.ErrEpsilonSymbol)
	}

	row, ok := d.delta[src]
	if !ok {
		row = make(map[domain.Symbol]domain.State)
		d.delta[src] = row
	}
	if existing, ok := row[on]; ok {
		if existing == dst {
			return nil
		}
		return fmt.Errorf("%s on %q already goes to %s, not %s: %w", from, on, existing, to, domain.ErrNondeterministic)
	}
	row[on] = dst
	d.alphabet[on] = struct{}{}
	return nil
}

// States returns all states in insertion order.
func (d *DFA) States() []domain.State {
	return slices.Clone(d.states)
}

// FinalStates returns the accepting states in insertion order.
func (d *DFA) FinalStates() []domain.State {
	out := make([]domain.State, 0, len(d.final))
	for _, s := range d.states {
		if _, ok := d.final[s]; ok {
			out = append(out, s)
		}
	}
	return out
}

// StartState returns the designated start state, if any.
func (d *DFA) StartState() (domain.State, bool) {
	return d.start, !d.start.IsZero()
}

// IsFinal reports whether s is accepting.
func (d *DFA) IsFinal(s domain.State) bool {
	_, ok := d.final[s]
	return ok
}

// HasState reports whether s was added.
func (d *DFA) HasState(s domain.State) bool {
	_, ok := d.index[s]
	return ok
}

// Alphabet returns the symbols used by transitions, sorted.
func (d *DFA) Alphabet() []domain.Symbol {
	return slices.Sorted(maps.Keys(d.alphabet))
}

// Transition returns the destination of from on symbol, if defined.
func (d *DFA) Transition(from domain.State, on domain.Symbol) (domain.State, bool) {
	dst, ok := d.delta[from][on]
	return dst, ok
}

// Transitions lists every edge, grouped by source in state order and by symbol.
func (d *DFA) Transitions() []domain.Transition {
	var out []domain.Transition
	for _, s := range d.states {
		row := d.delta[s]
		for _, on := range slices.Sorted(maps.Keys(row)) {
			out = append(out, domain.Transition{From: s, On: on, To: row[on]})
		}
	}
	return out
}

// NumStates returns the number of states.
func (d *DFA) NumStates() int {
	return len(d.states)
}
