package dsl

import (
	"fmt"

	"github.com/aretw0/automata/pkg/dfa"
	"github.com/aretw0/automata/pkg/nfa"
	"github.com/aretw0/automata/pkg/schema"
)

// Builder manages the automaton construction.
type Builder struct {
	order  []string
	states map[string]*StateBuilder
}

// New creates a new automaton builder.
func New() *Builder {
	return &Builder{
		states: make(map[string]*StateBuilder),
	}
}

// Add creates a new state.
// If the state already exists, it returns the existing builder.
func (b *Builder) Add(name string) *StateBuilder {
	if sb, ok := b.states[name]; ok {
		return sb
	}
	sb := &StateBuilder{name: name, builder: b}
	b.states[name] = sb
	b.order = append(b.order, name)
	return sb
}

// NFA compiles the recorded states into an NFA.
func (b *Builder) NFA() (*nfa.NFA, error) {
	n := nfa.New()

	var start string
	for _, name := range b.order {
		sb := b.states[name]
		n.AddState(name)
		if sb.start {
			if start != "" {
				return nil, fmt.Errorf("states %q and %q both marked start", start, name)
			}
			start = name
			n.AddStartState(name)
		}
		if sb.accept {
			n.AddFinalState(name)
		}
	}

	for _, name := range b.order {
		for _, e := range b.states[name].edges {
			n.AddState(e.to)
			if err := n.AddTransition(name, e.on, e.to); err != nil {
				return nil, fmt.Errorf("failed to add transition from %q: %w", name, err)
			}
		}
	}
	return n, nil
}

// DFA compiles the NFA and runs the subset construction on it.
func (b *Builder) DFA(opts ...nfa.Option) (*dfa.DFA, error) {
	n, err := b.NFA()
	if err != nil {
		return nil, err
	}
	return n.DFA(opts...)
}

// Definition compiles the NFA into its serializable form.
func (b *Builder) Definition() (schema.Definition, error) {
	n, err := b.NFA()
	if err != nil {
		return schema.Definition{}, err
	}
	return schema.FromAutomaton(n), nil
}
