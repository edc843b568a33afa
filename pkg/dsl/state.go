package dsl

import "github.com/aretw0/automata/pkg/domain"

type edge struct {
	on domain.Symbol
	to string
}

// StateBuilder provides a fluent API for configuring a state.
type StateBuilder struct {
	name    string
	start   bool
	accept  bool
	edges   []edge
	builder *Builder
}

// Start marks the state as the start state.
func (s *StateBuilder) Start() *StateBuilder {
	s.start = true
	return s
}

// Accept marks the state as accepting.
func (s *StateBuilder) Accept() *StateBuilder {
	s.accept = true
	return s
}

// On adds a transition on sym to every target. Targets not yet added are declared implicitly.
func (s *StateBuilder) On(sym domain.Symbol, targets ...string) *StateBuilder {
	for _, to := range targets {
		s.edges = append(s.edges, edge{on: sym, to: to})
	}
	return s
}

// Epsilon adds epsilon transitions to every target.
func (s *StateBuilder) Epsilon(targets ...string) *StateBuilder {
	return s.On(domain.Epsilon, targets...)
}

// Add switches to another state, so a whole machine can be one chain.
func (s *StateBuilder) Add(name string) *StateBuilder {
	return s.builder.Add(name)
}
