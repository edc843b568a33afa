package validator

import (
	"fmt"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/schema"
)

// Validate checks that a is ready for subset construction: it has a start
// state, every state name is usable inside a subset name, and every
// transition and accepting state refers to a known state.
// All problems are returned at once as a *schema.AggregateError.
func Validate(a domain.Automaton) error {
	var errs []error

	known := make(map[domain.State]bool)
	for _, s := range a.States() {
		known[s] = true
		if !domain.ValidStateName(s.Name()) {
			errs = append(errs, &schema.ValidationError{
				Key:    "states",
				Reason: "name is empty or contains a reserved character",
				Value:  s.Name(),
				Err:    domain.ErrInvalidStateName,
			})
		}
	}

	if _, ok := a.StartState(); !ok {
		errs = append(errs, &schema.ValidationError{Key: "start", Reason: "no start state", Err: domain.ErrNoStartState})
	}

	for _, s := range a.FinalStates() {
		if !known[s] {
			errs = append(errs, &schema.ValidationError{Key: "final", Reason: "undeclared state", Value: s.Name(), Err: domain.ErrUnknownState})
		}
	}

	for _, t := range a.Transitions() {
		for _, end := range []domain.State{t.From, t.To} {
			if !known[end] {
				errs = append(errs, &schema.ValidationError{
					Key:    fmt.Sprintf("transition %s --%s--> %s", t.From, t.On, t.To),
					Reason: "undeclared state",
					Value:  end.Name(),
					Err:    domain.ErrUnknownState,
				})
			}
		}
	}

	if len(errs) > 0 {
		return &schema.AggregateError{Errors: errs}
	}
	return nil
}

// Unreachable lists, in declaration order, the states no path from the start state reaches.
// Without a start state every state is unreachable.
func Unreachable(a domain.Automaton) []domain.State {
	edges := make(map[domain.State][]domain.State)
	for _, t := range a.Transitions() {
		edges[t.From] = append(edges[t.From], t.To)
	}

	visited := make(map[domain.State]bool)
	if start, ok := a.StartState(); ok {
		queue := []domain.State{start}
		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]

			if visited[current] {
				continue
			}
			visited[current] = true

			for _, next := range edges[current] {
				if !visited[next] {
					queue = append(queue, next)
				}
			}
		}
	}

	var out []domain.State
	for _, s := range a.States() {
		if !visited[s] {
			out = append(out, s)
		}
	}
	return out
}
