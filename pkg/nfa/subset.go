package nfa

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/automata/pkg/dfa"
	"github.com/aretw0/automata/pkg/domain"
)

type converter struct {
	logger    *slog.Logger
	deadState bool
	limit     int
}

// DFA builds the equivalent DFA by subset construction.
//
// Each DFA state stands for a set of NFA states and is named after it (see
// domain.StateSet.Name). Exploration is breadth-first from the
// epsilon-closure of the start state; only reachable sets are created.
// The NFA is only read. Every call allocates its own bookkeeping.
func (n *NFA) DFA(opts ...Option) (*dfa.DFA, error) {
	start, ok := n.StartState()
	if !ok {
		return nil, domain.ErrNoStartState
	}
	for _, s := range n.states {
		if !domain.ValidStateName(s.Name()) {
			return nil, fmt.Errorf("state %q: %w", s.Name(), domain.ErrInvalidStateName)
		}
	}

	c := newConverter(opts...)
	return c.run(n, start)
}

func (c *converter) run(n *NFA, start domain.State) (*dfa.DFA, error) {
	out := dfa.New()
	alphabet := n.Alphabet()
	created := make(map[string]struct{})
	visited := make(map[string]struct{})

	// materialize creates the DFA state for set unless it already exists.
	materialize := func(set domain.StateSet) (string, error) {
		name := set.Name()
		if _, ok := created[name]; ok {
			return name, nil
		}
		if c.limit > 0 && len(created) >= c.limit {
			return "", fmt.Errorf("creating %s: %w (limit %d)", name, domain.ErrStateLimit, c.limit)
		}
		created[name] = struct{}{}
		accepting := set.Intersects(n.IsFinal)
		if accepting {
			out.AddFinalState(name)
		} else {
			out.AddState(name)
		}
		c.logger.Debug("dfa state created", "state", name, "accepting", accepting)
		return name, nil
	}

	initial := n.EClosure(start)
	startName, err := materialize(initial)
	if err != nil {
		return nil, err
	}
	out.AddStartState(startName)

	queue := []domain.StateSet{initial}
	queued := map[string]struct{}{startName: {}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		name, err := materialize(current)
		if err != nil {
			return nil, err
		}
		if _, ok := visited[name]; ok {
			continue
		}
		visited[name] = struct{}{}

		for _, on := range alphabet {
			next := n.Move(current, on)
			if next.Len() == 0 && !c.deadState {
				continue
			}

			nextName, err := materialize(next)
			if err != nil {
				return nil, err
			}
			if err := out.AddTransition(name, on, nextName); err != nil {
				return nil, fmt.Errorf("wiring %s on %q: %w", name, on, err)
			}

			if _, ok := visited[nextName]; ok {
				continue
			}
			if _, ok := queued[nextName]; ok {
				continue
			}
			queued[nextName] = struct{}{}
			queue = append(queue, next)
		}
	}

	c.logger.Debug("subset construction finished",
		"nfa_states", len(n.states),
		"dfa_states", out.NumStates(),
		"alphabet", len(alphabet),
	)
	return out, nil
}
