package nfa

import "github.com/aretw0/automata/pkg/domain"

// EClosure returns every state reachable from s through zero or more epsilon
// transitions, s included. Epsilon cycles are safe.
func (n *NFA) EClosure(s domain.State) domain.StateSet {
	closure := domain.NewStateSet(s)
	stack := []domain.State{s}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for next := range n.delta[top][domain.Epsilon] {
			if closure.Add(next) {
				stack = append(stack, next)
			}
		}
	}
	return closure
}

// Move follows on from every member of set and returns the epsilon-closure
// of all destinations. The result is empty when no member has a transition
// on that symbol. Epsilon is not an input symbol and always yields the empty set.
func (n *NFA) Move(set domain.StateSet, on domain.Symbol) domain.StateSet {
	out := domain.NewStateSet()
	if on.IsEpsilon() {
		return out
	}
	for s := range set {
		for dst := range n.delta[s][on] {
			if out.Has(dst) {
				continue
			}
			out.AddAll(n.EClosure(dst))
		}
	}
	return out
}
