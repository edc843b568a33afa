/*
Package nfa provides the nondeterministic finite automaton and the subset
construction that turns it into a DFA.

States, accepting states and transitions are added incrementally through the
builder methods. Transitions on domain.Epsilon are kept apart from ordinary
symbols and never enter the alphabet.

	n := nfa.New()
	n.AddStartState("q0")
	n.AddFinalState("q1")
	_ = n.AddTransition("q0", 'a', "q0")
	_ = n.AddTransition("q0", 'b', "q1")

	d, err := n.DFA()

The DFA states are named after the NFA-state sets they represent, e.g. "[q0]"
and "[q1]". See domain.StateSet.Name for the naming rule.
*/
package nfa
