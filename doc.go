/*
Package automata converts nondeterministic finite automata (NFAs) into
equivalent deterministic finite automata (DFAs) with the subset construction.

# Concept

Every DFA state stands for a set of NFA states. Its name is the canonical
rendering of that set: the member names sorted and joined with ", " inside
square brackets, such as "[q0, q1]". The DFA start state is the
epsilon-closure of the NFA start state, and a DFA state accepts when any of
its members accepts. Only states reachable from the start are built.

The symbol 'e' (domain.Epsilon) marks epsilon transitions and never joins
the alphabet.

# Layout

  - pkg/nfa and pkg/dfa: the automata and the conversion engine.
  - pkg/schema: YAML and JSON definition documents.
  - pkg/service: cached conversions over a ports.DFAStore (memory or Redis).
  - pkg/adapters/http and pkg/adapters/mcp: the HTTP API and MCP tools.
  - pkg/dsl: a fluent builder for NFAs in Go code.

# Usage

	n := nfa.New()
	n.AddStartState("q0")
	n.AddFinalState("q1")
	_ = n.AddTransition("q0", 'a', "q0")
	_ = n.AddTransition("q0", 'b', "q1")

	d, err := n.DFA()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(d)

Definitions stored on disk are converted with ConvertFile:

	d, err := automata.ConvertFile("machine.yaml", nfa.WithDeadState())
*/
package automata
