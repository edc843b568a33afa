// Package schema provides the serializable form of an automaton definition.
//
// A Definition lists states, the start state, the accepting states and the
// transitions of an NFA or a DFA. It is what the CLI reads from disk, what
// the HTTP and MCP adapters accept on the wire and what DFA stores persist.
//
// Definitions can be written in YAML:
//
//	states: [q0, q1]
//	start: q0
//	final: [q1]
//	transitions:
//	  - {from: q0, symbol: a, to: q0}
//	  - {from: q0, symbol: b, to: q1}
//	  - {from: q1, symbol: e, to: q0}
//
// or the equivalent JSON. The symbol "e" (or "ε") denotes an epsilon transition.
package schema
