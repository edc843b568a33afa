/*
Package domain contains the core value types shared by both automaton flavors.

It defines the vocabulary used by the NFA and DFA graphs and by the subset
construction engine. This package is kept pure and free of external
dependencies like I/O or persistence.

# Key Entities

  - State: a named vertex. Two states are equal iff their names are equal.
  - Symbol: a single input character. Epsilon is reserved and never part of an alphabet.
  - Transition: a labelled edge, used to enumerate the transition relation.
  - StateSet: a set of NFA states (a macro-state) with a canonical, order-independent name.
*/
package domain
