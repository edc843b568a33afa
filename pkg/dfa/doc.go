/*
Package dfa provides the deterministic finite automaton produced by subset construction.

A DFA maps every (state, symbol) pair to at most one destination. Missing
entries mean "no continuation" and are not errors. The builder surface mirrors
the NFA one so that the same loaders and presenters can work with both.
*/
package dfa
