package domain

import "errors"

// ErrUnknownState is returned when a transition references a state that was never added.
var ErrUnknownState = errors.New("unknown state")

// ErrNoStartState is returned when conversion runs before a start state is configured.
var ErrNoStartState = errors.New("start state not set")

// ErrNondeterministic is returned when a DFA transition would gain a second destination.
var ErrNondeterministic = errors.New("transition already defined")

// ErrEpsilonSymbol is returned when an epsilon transition is added to a DFA.
var ErrEpsilonSymbol = errors.New("epsilon transition not allowed in DFA")

// ErrInvalidStateName is returned when a state name cannot be used in a canonical set name.
var ErrInvalidStateName = errors.New("invalid state name")

// ErrStateLimit is returned when a conversion exceeds its configured state budget.
var ErrStateLimit = errors.New("dfa state limit exceeded")

// ErrNotFound is returned when a stored DFA cannot be found.
var ErrNotFound = errors.New("dfa not found")
