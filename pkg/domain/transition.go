package domain

// Transition is a single labelled edge of an automaton.
// For NFAs, one (From, On) pair may appear several times with different To.
type Transition struct {
	From State
	On   Symbol
	To   State
}
