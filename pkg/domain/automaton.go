package domain

// Automaton is the read-only shape shared by NFAs and DFAs.
// Presenters, validators and serializers work against it so they accept both.
type Automaton interface {
	States() []State
	FinalStates() []State
	StartState() (State, bool)
	Alphabet() []Symbol
	IsFinal(State) bool
	Transitions() []Transition
}
