package domain

// State is a named vertex of an automaton.
// It is a value type: states compare equal iff their names are equal.
type State struct {
	name string
}

// NewState creates a state with the given name.
func NewState(name string) State {
	return State{name: name}
}

// Name returns the identifier of the state.
func (s State) Name() string {
	return s.name
}

// String implements fmt.Stringer.
func (s State) String() string {
	return s.name
}

// IsZero reports whether s is the unset state.
func (s State) IsZero() bool {
	return s.name == ""
}
