package domain

import "strings"

// Symbol is a single input character.
type Symbol rune

// Epsilon is the reserved marker for transitions that consume no input.
// It is tracked in its own slot of the NFA transition relation and never
// appears in an alphabet.
const Epsilon Symbol = 'e'

// Delimiters used by StateSet.Name. State names containing any of them
// would make set names ambiguous.
const (
	setOpen      = "["
	setClose     = "]"
	setSeparator = ", "
)

// String implements fmt.Stringer.
func (s Symbol) String() string {
	return string(s)
}

// IsEpsilon reports whether s is the epsilon marker.
func (s Symbol) IsEpsilon() bool {
	return s == Epsilon
}

// ValidStateName reports whether name can take part in a canonical set name.
func ValidStateName(name string) bool {
	return name != "" && !strings.ContainsAny(name, "[],")
}
