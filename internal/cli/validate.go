package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/automata/internal/validator"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/schema"
)

// Validate checks the definition at path and reports unreachable states as warnings.
func Validate(w io.Writer, path string) error {
	def, err := schema.Load(path)
	if err != nil {
		return err
	}
	n, err := def.Build()
	if err != nil {
		return err
	}
	if err := validator.Validate(n); err != nil {
		return err
	}

	warnUnreachable(w, n)
	return nil
}

// ValidateDFA checks a saved DFA document, such as the yaml or json output
// of convert: at most one destination per state and symbol, no epsilon
// moves, and a start state. Subset names like "[q0, q1]" are accepted.
func ValidateDFA(w io.Writer, path string) error {
	def, err := schema.Load(path)
	if err != nil {
		return err
	}
	d, err := def.BuildDFA()
	if err != nil {
		return err
	}
	if _, ok := d.StartState(); !ok {
		return domain.ErrNoStartState
	}

	warnUnreachable(w, d)
	return nil
}

func warnUnreachable(w io.Writer, a domain.Automaton) {
	for _, s := range validator.Unreachable(a) {
		fmt.Fprintf(w, "warning: state %q is unreachable from the start state\n", s.Name())
	}
}
