package schema

import (
	"fmt"

	"github.com/aretw0/automata/pkg/domain"
)

// Validate reports every structural problem of the definition at once.
// A missing start state is not reported here: the conversion rejects it
// with domain.ErrNoStartState.
func (d Definition) Validate() error {
	var errs []error
	known := make(map[string]bool, len(d.States))

	for i, s := range d.States {
		if s == "" {
			errs = append(errs, &ValidationError{Key: fmt.Sprintf("states[%d]", i), Reason: "empty state name"})
			continue
		}
		known[s] = true
	}
	if d.Start != "" {
		known[d.Start] = true
	}
	for i, s := range d.Final {
		if s == "" {
			errs = append(errs, &ValidationError{Key: fmt.Sprintf("final[%d]", i), Reason: "empty state name"})
			continue
		}
		known[s] = true
	}

	for i, t := range d.Transitions {
		key := fmt.Sprintf("transitions[%d]", i)
		if _, err := ParseSymbol(t.Symbol); err != nil {
			errs = append(errs, &ValidationError{Key: key + ".symbol", Reason: err.Error()})
		}
		if !known[t.From] {
			errs = append(errs, &ValidationError{Key: key + ".from", Reason: "undeclared state", Value: t.From, Err: domain.ErrUnknownState})
		}
		if !known[t.To] {
			errs = append(errs, &ValidationError{Key: key + ".to", Reason: "undeclared state", Value: t.To, Err: domain.ErrUnknownState})
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}
