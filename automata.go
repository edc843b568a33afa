package automata

import (
	"fmt"

	"github.com/aretw0/automata/pkg/dfa"
	"github.com/aretw0/automata/pkg/nfa"
	"github.com/aretw0/automata/pkg/schema"
)

// Version is the release of this module. Builds may override it with -ldflags.
var Version = "0.1.0"

// ConvertFile loads the NFA definition at path (YAML, or JSON by extension)
// and returns its DFA.
func ConvertFile(path string, opts ...nfa.Option) (*dfa.DFA, error) {
	def, err := schema.Load(path)
	if err != nil {
		return nil, err
	}
	return Convert(def, opts...)
}

// Convert builds the NFA described by def and returns its DFA.
func Convert(def schema.Definition, opts ...nfa.Option) (*dfa.DFA, error) {
	n, err := def.Build()
	if err != nil {
		return nil, fmt.Errorf("invalid definition: %w", err)
	}
	return n.DFA(opts...)
}
