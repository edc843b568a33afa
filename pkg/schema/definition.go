package schema

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/automata/pkg/dfa"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/nfa"
)

// EpsilonAlias is accepted in place of "e" for epsilon transitions.
const EpsilonAlias = "ε"

// Definition is the serializable form of an automaton.
type Definition struct {
	States      []string        `json:"states" yaml:"states" mapstructure:"states"`
	Start       string          `json:"start" yaml:"start" mapstructure:"start"`
	Final       []string        `json:"final" yaml:"final" mapstructure:"final"`
	Transitions []TransitionDef `json:"transitions" yaml:"transitions" mapstructure:"transitions"`
}

// TransitionDef is one edge of a Definition.
type TransitionDef struct {
	From   string `json:"from" yaml:"from" mapstructure:"from"`
	Symbol string `json:"symbol" yaml:"symbol" mapstructure:"symbol"`
	To     string `json:"to" yaml:"to" mapstructure:"to"`
}

// ParseSymbol converts a one-character string into a symbol.
// "e" and "ε" denote epsilon.
func ParseSymbol(s string) (domain.Symbol, error) {
	if s == EpsilonAlias {
		return domain.Epsilon, nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("symbol must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return domain.Symbol(r), nil
}

// Build validates the definition and constructs the NFA it describes.
func (d Definition) Build() (*nfa.NFA, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	n := nfa.New()
	for _, s := range d.States {
		n.AddState(s)
	}
	if d.Start != "" {
		n.AddStartState(d.Start)
	}
	for _, s := range d.Final {
		n.AddFinalState(s)
	}
	for i, t := range d.Transitions {
		on, _ := ParseSymbol(t.Symbol)
		if err := n.AddTransition(t.From, on, t.To); err != nil {
			return nil, fmt.Errorf("transitions[%d]: %w", i, err)
		}
	}
	return n, nil
}

// BuildDFA constructs a DFA from the definition, enforcing determinism.
func (d Definition) BuildDFA() (*dfa.DFA, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	out := dfa.New()
	for _, s := range d.States {
		out.AddState(s)
	}
	if d.Start != "" {
		out.AddStartState(d.Start)
	}
	for _, s := range d.Final {
		out.AddFinalState(s)
	}
	for i, t := range d.Transitions {
		on, _ := ParseSymbol(t.Symbol)
		if err := out.AddTransition(t.From, on, t.To); err != nil {
			return nil, fmt.Errorf("transitions[%d]: %w", i, err)
		}
	}
	return out, nil
}

// FromAutomaton serializes an NFA or DFA.
func FromAutomaton(a domain.Automaton) Definition {
	var def Definition
	for _, s := range a.States() {
		def.States = append(def.States, s.Name())
	}
	if start, ok := a.StartState(); ok {
		def.Start = start.Name()
	}
	for _, s := range a.FinalStates() {
		def.Final = append(def.Final, s.Name())
	}
	for _, t := range a.Transitions() {
		def.Transitions = append(def.Transitions, TransitionDef{
			From:   t.From.Name(),
			Symbol: t.On.String(),
			To:     t.To.Name(),
		})
	}
	return def
}

// Fingerprint returns a stable hash of the definition's content.
// Declaration order does not matter; two definitions describing the same
// automaton share a fingerprint.
func (d Definition) Fingerprint() string {
	states := slices.Clone(d.States)
	states = append(states, d.Start)
	states = append(states, d.Final...)
	slices.Sort(states)
	states = slices.Compact(states)

	final := slices.Clone(d.Final)
	slices.Sort(final)
	final = slices.Compact(final)

	edges := make([]string, 0, len(d.Transitions))
	for _, t := range d.Transitions {
		symbol := t.Symbol
		if symbol == EpsilonAlias {
			symbol = domain.Epsilon.String()
		}
		edges = append(edges, t.From+"\x00"+symbol+"\x00"+t.To)
	}
	slices.Sort(edges)
	edges = slices.Compact(edges)

	h := sha256.New()
	fmt.Fprintf(h, "states:%s\n", strings.Join(states, "\x00"))
	fmt.Fprintf(h, "start:%s\n", d.Start)
	fmt.Fprintf(h, "final:%s\n", strings.Join(final, "\x00"))
	fmt.Fprintf(h, "edges:%s\n", strings.Join(edges, "\x01"))
	return hex.EncodeToString(h.Sum(nil))
}
