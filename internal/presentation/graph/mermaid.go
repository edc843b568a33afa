package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/automata/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart for an automaton.
// It applies semantic styling:
// - Start: entry arrow from a hidden point
// - Accepting: (((Double Circle)))
// - Default: ((Circle))
// Epsilon edges are labelled with ε.
func GenerateMermaid(a domain.Automaton) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	ids := nodeIDs(a)
	for _, s := range a.States() {
		opener, closer := "((", "))"
		if a.IsFinal(s) {
			opener, closer = "(((", ")))"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", ids[s], opener, escapeLabel(s.Name()), closer)
	}

	if start, ok := a.StartState(); ok {
		sb.WriteString("    start_[ ]:::hidden\n")
		fmt.Fprintf(&sb, "    start_ --> %s\n", ids[start])
		sb.WriteString("    classDef hidden display:none;\n")
	}

	for _, t := range a.Transitions() {
		fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n", ids[t.From], edgeLabel(t.On), ids[t.To])
	}

	return sb.String()
}

// nodeIDs assigns positional identifiers, since subset names are not valid Mermaid IDs.
func nodeIDs(a domain.Automaton) map[domain.State]string {
	ids := make(map[domain.State]string)
	for i, s := range a.States() {
		ids[s] = fmt.Sprintf("s%d", i)
	}
	return ids
}

func edgeLabel(sym domain.Symbol) string {
	if sym.IsEpsilon() {
		return "ε"
	}
	return escapeLabel(sym.String())
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "#quot;")
}
