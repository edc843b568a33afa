package graph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/automata/pkg/domain"
)

// GenerateDOT renders an automaton in Graphviz DOT syntax.
func GenerateDOT(a domain.Automaton) string {
	var sb strings.Builder
	sb.WriteString("digraph automaton {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=circle];\n")

	for _, s := range a.States() {
		shape := "circle"
		if a.IsFinal(s) {
			shape = "doublecircle"
		}
		fmt.Fprintf(&sb, "  %s [shape=%s];\n", strconv.Quote(s.Name()), shape)
	}

	if start, ok := a.StartState(); ok {
		sb.WriteString("  __start [shape=point];\n")
		fmt.Fprintf(&sb, "  __start -> %s;\n", strconv.Quote(start.Name()))
	}

	for _, t := range a.Transitions() {
		label := t.On.String()
		if t.On.IsEpsilon() {
			label = "ε"
		}
		fmt.Fprintf(&sb, "  %s -> %s [label=%s];\n",
			strconv.Quote(t.From.Name()), strconv.Quote(t.To.Name()), strconv.Quote(label))
	}

	sb.WriteString("}\n")
	return sb.String()
}
