package dfa

import (
	"fmt"
	"strings"
)

// String renders the DFA as its five components: Q, Sigma, the delta table,
// q0 and F. Undefined transitions show as "-".
func (d *DFA) String() string {
	var sb strings.Builder
	alphabet := d.Alphabet()

	sb.WriteString("Q = { ")
	for _, s := range d.states {
		sb.WriteString(s.Name() + " ")
	}
	sb.WriteString("}\n")

	sb.WriteString("Sigma = { ")
	for _, on := range alphabet {
		sb.WriteString(on.String() + " ")
	}
	sb.WriteString("}\n")

	sb.WriteString("delta =\n\t")
	for _, on := range alphabet {
		sb.WriteString("\t" + on.String())
	}
	sb.WriteString("\n")
	for _, s := range d.states {
		sb.WriteString("\t" + s.Name())
		for _, on := range alphabet {
			dst, ok := d.Transition(s, on)
			cell := "-"
			if ok {
				cell = dst.Name()
			}
			sb.WriteString("\t" + cell)
		}
		sb.WriteString("\n")
	}

	start, _ := d.StartState()
	fmt.Fprintf(&sb, "q0 = %s\n", start)

	sb.WriteString("F = { ")
	for _, s := range d.FinalStates() {
		sb.WriteString(s.Name() + " ")
	}
	sb.WriteString("}\n")
	return sb.String()
}
