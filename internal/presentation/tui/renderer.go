package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// An empty style detects a light or dark background automatically.
func NewRenderer(style string) (func(string) (string, error), error) {
	opt := glamour.WithAutoStyle()
	if style != "" {
		opt = glamour.WithStandardStyle(style)
	}

	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(0))
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}

// Report describes an automaton as a Markdown document.
func Report(a domain.Automaton) string {
	var sb strings.Builder
	sb.WriteString("# Automaton\n\n")

	states := a.States()
	start := "(none)"
	if s, ok := a.StartState(); ok {
		start = "`" + s.Name() + "`"
	}

	fmt.Fprintf(&sb, "- **States:** %d\n", len(states))
	fmt.Fprintf(&sb, "- **Alphabet:** %s\n", joinSymbols(a.Alphabet()))
	fmt.Fprintf(&sb, "- **Start:** %s\n", start)
	fmt.Fprintf(&sb, "- **Accepting:** %s\n\n", joinStates(a.FinalStates()))

	sb.WriteString("## Transitions\n\n")
	cols := Columns(a)
	cells := Cells(a)

	sb.WriteString("| | state |")
	for _, sym := range cols {
		if sym.IsEpsilon() {
			sb.WriteString(" ε |")
			continue
		}
		fmt.Fprintf(&sb, " %s |", escapeCell(sym.String()))
	}
	sb.WriteString("\n|---|---|")
	sb.WriteString(strings.Repeat("---|", len(cols)))
	sb.WriteString("\n")

	for _, s := range states {
		fmt.Fprintf(&sb, "| %s | %s |", escapeCell(Marker(a, s)), escapeCell(s.Name()))
		for _, sym := range cols {
			cell, ok := cells[s][sym]
			if !ok {
				cell = absent
			}
			fmt.Fprintf(&sb, " %s |", escapeCell(cell))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func joinSymbols(syms []domain.Symbol) string {
	if len(syms) == 0 {
		return "(empty)"
	}
	parts := make([]string, len(syms))
	for i, s := range syms {
		parts[i] = "`" + s.String() + "`"
	}
	return strings.Join(parts, ", ")
}

func joinStates(states []domain.State) string {
	if len(states) == 0 {
		return "(none)"
	}
	parts := make([]string, len(states))
	for i, s := range states {
		parts[i] = "`" + s.Name() + "`"
	}
	return strings.Join(parts, ", ")
}

// escapeCell protects Markdown table syntax.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "*", `\*`)
}
