package tui

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/muesli/termenv"
)

const absent = "-"

// Columns returns the table header symbols: the alphabet, plus ε when the automaton uses it.
func Columns(a domain.Automaton) []domain.Symbol {
	cols := a.Alphabet()
	for _, t := range a.Transitions() {
		if t.On.IsEpsilon() {
			return append(cols, domain.Epsilon)
		}
	}
	return cols
}

// Cells maps each state and symbol to its rendered destination.
// A single destination prints bare, several print as {a,b}.
func Cells(a domain.Automaton) map[domain.State]map[domain.Symbol]string {
	dests := make(map[domain.State]map[domain.Symbol][]string)
	for _, t := range a.Transitions() {
		row, ok := dests[t.From]
		if !ok {
			row = make(map[domain.Symbol][]string)
			dests[t.From] = row
		}
		row[t.On] = append(row[t.On], t.To.Name())
	}

	cells := make(map[domain.State]map[domain.Symbol]string, len(dests))
	for s, row := range dests {
		cells[s] = make(map[domain.Symbol]string, len(row))
		for sym, names := range row {
			if len(names) == 1 {
				cells[s][sym] = names[0]
				continue
			}
			slices.Sort(names)
			cells[s][sym] = "{" + strings.Join(names, ",") + "}"
		}
	}
	return cells
}

// Marker flags start (→) and accepting (*) states.
func Marker(a domain.Automaton, s domain.State) string {
	var m string
	if start, ok := a.StartState(); ok && start == s {
		m += "→"
	}
	if a.IsFinal(s) {
		m += "*"
	}
	return m
}

// PrintTable writes the transition table of a, colouring start and accepting states.
func PrintTable(w io.Writer, a domain.Automaton, p termenv.Profile) {
	cols := Columns(a)
	cells := Cells(a)
	states := a.States()

	header := []string{"", "state"}
	for _, sym := range cols {
		if sym.IsEpsilon() {
			header = append(header, "ε")
			continue
		}
		header = append(header, sym.String())
	}

	rows := [][]string{header}
	for _, s := range states {
		row := []string{Marker(a, s), s.Name()}
		for _, sym := range cols {
			cell, ok := cells[s][sym]
			if !ok {
				cell = absent
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}

	widths := make([]int, len(header))
	for _, row := range rows {
		for i, c := range row {
			widths[i] = max(widths[i], utf8.RuneCountInString(c))
		}
	}

	for i, row := range rows {
		var sb strings.Builder
		for j, c := range row {
			if j > 0 {
				sb.WriteString("  ")
			}
			padded := c + strings.Repeat(" ", widths[j]-utf8.RuneCountInString(c))
			sb.WriteString(style(p, i, j, c, padded, a, states))
		}
		fmt.Fprintln(w, strings.TrimRight(sb.String(), " "))
	}
}

func style(p termenv.Profile, row, col int, raw, padded string, a domain.Automaton, states []domain.State) string {
	st := p.String(padded)
	switch {
	case row == 0:
		return st.Bold().String()
	case raw == absent:
		return st.Faint().String()
	case col == 1 && a.IsFinal(states[row-1]):
		return st.Foreground(p.Color("#34d399")).String()
	case col == 1:
		return st.Foreground(p.Color("#60a5fa")).String()
	}
	return padded
}
