package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/automata/internal/presentation/graph"
	"github.com/aretw0/automata/internal/presentation/tui"
	"github.com/aretw0/automata/pkg/dfa"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/nfa"
	"github.com/aretw0/automata/pkg/schema"
	"github.com/muesli/termenv"
)

// Output formats accepted by the convert and graph commands.
const (
	FormatText     = "text"
	FormatTable    = "table"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatMermaid  = "mermaid"
	FormatDOT      = "dot"
	FormatMarkdown = "markdown"
)

// ConvertOptions contains all the configuration for the convert command.
type ConvertOptions struct {
	Path      string
	Format    string
	DeadState bool
	MaxStates int
	Profile   termenv.Profile
	Logger    *slog.Logger
}

// Convert loads the NFA at opts.Path, runs the subset construction and writes the DFA to w.
func Convert(w io.Writer, opts ConvertOptions) error {
	n, err := loadNFA(opts.Path)
	if err != nil {
		return err
	}

	d, err := n.DFA(conversionOptions(opts)...)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	if opts.Logger != nil {
		opts.Logger.Info("Converted", "path", opts.Path, "nfa_states", len(n.States()), "dfa_states", d.NumStates())
	}
	return render(w, d, opts.Format, opts.Profile)
}

func conversionOptions(opts ConvertOptions) []nfa.Option {
	var out []nfa.Option
	if opts.Logger != nil {
		out = append(out, nfa.WithLogger(opts.Logger))
	}
	if opts.DeadState {
		out = append(out, nfa.WithDeadState())
	}
	if opts.MaxStates > 0 {
		out = append(out, nfa.WithStateLimit(opts.MaxStates))
	}
	return out
}

func loadNFA(path string) (*nfa.NFA, error) {
	def, err := schema.Load(path)
	if err != nil {
		return nil, err
	}
	n, err := def.Build()
	if err != nil {
		return nil, fmt.Errorf("invalid definition %s: %w", path, err)
	}
	return n, nil
}

func render(w io.Writer, a domain.Automaton, format string, p termenv.Profile) error {
	switch format {
	case "", FormatText:
		if d, ok := a.(*dfa.DFA); ok {
			_, err := fmt.Fprint(w, d.String())
			return err
		}
		tui.PrintTable(w, a, p)
		return nil
	case FormatTable:
		tui.PrintTable(w, a, p)
		return nil
	case FormatJSON, FormatYAML:
		data, err := schema.Marshal(schema.FromAutomaton(a), format)
		if err != nil {
			return err
		}
		if format == FormatJSON {
			data = append(data, '\n')
		}
		_, err = w.Write(data)
		return err
	case FormatMermaid:
		_, err := fmt.Fprint(w, graph.GenerateMermaid(a))
		return err
	case FormatDOT:
		_, err := fmt.Fprint(w, graph.GenerateDOT(a))
		return err
	case FormatMarkdown:
		md := tui.Report(a)
		if p == termenv.Ascii {
			_, err := fmt.Fprint(w, md)
			return err
		}
		renderMarkdown, err := tui.NewRenderer("")
		if err != nil {
			return err
		}
		out, err := renderMarkdown(md)
		if err != nil {
			return fmt.Errorf("failed to render markdown: %w", err)
		}
		_, err = fmt.Fprint(w, out)
		return err
	}
	return fmt.Errorf("unknown format %q", format)
}
