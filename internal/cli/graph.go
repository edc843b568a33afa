package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/nfa"
	"github.com/muesli/termenv"
)

// GraphOptions contains all the configuration for the graph command.
type GraphOptions struct {
	Path      string
	DFA       bool
	DeadState bool
	Format    string
}

// Graph writes a diagram of the NFA at opts.Path, or of its DFA when opts.DFA is set.
func Graph(w io.Writer, opts GraphOptions) error {
	switch opts.Format {
	case "", FormatMermaid, FormatDOT:
	default:
		return fmt.Errorf("unknown graph format %q (want mermaid or dot)", opts.Format)
	}

	n, err := loadNFA(opts.Path)
	if err != nil {
		return err
	}

	var a domain.Automaton = n
	if opts.DFA {
		var convOpts []nfa.Option
		if opts.DeadState {
			convOpts = append(convOpts, nfa.WithDeadState())
		}
		d, err := n.DFA(convOpts...)
		if err != nil {
			return fmt.Errorf("conversion failed: %w", err)
		}
		a = d
	}

	format := opts.Format
	if format == "" {
		format = FormatMermaid
	}
	return render(w, a, format, termenv.Ascii)
}
