package nfa

import (
	"log/slog"

	"github.com/aretw0/automata/internal/logging"
)

// Option configures a single conversion.
type Option func(*converter)

// WithLogger sets a structured logger for conversion tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithDeadState makes the DFA transition function total: every undefined
// transition goes to one shared, non-accepting "[]" state that loops to
// itself on every symbol. Without it, undefined transitions stay absent.
func WithDeadState() Option {
	return func(c *converter) {
		c.deadState = true
	}
}

// WithStateLimit aborts the conversion with domain.ErrStateLimit once more
// than limit DFA states would be created. Zero or less means no limit.
func WithStateLimit(limit int) Option {
	return func(c *converter) {
		c.limit = limit
	}
}

func newConverter(opts ...Option) *converter {
	c := &converter{
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
