package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/ports"
	"github.com/aretw0/automata/pkg/schema"
)

type loggingMiddleware struct {
	next   ports.DFAStore
	logger *slog.Logger
}

// NewLoggingMiddleware logs every store call at debug level, and failures at warn.
// A miss (domain.ErrNotFound) is not a failure.
func NewLoggingMiddleware(logger *slog.Logger) Middleware {
	return func(next ports.DFAStore) ports.DFAStore {
		return &loggingMiddleware{next: next, logger: logger}
	}
}

func (m *loggingMiddleware) Save(ctx context.Context, key string, def *schema.Definition) error {
	started := time.Now()
	err := m.next.Save(ctx, key, def)
	m.log(ctx, "save", key, started, err, "states", len(def.States))
	return err
}

func (m *loggingMiddleware) Load(ctx context.Context, key string) (*schema.Definition, error) {
	started := time.Now()
	def, err := m.next.Load(ctx, key)
	m.log(ctx, "load", key, started, err, "hit", err == nil)
	return def, err
}

func (m *loggingMiddleware) Delete(ctx context.Context, key string) error {
	started := time.Now()
	err := m.next.Delete(ctx, key)
	m.log(ctx, "delete", key, started, err)
	return err
}

func (m *loggingMiddleware) List(ctx context.Context) ([]string, error) {
	started := time.Now()
	keys, err := m.next.List(ctx)
	m.log(ctx, "list", "", started, err, "count", len(keys))
	return keys, err
}

func (m *loggingMiddleware) log(ctx context.Context, op, key string, started time.Time, err error, attrs ...any) {
	attrs = append(attrs, "op", op, "elapsed", time.Since(started))
	if key != "" {
		attrs = append(attrs, "key", key)
	}
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		m.logger.WarnContext(ctx, "store call failed", append(attrs, "error", err)...)
		return
	}
	m.logger.DebugContext(ctx, "store call", attrs...)
}
