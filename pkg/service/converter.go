package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/automata/internal/logging"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/nfa"
	"github.com/aretw0/automata/pkg/observability"
	"github.com/aretw0/automata/pkg/ports"
	"github.com/aretw0/automata/pkg/schema"
)

// Request describes one conversion.
type Request struct {
	// Definition is the source NFA.
	Definition schema.Definition
	// DeadState selects the total transition function (see nfa.WithDeadState).
	DeadState bool
}

// Result is the outcome of a conversion.
type Result struct {
	Key    string            `json:"key"`
	DFA    schema.Definition `json:"dfa"`
	States int               `json:"states"`
	Cached bool              `json:"cached"`
}

// lockEntry holds the mutex and the reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Converter runs cached subset constructions.
type Converter struct {
	store   ports.DFAStore
	locker  ports.Locker
	metrics *observability.Metrics
	logger  *slog.Logger
	limit   int
	lockTTL time.Duration

	mu    sync.Mutex
	locks map[string]*lockEntry
}

// Option configures the Converter.
type Option func(*Converter)

// WithLocker enables distributed locking around cache misses.
func WithLocker(locker ports.Locker) Option {
	return func(c *Converter) {
		c.locker = locker
	}
}

// WithLockTTL bounds how long a distributed lock survives a crashed holder.
func WithLockTTL(ttl time.Duration) Option {
	return func(c *Converter) {
		c.lockTTL = ttl
	}
}

// WithMetrics records conversions on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(c *Converter) {
		c.metrics = m
	}
}

// WithLogger configures a logger for the Converter and the conversions it runs.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}

// WithStateLimit caps the size of produced DFAs (see nfa.WithStateLimit).
func WithStateLimit(limit int) Option {
	return func(c *Converter) {
		c.limit = limit
	}
}

// New creates a Converter persisting results in store.
func New(store ports.DFAStore, opts ...Option) *Converter {
	c := &Converter{
		store:   store,
		logger:  logging.NewNop(),
		lockTTL: 30 * time.Second,
		locks:   make(map[string]*lockEntry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Key returns the store key for a request.
func Key(req Request) string {
	key := req.Definition.Fingerprint()
	if req.DeadState {
		key += "-total"
	}
	return key
}

// Convert returns the DFA for req, from the store when available.
func (c *Converter) Convert(ctx context.Context, req Request) (*Result, error) {
	key := Key(req)

	var res *Result
	err := c.withLock(ctx, key, func(ctx context.Context) error {
		cached, err := c.store.Load(ctx, key)
		if err == nil {
			res = &Result{Key: key, DFA: *cached, States: len(cached.States), Cached: true}
			return nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("failed to check cache: %w", err)
		}

		res, err = c.convert(req, key)
		if err != nil {
			return err
		}
		if err := c.store.Save(ctx, key, &res.DFA); err != nil {
			return fmt.Errorf("failed to store dfa: %w", err)
		}
		return nil
	})
	if err != nil {
		if c.metrics != nil {
			c.metrics.ObserveFailure()
		}
		c.logger.Warn("conversion failed", "key", key, "error", err)
		return nil, err
	}

	if res.Cached {
		if c.metrics != nil {
			c.metrics.ObserveCacheHit()
		}
		c.logger.Debug("conversion served from store", "key", key)
	}
	return res, nil
}

// Get returns a previously converted DFA by key.
func (c *Converter) Get(ctx context.Context, key string) (*schema.Definition, error) {
	return c.store.Load(ctx, key)
}

func (c *Converter) convert(req Request, key string) (*Result, error) {
	n, err := req.Definition.Build()
	if err != nil {
		return nil, err
	}

	opts := []nfa.Option{nfa.WithLogger(c.logger), nfa.WithStateLimit(c.limit)}
	if req.DeadState {
		opts = append(opts, nfa.WithDeadState())
	}

	started := time.Now()
	d, err := n.DFA(opts...)
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(started)

	if c.metrics != nil {
		c.metrics.ObserveConversion(d.NumStates(), elapsed)
	}
	c.logger.Info("nfa converted",
		"key", key,
		"nfa_states", len(n.States()),
		"dfa_states", d.NumStates(),
		"elapsed", elapsed,
	)

	return &Result{
		Key:    key,
		DFA:    schema.FromAutomaton(d),
		States: d.NumStates(),
	}, nil
}

// acquire gets or creates a lock entry and increments its reference count.
func (c *Converter) acquire(key string) *lockEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.locks[key]
	if !ok {
		entry = &lockEntry{}
		c.locks[key] = entry
	}
	entry.refs++
	return entry
}

// release decrements the reference count and drops the entry at zero.
func (c *Converter) release(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.locks[key]
	if !ok {
		return
	}
	entry.refs--
	if entry.refs <= 0 {
		delete(c.locks, key)
	}
}

// withLock runs fn holding the in-process lock for key and, if configured,
// the distributed one.
func (c *Converter) withLock(ctx context.Context, key string, fn func(context.Context) error) error {
	entry := c.acquire(key)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		c.release(key)
	}()

	if c.locker != nil {
		unlock, err := c.locker.Lock(ctx, key, c.lockTTL)
		if err != nil {
			return fmt.Errorf("failed to acquire lock: %w", err)
		}
		defer func() {
			if err := unlock(context.WithoutCancel(ctx)); err != nil {
				c.logger.Error("failed to release lock", "key", key, "error", err)
			}
		}()
	}

	return fn(ctx)
}
