package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/aretw0/automata/internal/presentation/tui"
	api "github.com/aretw0/automata/pkg/adapters/http"
	loamadapter "github.com/aretw0/automata/pkg/adapters/loam"
	"github.com/aretw0/automata/pkg/adapters/memory"
	redisadapter "github.com/aretw0/automata/pkg/adapters/redis"
	"github.com/aretw0/automata/pkg/observability"
	"github.com/aretw0/automata/pkg/persistence/middleware"
	"github.com/aretw0/automata/pkg/ports"
	"github.com/aretw0/automata/pkg/service"
	"github.com/muesli/termenv"
	backend "github.com/redis/go-redis/v9"
)

const shutdownTimeout = 5 * time.Second

// DefaultMaxStates caps conversions on the network-facing servers.
const DefaultMaxStates = 4096

// ServeOptions contains all the configuration for the serve command.
type ServeOptions struct {
	Addr      string
	RedisURL  string
	StoreDir  string
	TTL       time.Duration
	MaxStates int
	Logger    *slog.Logger
	Profile   termenv.Profile
}

// NewConverter wires the conversion service to its store.
// Redis takes precedence over a Loam document directory; with neither,
// converted automata stay in memory.
// The returned close function releases the backing connection.
func NewConverter(opts ServeOptions, metrics *observability.Metrics) (*service.Converter, func() error, error) {
	svcOpts := []service.Option{
		service.WithStateLimit(opts.MaxStates),
	}
	if opts.Logger != nil {
		svcOpts = append(svcOpts, service.WithLogger(opts.Logger))
	}
	if metrics != nil {
		svcOpts = append(svcOpts, service.WithMetrics(metrics))
	}

	var store ports.DFAStore
	closeFn := func() error { return nil }

	switch {
	case opts.RedisURL == "" && opts.StoreDir == "":
		store = memory.NewStore()
	case opts.RedisURL == "":
		ls, err := loamadapter.New(opts.StoreDir)
		if err != nil {
			return nil, nil, err
		}
		store = ls
	default:
		redisOpts, err := backend.ParseURL(opts.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid redis url: %w", err)
		}
		client := backend.NewClient(redisOpts)
		rs := redisadapter.NewFromClient(client, redisadapter.WithTTL(opts.TTL))
		store = rs
		closeFn = rs.Close
		svcOpts = append(svcOpts, service.WithLocker(redisadapter.NewLocker(client, "automata:")))
	}

	if opts.Logger != nil {
		store = middleware.Chain(store, middleware.NewLoggingMiddleware(opts.Logger))
	}
	return service.New(store, svcOpts...), closeFn, nil
}

// Serve runs the HTTP API until ctx is cancelled, then shuts down gracefully.
func Serve(ctx context.Context, opts ServeOptions) error {
	metrics := observability.NewMetrics()
	conv, closeStore, err := NewConverter(opts, metrics)
	if err != nil {
		return err
	}
	defer closeStore()

	srv := &http.Server{
		Addr:              opts.Addr,
		Handler:           api.NewHandler(conv, metrics.Handler()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	tui.PrintBanner(os.Stderr, opts.Profile)

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		backendName := "memory"
		switch {
		case opts.RedisURL != "":
			backendName = "redis"
		case opts.StoreDir != "":
			backendName = "loam:" + opts.StoreDir
		}
		printSystemMessage("Starting automata server on %s (store: %s)", srv.Addr, backendName)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		// Give outstanding requests a deadline for completion.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			if cerr := srv.Close(); cerr != nil {
				return fmt.Errorf("error killing server: %w", cerr)
			}
			return fmt.Errorf("graceful shutdown did not complete in %v: %w", shutdownTimeout, err)
		}
		printSystemMessage("Server stopped gracefully")
		return nil
	}
}
