package main

import (
	"context"
	"os"

	"github.com/aretw0/automata/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the conversion HTTP server",
	Long: `Exposes the converter as a JSON API: POST /convert, GET /dfa/{key},
GET /healthz and Prometheus metrics on GET /metrics.
Converted automata are cached in memory, in a directory of Markdown
documents with --store-dir, or in Redis with --redis.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := serveOptions(cmd)
		if err != nil {
			return err
		}

		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()

		return cli.Serve(ctx, opts)
	},
}

func serveOptions(cmd *cobra.Command) (cli.ServeOptions, error) {
	logger, err := loggerFrom(cmd)
	if err != nil {
		return cli.ServeOptions{}, err
	}
	addr, _ := cmd.Flags().GetString("addr")
	redisURL, _ := cmd.Flags().GetString("redis")
	storeDir, _ := cmd.Flags().GetString("store-dir")
	ttl, _ := cmd.Flags().GetDuration("ttl")
	maxStates, _ := cmd.Flags().GetInt("max-states")

	return cli.ServeOptions{
		Addr:      addr,
		RedisURL:  redisURL,
		StoreDir:  storeDir,
		TTL:       ttl,
		MaxStates: maxStates,
		Logger:    logger,
		Profile:   cli.ColorProfile(os.Stderr, noColor(cmd)),
	}, nil
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
	addStoreFlags(serveCmd)
}

func addStoreFlags(cmd *cobra.Command) {
	cmd.Flags().String("redis", "", "Redis URL for the DFA cache, e.g. redis://localhost:6379/0 (default: in-memory)")
	cmd.Flags().String("store-dir", "", "Directory of Markdown documents for the DFA cache (ignored with --redis)")
	cmd.Flags().Duration("ttl", 0, "Expiration of cached DFAs in Redis (0 = never)")
	cmd.Flags().Int("max-states", cli.DefaultMaxStates, "Reject conversions producing more DFA states (0 = unlimited)")
}
