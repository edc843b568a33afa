package cli

import (
	"log"
	"log/slog"
	"os"

	"github.com/aretw0/automata/pkg/adapters/mcp"
)

// ServeMCP runs the MCP server on Stdin/Stdout until the client disconnects.
func ServeMCP(opts ServeOptions, version string) error {
	// Ensure logs don't corrupt JSON-RPC on Stdout
	log.SetOutput(os.Stderr)
	if opts.Logger != nil {
		slog.SetDefault(opts.Logger)
	}

	conv, closeStore, err := NewConverter(opts, nil)
	if err != nil {
		return err
	}
	defer closeStore()

	slog.Info("Starting automata MCP Server (Stdio)...")
	return mcp.NewServer(conv, version).ServeStdio()
}
