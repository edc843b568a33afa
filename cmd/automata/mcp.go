package main

import (
	"strings"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/internal/cli"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts automata as an MCP Server over Standard Input/Output.
AI agents can then call the convert_nfa and get_dfa tools.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := serveOptions(cmd)
		if err != nil {
			return err
		}
		return cli.ServeMCP(opts, strings.TrimSpace(automata.Version))
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	addStoreFlags(mcpCmd)
}
