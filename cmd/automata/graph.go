package main

import (
	"github.com/aretw0/automata/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <file>",
	Short: "Export the automaton visualization",
	Long:  `Outputs a Mermaid (graph LR) or Graphviz DOT diagram of the NFA, or of its DFA with --dfa.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asDFA, _ := cmd.Flags().GetBool("dfa")
		deadState, _ := cmd.Flags().GetBool("dead-state")
		format, _ := cmd.Flags().GetString("format")

		return cli.Graph(cmd.OutOrStdout(), cli.GraphOptions{
			Path:      args[0],
			DFA:       asDFA,
			DeadState: deadState,
			Format:    format,
		})
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().Bool("dfa", false, "Draw the converted DFA instead of the NFA")
	graphCmd.Flags().Bool("dead-state", false, "With --dfa, include the '[]' sink state")
	graphCmd.Flags().StringP("format", "f", cli.FormatMermaid, "Diagram format: mermaid or dot")
}
