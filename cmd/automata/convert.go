package main

import (
	"github.com/aretw0/automata/internal/cli"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert an NFA definition into a DFA",
	Long: `Loads an NFA from a YAML or JSON definition, runs the subset construction
and prints the DFA. The symbol 'e' marks epsilon transitions.

Formats: text, table, json, yaml, mermaid, dot, markdown.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := loggerFrom(cmd)
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		deadState, _ := cmd.Flags().GetBool("dead-state")
		maxStates, _ := cmd.Flags().GetInt("max-states")

		return cli.Convert(cmd.OutOrStdout(), cli.ConvertOptions{
			Path:      args[0],
			Format:    format,
			DeadState: deadState,
			MaxStates: maxStates,
			Profile:   profileFrom(cmd),
			Logger:    logger,
		})
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringP("format", "f", cli.FormatText, "Output format")
	convertCmd.Flags().Bool("dead-state", false, "Route undefined transitions to a shared '[]' sink state")
	convertCmd.Flags().Int("max-states", 0, "Abort when the DFA would exceed this many states (0 = unlimited)")
}
