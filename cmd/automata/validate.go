package main

import (
	"fmt"

	"github.com/aretw0/automata/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a definition for consistency",
	Long: `Reports undeclared states, bad symbols, reserved characters in state names and a missing start state. Unreachable states are printed as warnings.
With --dfa the file is read as a converted DFA (e.g. convert --format yaml) and must be deterministic.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		validate := cli.Validate
		if asDFA, _ := cmd.Flags().GetBool("dfa"); asDFA {
			validate = cli.ValidateDFA
		}
		if err := validate(cmd.OutOrStdout(), args[0]); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Automaton is valid! ✅")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().Bool("dfa", false, "Validate a converted DFA document instead of an NFA definition")
}
