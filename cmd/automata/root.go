package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/automata/internal/cli"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "automata",
	Short:         "automata converts NFAs into equivalent DFAs",
	Long:          `automata reads NFA definitions (YAML or JSON), runs the subset construction and exports, serves or visualizes the resulting DFA.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable coloured output")
}

func loggerFrom(cmd *cobra.Command) (*slog.Logger, error) {
	level, _ := cmd.Flags().GetString("log-level")
	return cli.CreateLogger(level)
}

func noColor(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("no-color")
	return v
}

func profileFrom(cmd *cobra.Command) termenv.Profile {
	return cli.ColorProfile(os.Stdout, noColor(cmd))
}
