package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/modhearth/modorder/internal/adapters/logging"
	"github.com/modhearth/modorder/internal/app"
	"github.com/modhearth/modorder/internal/ports"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "modorder",
	Short: "A deterministic install-order manager for WeiDU mod components",
	Long: `Modorder computes deterministic installation orders for WeiDU mod
components from dependency and ordering rules.

It schedules rule-constrained components with a stable topological sort,
merges the result into a manually maintained order without reordering it,
and imports existing WeiDU.log installations.`,
	SilenceErrors: true, // We handle error formatting ourselves
	SilenceUsage:  true, // Don't show usage on error
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(versionCmd)
}

// newApp creates the application for a command run. With --verbose the
// app logs to stderr; otherwise diagnostics except cycle warnings are
// silenced.
func newApp(out io.Writer) *app.Modorder {
	level := ports.LevelWarn
	if verbose {
		level = ports.LevelDebug
	}
	logger := logging.NewConsoleLogger(
		logging.WithOutput(os.Stderr),
		logging.WithLevel(level),
	)
	return app.New(out).WithLogger(logger)
}

// printError prints an error message to stderr.
func printError(err error) {
	printErrorTo(os.Stderr, err)
}

// printErrorTo prints an error message to the given writer.
func printErrorTo(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "Error: %s\n", err)
}
