package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/modhearth/modorder/internal/app"
)

var statsCmd = &cobra.Command{
	Use:   "stats <order-file>",
	Short: "Show summary statistics for an order file",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

var newStatsApp = func(out io.Writer) *app.Modorder {
	return newApp(out)
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, args []string) error {
	modorder := newStatsApp(os.Stdout)

	stats, err := modorder.Stats(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("stats failed: %w", err)
	}

	modorder.PrintStats(stats)
	return nil
}
