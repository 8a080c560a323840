package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/modhearth/modorder/internal/app"
)

var showCmd = &cobra.Command{
	Use:   "show <order-file>",
	Short: "Print an order file's sequences and tokens",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var newShowApp = func(out io.Writer) *app.Modorder {
	return newApp(out)
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(_ *cobra.Command, args []string) error {
	modorder := newShowApp(os.Stdout)

	loaded, err := modorder.Load(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("show failed: %w", err)
	}

	modorder.PrintOrder(loaded)
	return nil
}
