package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/modhearth/modorder/internal/app"
)

var importCmd = &cobra.Command{
	Use:   "import <weidu-log>",
	Short: "Import an existing WeiDU.log installation",
	Long: `Import parses a WeiDU.log and converts the installed components
into an order file with a single sequence, preserving installation order.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var importOutputPath string

var newImportApp = func(out io.Writer) *app.Modorder {
	return newApp(out)
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVarP(&importOutputPath, "output", "o", "", "Order file to write (prints without it)")
}

func runImport(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	modorder := newImportApp(os.Stdout)

	imported, err := modorder.Import(ctx, args[0])
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	if importOutputPath == "" {
		modorder.PrintOrder(imported)
		return nil
	}

	if err := modorder.Save(ctx, importOutputPath, imported); err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Printf("Order written to %s\n", importOutputPath)
	return nil
}
