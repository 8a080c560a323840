package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/modhearth/modorder/internal/app"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Compute an installation order from rules and a selection",
	Long: `Generate computes a deterministic installation order.

This command:
1. Loads the rules file and the component selection
2. Schedules rule-constrained components with a stable topological sort
3. Merges the result into the base order, when one is given
4. Writes the order file, or prints it without --output

Base-order entries, pause markers included, keep their relative order.
The generated order always holds a single sequence; a base order with
several sequences is flattened into one, in ascending index order.

A cyclic rule set does not fail the run: the unresolvable components are
appended in lexicographic order and a warning is emitted.`,
	RunE: runGenerate,
}

var (
	generateRulesPath     string
	generateSelectionPath string
	generateBasePath      string
	generateOutputPath    string
)

var newGenerateApp = func(out io.Writer) *app.Modorder {
	return newApp(out)
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateRulesPath, "rules", "r", "rules.yaml", "Path to the rules file")
	generateCmd.Flags().StringVarP(&generateSelectionPath, "selection", "s", "selection.yaml", "Path to the selection file")
	generateCmd.Flags().StringVarP(&generateBasePath, "base", "b", "", "Existing order file to merge around")
	generateCmd.Flags().StringVarP(&generateOutputPath, "output", "o", "", "Order file to write (prints without it)")
}

func runGenerate(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	modorder := newGenerateApp(os.Stdout)

	result, err := modorder.Generate(ctx, app.GenerateInput{
		RulesPath:     generateRulesPath,
		SelectionPath: generateSelectionPath,
		BasePath:      generateBasePath,
	})
	if err != nil {
		return fmt.Errorf("generate failed: %w", err)
	}

	if generateOutputPath == "" {
		modorder.PrintOrder(result.Order)
		return nil
	}

	if err := modorder.Save(ctx, generateOutputPath, result.Order); err != nil {
		return fmt.Errorf("generate failed: %w", err)
	}

	fmt.Printf("Order written to %s\n", generateOutputPath)
	return nil
}
