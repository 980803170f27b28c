package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grovetools/archivelogs/internal/analysis"
	"github.com/grovetools/archivelogs/internal/display"
)

func newModelsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "models",
		Short: "List the canonical models and their built-in pricing",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := analysis.DefaultTable()
			if err != nil {
				return fmt.Errorf("failed to load pricing table: %w", err)
			}
			display.PrintPricingTable(table, os.Stdout)
			return nil
		},
	}

	return cmd
}
