package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for arclogs.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "arclogs",
		Short:         "Normalize LLM chat-export archives and estimate usage costs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newModelsCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}
