package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/grovetools/archivelogs/config"
	"github.com/grovetools/archivelogs/internal/analysis"
	"github.com/grovetools/archivelogs/internal/archive"
	"github.com/grovetools/archivelogs/internal/display"
	"github.com/grovetools/archivelogs/internal/parser"
	"github.com/grovetools/archivelogs/internal/serialize"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		provider   string
		filePath   string
		outputDir  string
		configPath string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "analyze --provider <chatgpt|claude> --file <path> [flags]",
		Short: "Analyze an LLM chat-export archive",
		Long: "Parse a ChatGPT or Claude export file into a normalized archive, " +
			"estimate per-model token costs, and write JSONL artifacts plus a summary report.",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logrus.WithFields(logrus.Fields{
				"provider": provider,
				"file":     filePath,
			})

			if _, err := os.Stat(filePath); err != nil {
				return fmt.Errorf("file not found: %s", filePath)
			}

			cfg := config.Default()
			if configPath != "" {
				var err error
				cfg, err = config.Load(configPath)
				if err != nil {
					return err
				}
			}
			if outputDir != "" {
				cfg.Output.Dir = outputDir
			}

			table, err := analysis.DefaultTable()
			if err != nil {
				return fmt.Errorf("failed to load pricing table: %w", err)
			}
			pricingSource := analysis.DefaultPricingSource
			if len(cfg.Pricing) > 0 {
				overrides := make(analysis.PricingTable, len(cfg.Pricing))
				for model, rates := range cfg.Pricing {
					overrides[model] = analysis.ModelRates{Input: rates.Input, Output: rates.Output}
				}
				table.Merge(overrides)
				pricingSource = "config"
			}

			log.Info("parsing archive")
			arc, err := parser.Parse(filePath, provider)
			if err != nil {
				return err
			}

			messages := serialize.FlattenMessages(arc)
			log.WithFields(logrus.Fields{
				"conversations": len(arc.Conversations),
				"messages":      len(messages),
			}).Info("parsed archive")

			estimates := analysis.NewAnalyzer(table, pricingSource).Analyze(arc)

			if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}

			if err := serialize.WriteJSONL(filepath.Join(cfg.Output.Dir, "archive.jsonl"), []*archive.Archive{arc}); err != nil {
				return err
			}
			if err := serialize.WriteJSONL(filepath.Join(cfg.Output.Dir, "conversations.jsonl"), serialize.FlattenConversations(arc)); err != nil {
				return err
			}
			if err := serialize.WriteJSONL(filepath.Join(cfg.Output.Dir, "messages.jsonl"), messages); err != nil {
				return err
			}

			if len(estimates) > 0 {
				p := filepath.Join(cfg.Output.Dir, "cost_estimates.jsonl")
				if err := serialize.WriteJSONL(p, estimates); err != nil {
					return err
				}
			}

			summaryPath := filepath.Join(cfg.Output.Dir, "summary.md")
			if err := serialize.WriteSummaryReport(arc, estimates, summaryPath, cfg.Report.TopConversations); err != nil {
				return err
			}
			log.WithField("dir", cfg.Output.Dir).Info("wrote analysis artifacts")

			if jsonOutput {
				data, err := json.MarshalIndent(estimates, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal estimates: %w", err)
				}
				fmt.Println(string(data))
				return nil
			}

			display.PrintArchiveSummary(arc, os.Stdout)
			fmt.Println()
			if len(estimates) > 0 {
				display.PrintEstimatesTable(estimates, os.Stdout)
				fmt.Println()
			}
			display.PrintCostSummary(estimates, os.Stdout)

			return nil
		},
	}

	cmd.Flags().StringVar(&provider, "provider", "", "Provider type (chatgpt or claude)")
	cmd.Flags().StringVar(&filePath, "file", "", "Path to the unzipped JSON export file")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "Output directory for analysis results (default ./output)")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to an arclogs config file")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print cost estimates as JSON instead of a table")
	cmd.MarkFlagRequired("provider")
	cmd.MarkFlagRequired("file")

	return cmd
}
