package analysis

import (
	"github.com/grovetools/archivelogs/internal/archive"
)

// Analyzer computes per-model cost estimates for an archive. It is a
// pure function of its input archive and the injected table.
type Analyzer struct {
	table  PricingTable
	source string
}

// NewAnalyzer creates an analyzer over the given pricing table. The
// source tag records where the rates came from and is stamped onto every
// estimate.
func NewAnalyzer(table PricingTable, source string) *Analyzer {
	return &Analyzer{table: table, source: source}
}

type tokenTotals struct {
	input  int
	output int
	total  int
}

// Analyze aggregates token usage across every message of the archive,
// keyed by normalized model name, and prices each aggregate. Estimates
// come back in first-encounter order of the normalized names. An archive
// with no usage-bearing messages yields an empty list.
func (a *Analyzer) Analyze(ar *archive.Archive) []archive.CostEstimate {
	totals := make(map[string]*tokenTotals)
	var order []string

	for _, conv := range ar.Conversations {
		for _, msg := range conv.Messages {
			if msg.ModelUsage == nil {
				continue
			}
			name := NormalizeModelName(msg.ModelUsage.ModelName)
			t, ok := totals[name]
			if !ok {
				t = &tokenTotals{}
				totals[name] = t
				order = append(order, name)
			}
			t.input += msg.ModelUsage.InputTokens
			t.output += msg.ModelUsage.OutputTokens
			t.total += msg.ModelUsage.TotalTokens
		}
	}

	estimates := make([]archive.CostEstimate, 0, len(order))
	for _, name := range order {
		t := totals[name]
		// Unknown models get the zero-valued rates, so they always price
		// to $0.00 rather than erroring.
		rates := a.table[name]

		inputCost := float64(t.input) * rates.Input / 1000
		outputCost := float64(t.output) * rates.Output / 1000

		estimates = append(estimates, archive.CostEstimate{
			ModelName:     name,
			Currency:      "USD",
			InputCost:     inputCost,
			OutputCost:    outputCost,
			TotalCost:     inputCost + outputCost,
			PricingSource: a.source,
			InputTokens:   t.input,
			OutputTokens:  t.output,
		})
	}

	return estimates
}
