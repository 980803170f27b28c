package display

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/grovetools/archivelogs/internal/analysis"
	"github.com/grovetools/archivelogs/internal/archive"
)

// PrintEstimatesTable prints cost estimates in a formatted table.
func PrintEstimatesTable(estimates []archive.CostEstimate, writer io.Writer) {
	w := tabwriter.NewWriter(writer, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "MODEL\tINPUT TOKENS\tOUTPUT TOKENS\tINPUT COST\tOUTPUT COST\tTOTAL COST")
	for _, est := range estimates {
		fmt.Fprintf(w, "%s\t%d\t%d\t$%.4f\t$%.4f\t$%.4f\n",
			est.ModelName, est.InputTokens, est.OutputTokens,
			est.InputCost, est.OutputCost, est.TotalCost)
	}
	w.Flush()
}

// PrintPricingTable prints the per-1K-token rates for every model in the
// table, sorted by model name.
func PrintPricingTable(table analysis.PricingTable, writer io.Writer) {
	w := tabwriter.NewWriter(writer, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "MODEL\tINPUT ($/1K)\tOUTPUT ($/1K)")
	for _, model := range table.Models() {
		rates := table[model]
		fmt.Fprintf(w, "%s\t%.5f\t%.5f\n", model, rates.Input, rates.Output)
	}
	w.Flush()
}
