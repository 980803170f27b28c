// Package display renders archives and cost estimates for the terminal.
package display

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/grovetools/archivelogs/internal/archive"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	totalStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// PrintArchiveSummary prints the high-level counts for a parsed archive.
func PrintArchiveSummary(a *archive.Archive, w io.Writer) {
	totalMessages := 0
	for _, conv := range a.Conversations {
		totalMessages += len(conv.Messages)
	}

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Archive: %s", a.Source)))
	fmt.Fprintf(w, "  Conversations: %d\n", len(a.Conversations))
	fmt.Fprintf(w, "  Messages:      %d\n", totalMessages)
}

// PrintCostSummary prints the total estimated cost line, or a note when
// the archive carried no usage data.
func PrintCostSummary(estimates []archive.CostEstimate, w io.Writer) {
	if len(estimates) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No usage data available (archives may not include token counts)."))
		return
	}
	var total float64
	for _, est := range estimates {
		total += est.TotalCost
	}
	fmt.Fprintln(w, totalStyle.Render(fmt.Sprintf("Estimated total cost: $%.4f USD", total)))
}
