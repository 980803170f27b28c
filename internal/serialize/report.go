package serialize

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/grovetools/archivelogs/internal/archive"
)

// WriteSummaryReport renders a human-readable markdown report of the
// archive and its cost estimates to path. topConversations limits how
// many conversation titles are listed; values <= 0 fall back to 10.
func WriteSummaryReport(a *archive.Archive, estimates []archive.CostEstimate, path string, topConversations int) error {
	if topConversations <= 0 {
		topConversations = 10
	}

	var b strings.Builder

	b.WriteString("# LLM Archive Analysis Report\n\n")
	fmt.Fprintf(&b, "**Provider:** %s\n", a.Source)
	fmt.Fprintf(&b, "**Ingested at:** %s\n", a.IngestedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "**Total conversations:** %d\n", len(a.Conversations))

	totalMessages := 0
	for _, conv := range a.Conversations {
		totalMessages += len(conv.Messages)
	}
	fmt.Fprintf(&b, "**Total messages:** %d\n\n", totalMessages)

	b.WriteString("## Cost Estimates\n\n")

	if len(estimates) > 0 {
		var totalCost float64
		for _, est := range estimates {
			totalCost += est.TotalCost
		}
		fmt.Fprintf(&b, "**Total estimated cost:** $%.4f USD\n\n", totalCost)

		b.WriteString("| Model | Input Tokens | Output Tokens | Input Cost | Output Cost | Total Cost |\n")
		b.WriteString("|-------|--------------|---------------|------------|-------------|------------|\n")
		for _, est := range estimates {
			fmt.Fprintf(&b, "| %s | %d | %d | $%.4f | $%.4f | $%.4f |\n",
				est.ModelName, est.InputTokens, est.OutputTokens,
				est.InputCost, est.OutputCost, est.TotalCost)
		}
	} else {
		b.WriteString("No usage data available (archives may not include token counts).\n")
	}

	b.WriteString("\n## Conversations\n\n")
	for i, conv := range a.Conversations {
		if i >= topConversations {
			break
		}
		title := conv.ID
		if conv.Title != nil && *conv.Title != "" {
			title = *conv.Title
		}
		fmt.Fprintf(&b, "%d. **%s** - %d messages\n", i+1, title, len(conv.Messages))
	}
	if extra := len(a.Conversations) - topConversations; extra > 0 {
		fmt.Fprintf(&b, "\n... and %d more conversations\n", extra)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
