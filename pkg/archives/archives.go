// Package archives exposes the parser and analyzer to library consumers.
package archives

import (
	"github.com/grovetools/archivelogs/internal/analysis"
	"github.com/grovetools/archivelogs/internal/archive"
	"github.com/grovetools/archivelogs/internal/parser"
)

// Parse parses the export file at path for the given provider tag
// ("chatgpt" or "claude").
func Parse(path string, provider string) (*archive.Archive, error) {
	return parser.Parse(path, provider)
}

// ParseChatGPT parses a ChatGPT conversations.json export.
func ParseChatGPT(path string) (*archive.Archive, error) {
	return parser.ParseChatGPTExport(path)
}

// ParseClaude parses a Claude export file.
func ParseClaude(path string) (*archive.Archive, error) {
	return parser.ParseClaudeExport(path)
}

// Analyze computes cost estimates for an archive using the built-in
// pricing table.
func Analyze(a *archive.Archive) ([]archive.CostEstimate, error) {
	table, err := analysis.DefaultTable()
	if err != nil {
		return nil, err
	}
	return analysis.NewAnalyzer(table, analysis.DefaultPricingSource).Analyze(a), nil
}
