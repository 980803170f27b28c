// Package parser turns provider-native export files into canonical
// archives. Each provider gets its own parser; Parse dispatches on the
// provider tag.
package parser

import (
	"github.com/grovetools/archivelogs/internal/archive"
)

// Parse reads the export file at path and normalizes it according to the
// given provider tag. Tags outside the supported set fail before any I/O
// is attempted.
func Parse(path string, provider string) (*archive.Archive, error) {
	switch archive.Source(provider) {
	case archive.SourceChatGPT:
		return ParseChatGPTExport(path)
	case archive.SourceClaude:
		return ParseClaudeExport(path)
	default:
		return nil, &archive.UnsupportedProviderError{Provider: provider}
	}
}
