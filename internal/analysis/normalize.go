// Package analysis aggregates token usage per model and derives cost
// estimates from a pricing table.
package analysis

import "strings"

// normalizationRules are evaluated in order; the first substring match
// wins. More specific patterns must come before their broader prefixes
// (gpt-4o and gpt-4-turbo before gpt-4, claude-3-5-sonnet before
// claude-3-sonnet), otherwise they would be misclassified.
var normalizationRules = []struct {
	substr    string
	canonical string
}{
	{"gpt-4o", "gpt-4o"},
	{"gpt-4-turbo", "gpt-4-turbo"},
	{"gpt-4", "gpt-4"},
	{"gpt-3.5", "gpt-3.5-turbo"},
	{"claude-3-5-sonnet", "claude-3-5-sonnet"},
	{"claude-3.5-sonnet", "claude-3-5-sonnet"},
	{"claude-3-opus", "claude-3-opus"},
	{"claude-3-sonnet", "claude-3-sonnet"},
	{"claude-3-haiku", "claude-3-haiku"},
}

// NormalizeModelName maps a raw provider model string onto one of the
// canonical pricing-table keys. Matching is case-insensitive. Names that
// match no rule are returned unchanged and act as their own key.
func NormalizeModelName(name string) string {
	lower := strings.ToLower(name)
	for _, rule := range normalizationRules {
		if strings.Contains(lower, rule.substr) {
			return rule.canonical
		}
	}
	return name
}
