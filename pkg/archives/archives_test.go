package archives

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/archivelogs/internal/archive"
)

func TestParseAndAnalyzeEndToEnd(t *testing.T) {
	sample := `[{
		"id": "conv-1",
		"title": "Budget check",
		"mapping": {
			"n1": {"message": {"id": "m1", "author": {"role": "user"},
				"content": {"parts": ["How much is this costing me?"]}}},
			"n2": {"message": {"id": "m2", "author": {"role": "assistant"},
				"content": {"parts": ["Let's find out."]},
				"metadata": {"model_slug": "gpt-4o-2024-05-13"}}}
		}
	}]`
	path := filepath.Join(t.TempDir(), "conversations.json")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0644))

	arc, err := Parse(path, "chatgpt")
	require.NoError(t, err)
	assert.Equal(t, archive.SourceChatGPT, arc.Source)
	require.Len(t, arc.Conversations, 1)

	estimates, err := Analyze(arc)
	require.NoError(t, err)
	require.Len(t, estimates, 1)

	// ChatGPT exports carry no token counts, so attribution is present
	// but the derived cost is zero.
	assert.Equal(t, "gpt-4o", estimates[0].ModelName)
	assert.Zero(t, estimates[0].InputTokens)
	assert.Zero(t, estimates[0].TotalCost)
}

func TestParseUnknownProvider(t *testing.T) {
	_, err := Parse("whatever.json", "bard")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unknown provider")
}
