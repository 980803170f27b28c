package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/archivelogs/internal/archive"
)

const claudeSample = `[
  {
    "uuid": "claude-conv-789",
    "name": "AI Discussion",
    "created_at": "2024-01-01T00:00:00Z",
    "chat_messages": [
      {
        "uuid": "cmsg-1",
        "sender": "human",
        "text": "Tell me about transformers.",
        "created_at": "2024-01-01T00:00:05Z"
      },
      {
        "uuid": "cmsg-2",
        "sender": "assistant",
        "text": "Transformers are a neural architecture.",
        "created_at": "not-a-timestamp",
        "model": "claude-3-opus-20240229"
      },
      {
        "uuid": "cmsg-3",
        "sender": "system",
        "text": "You are a helpful assistant."
      },
      {
        "uuid": "cmsg-4",
        "sender": "tool_runner",
        "text": "result: ok"
      }
    ]
  },
  {
    "id": "claude-conv-012",
    "title": "Quick question",
    "created_at": 12345,
    "chat_messages": [
      {"id": "cmsg-5", "sender": "human", "text": "ping"}
    ]
  },
  {
    "uuid": "claude-conv-empty",
    "name": "empty",
    "chat_messages": []
  }
]`

func TestParseClaudeExport(t *testing.T) {
	path := writeFixture(t, "claude.json", claudeSample)

	arc, err := ParseClaudeExport(path)
	require.NoError(t, err)

	assert.Equal(t, archive.SourceClaude, arc.Source)
	require.NoError(t, arc.Validate())

	// Conversations with no messages are dropped.
	require.Len(t, arc.Conversations, 2)

	conv1 := arc.Conversations[0]
	assert.Equal(t, "claude-conv-789", conv1.ID)
	require.NotNil(t, conv1.Title)
	assert.Equal(t, "AI Discussion", *conv1.Title)

	// "Z" suffix timestamps parse to the same instant as an explicit
	// +00:00 offset.
	require.NotNil(t, conv1.StartedAt)
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, conv1.StartedAt.Equal(want))

	require.Len(t, conv1.Messages, 4)

	msg1 := conv1.Messages[0]
	assert.Equal(t, "cmsg-1", msg1.ID)
	assert.Equal(t, archive.RoleUser, msg1.Role)
	assert.Equal(t, "Tell me about transformers.", msg1.Content)
	require.NotNil(t, msg1.CreatedAt)

	// A malformed timestamp degrades to nil, never an error.
	msg2 := conv1.Messages[1]
	assert.Equal(t, archive.RoleAssistant, msg2.Role)
	assert.Nil(t, msg2.CreatedAt)
	require.NotNil(t, msg2.ModelUsage)
	assert.Equal(t, "claude-3-opus-20240229", msg2.ModelUsage.ModelName)
	assert.Zero(t, msg2.ModelUsage.InputTokens)
	assert.Zero(t, msg2.ModelUsage.TotalTokens)

	assert.Equal(t, archive.RoleSystem, conv1.Messages[2].Role)

	// Any sender that is neither human nor system is an assistant.
	assert.Equal(t, archive.RoleAssistant, conv1.Messages[3].Role)
	assert.Nil(t, conv1.Messages[3].ModelUsage)

	// Second conversation exercises the id/title fallbacks and a
	// wrong-typed created_at, which degrades to nil.
	conv2 := arc.Conversations[1]
	assert.Equal(t, "claude-conv-012", conv2.ID)
	require.NotNil(t, conv2.Title)
	assert.Equal(t, "Quick question", *conv2.Title)
	assert.Nil(t, conv2.StartedAt)
	assert.Equal(t, "cmsg-5", conv2.Messages[0].ID)
}

func TestParseClaudeSingleObject(t *testing.T) {
	sample := `{
		"uuid": "solo",
		"name": "One conversation",
		"chat_messages": [{"uuid": "m1", "sender": "human", "text": "hi"}]
	}`
	path := writeFixture(t, "solo.json", sample)

	arc, err := ParseClaudeExport(path)
	require.NoError(t, err)
	require.Len(t, arc.Conversations, 1)
	assert.Equal(t, "solo", arc.Conversations[0].ID)
}

func TestParseClaudeMissingIDs(t *testing.T) {
	sample := `[{"chat_messages": [{"sender": "human", "text": "hi"}]}]`
	path := writeFixture(t, "noids.json", sample)

	arc, err := ParseClaudeExport(path)
	require.NoError(t, err)
	require.Len(t, arc.Conversations, 1)
	assert.Equal(t, "unknown", arc.Conversations[0].ID)
	assert.Equal(t, "unknown", arc.Conversations[0].Messages[0].ID)
	assert.Equal(t, "hi", arc.Conversations[0].Messages[0].Content)
}

func TestParseClaudeMalformed(t *testing.T) {
	path := writeFixture(t, "bad.json", `["not an object"]`)
	_, err := ParseClaudeExport(path)
	var perr *archive.ParseError
	require.ErrorAs(t, err, &perr)
}
