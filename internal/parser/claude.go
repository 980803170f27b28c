package parser

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/grovetools/archivelogs/internal/archive"
)

// claudeConversation maps one conversation object of a Claude export.
// created_at is kept raw so a wrong-typed value degrades to a nil
// timestamp instead of failing the whole document.
type claudeConversation struct {
	UUID         string          `json:"uuid"`
	ID           string          `json:"id"`
	Name         *string         `json:"name"`
	Title        *string         `json:"title"`
	CreatedAt    json.RawMessage `json:"created_at"`
	ChatMessages []claudeMessage `json:"chat_messages"`
}

type claudeMessage struct {
	UUID      string          `json:"uuid"`
	ID        string          `json:"id"`
	Sender    *string         `json:"sender"`
	Text      string          `json:"text"`
	CreatedAt json.RawMessage `json:"created_at"`
	Model     json.RawMessage `json:"model"`
}

// ParseClaudeExport parses a Claude export into a canonical archive. The
// top level may be a single conversation object or an array of them;
// both are normalized to an array before processing.
func ParseClaudeExport(path string) (*archive.Archive, error) {
	ingestedAt := time.Now()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read export: %w", err)
	}

	var convs []claudeConversation
	if err := json.Unmarshal(data, &convs); err != nil {
		var single claudeConversation
		if err := json.Unmarshal(data, &single); err != nil {
			return nil, &archive.ParseError{Path: path, Err: err}
		}
		convs = []claudeConversation{single}
	}

	out := &archive.Archive{
		Source:     archive.SourceClaude,
		IngestedAt: ingestedAt,
	}

	for _, conv := range convs {
		id := conv.UUID
		if id == "" {
			id = conv.ID
		}
		if id == "" {
			id = "unknown"
		}

		title := conv.Name
		if title == nil {
			title = conv.Title
		}

		messages := make([]archive.Message, 0, len(conv.ChatMessages))
		for _, msg := range conv.ChatMessages {
			messages = append(messages, normalizeClaudeMessage(msg))
		}
		if len(messages) == 0 {
			continue
		}

		out.Conversations = append(out.Conversations, archive.Conversation{
			ID:        id,
			Title:     title,
			StartedAt: timeFromISO(conv.CreatedAt),
			Messages:  messages,
		})
	}

	return out, nil
}

func normalizeClaudeMessage(msg claudeMessage) archive.Message {
	id := msg.UUID
	if id == "" {
		id = msg.ID
	}
	if id == "" {
		id = "unknown"
	}

	sender := "user"
	if msg.Sender != nil {
		sender = *msg.Sender
	}

	var usage *archive.ModelUsage
	if len(msg.Model) > 0 {
		var name string
		if err := json.Unmarshal(msg.Model, &name); err == nil {
			// Claude exports report the model but not token counts, so
			// the counts stay zero.
			usage = &archive.ModelUsage{ModelName: name}
		}
	}

	return archive.Message{
		ID:         id,
		Role:       coerceClaudeRole(sender),
		Content:    msg.Text,
		CreatedAt:  timeFromISO(msg.CreatedAt),
		ModelUsage: usage,
	}
}

// coerceClaudeRole maps a sender value onto the canonical enumeration.
// "system" is checked explicitly; everything else is a binary
// human-vs-not decision.
func coerceClaudeRole(sender string) archive.Role {
	if sender == "system" {
		return archive.RoleSystem
	}
	if sender == "human" {
		return archive.RoleUser
	}
	return archive.RoleAssistant
}
