// Package archive defines the canonical domain model shared by the
// provider parsers and the usage analyzer.
package archive

import "time"

// Role identifies who produced a message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Valid reports whether the role is one of the four recognized values.
func (r Role) Valid() bool {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant, RoleTool:
		return true
	}
	return false
}

// Source identifies which provider an archive was exported from.
type Source string

const (
	SourceChatGPT Source = "chatgpt"
	SourceClaude  Source = "claude"
)

// Valid reports whether the source is a recognized provider tag.
func (s Source) Valid() bool {
	return s == SourceChatGPT || s == SourceClaude
}

// ModelUsage records token counts attributed to a specific model for a
// single message. The model name is the raw provider string, not yet
// normalized.
type ModelUsage struct {
	ModelName    string `json:"model_name"`
	InputTokens  int    `json:"input_tokens"`
	OutputTokens int    `json:"output_tokens"`
	TotalTokens  int    `json:"total_tokens"`
}

// Message is a single turn in a conversation. Content is the flattened
// text; provider-specific rich content is collapsed before construction.
type Message struct {
	ID         string      `json:"id"`
	Role       Role        `json:"role"`
	Content    string      `json:"content"`
	CreatedAt  *time.Time  `json:"created_at"`
	ModelUsage *ModelUsage `json:"model_usage"`
}

// Validate checks the message's field constraints.
func (m Message) Validate() error {
	if m.ID == "" {
		return &ValidationError{Entity: "message", Field: "id", Reason: "required field is empty"}
	}
	if !m.Role.Valid() {
		return &ValidationError{Entity: "message", Field: "role", Reason: "unrecognized value " + string(m.Role)}
	}
	return nil
}

// Conversation is an ordered sequence of messages. Message order is
// parse order, which for ChatGPT's node mapping is the document order of
// the mapping keys, not necessarily chronological.
type Conversation struct {
	ID        string     `json:"id"`
	Title     *string    `json:"title"`
	StartedAt *time.Time `json:"started_at"`
	Messages  []Message  `json:"messages"`
}

// Validate checks the conversation and every message it owns.
func (c Conversation) Validate() error {
	if c.ID == "" {
		return &ValidationError{Entity: "conversation", Field: "id", Reason: "required field is empty"}
	}
	for _, m := range c.Messages {
		if err := m.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Archive is the top-level container for one provider export. It is
// constructed once per parse invocation and not mutated afterwards.
type Archive struct {
	Source        Source         `json:"source"`
	IngestedAt    time.Time      `json:"ingested_at"`
	Conversations []Conversation `json:"conversations"`
}

// Validate checks the archive and everything it owns.
func (a Archive) Validate() error {
	if !a.Source.Valid() {
		return &ValidationError{Entity: "archive", Field: "source", Reason: "unrecognized value " + string(a.Source)}
	}
	if a.IngestedAt.IsZero() {
		return &ValidationError{Entity: "archive", Field: "ingested_at", Reason: "required field is empty"}
	}
	for _, c := range a.Conversations {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// CostEstimate is the analyzer's output for one normalized model name.
type CostEstimate struct {
	ModelName     string  `json:"model_name"`
	Currency      string  `json:"currency"`
	InputCost     float64 `json:"input_cost"`
	OutputCost    float64 `json:"output_cost"`
	TotalCost     float64 `json:"total_cost"`
	PricingSource string  `json:"pricing_source"`
	InputTokens   int     `json:"input_tokens"`
	OutputTokens  int     `json:"output_tokens"`
}
