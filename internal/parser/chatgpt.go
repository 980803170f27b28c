package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/grovetools/archivelogs/internal/archive"
)

// chatgptConversation maps the slice of a ChatGPT conversations.json
// entry we care about.
type chatgptConversation struct {
	ID             string          `json:"id"`
	ConversationID string          `json:"conversation_id"`
	Title          *string         `json:"title"`
	CreateTime     *float64        `json:"create_time"`
	Mapping        json.RawMessage `json:"mapping"`
}

// chatgptNode is one entry of the mapping. Nodes form an implicit tree
// via parent/children references, but we only flatten them; the message
// payload is all we read.
type chatgptNode struct {
	Message *chatgptMessage `json:"message"`
}

type chatgptMessage struct {
	ID     string `json:"id"`
	Author struct {
		Role string `json:"role"`
	} `json:"author"`
	Content    json.RawMessage `json:"content"`
	CreateTime *float64        `json:"create_time"`
	Metadata   struct {
		ModelSlug string `json:"model_slug"`
	} `json:"metadata"`
}

// ParseChatGPTExport parses a ChatGPT conversations.json export into a
// canonical archive. Conversations that end up with no messages are
// dropped.
func ParseChatGPTExport(path string) (*archive.Archive, error) {
	ingestedAt := time.Now()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read export: %w", err)
	}

	var convs []chatgptConversation
	if err := json.Unmarshal(data, &convs); err != nil {
		return nil, &archive.ParseError{Path: path, Err: err}
	}

	out := &archive.Archive{
		Source:     archive.SourceChatGPT,
		IngestedAt: ingestedAt,
	}

	for _, conv := range convs {
		id := conv.ID
		if id == "" {
			id = conv.ConversationID
		}
		if id == "" {
			id = "unknown"
		}

		messages := parseChatGPTMapping(conv.Mapping)
		if len(messages) == 0 {
			continue
		}

		out.Conversations = append(out.Conversations, archive.Conversation{
			ID:        id,
			Title:     conv.Title,
			StartedAt: timeFromEpoch(conv.CreateTime),
			Messages:  messages,
		})
	}

	return out, nil
}

// parseChatGPTMapping flattens the node mapping into messages in the
// document order of its keys. encoding/json randomizes map iteration, so
// the object is walked with a token decoder instead.
func parseChatGPTMapping(raw json.RawMessage) []archive.Message {
	if len(raw) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil || tok != json.Delim('{') {
		return nil
	}

	var messages []archive.Message
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			break
		}
		nodeID, _ := keyTok.(string)

		var node chatgptNode
		if err := dec.Decode(&node); err != nil {
			break
		}
		// Nodes without a message payload (e.g. the synthetic root) are
		// skipped entirely.
		if node.Message == nil {
			continue
		}
		msg := node.Message

		id := msg.ID
		if id == "" {
			id = nodeID
		}

		var usage *archive.ModelUsage
		if msg.Metadata.ModelSlug != "" {
			// ChatGPT exports never carry token counts, so usage is
			// attribution only; the counts stay zero.
			usage = &archive.ModelUsage{ModelName: msg.Metadata.ModelSlug}
		}

		messages = append(messages, archive.Message{
			ID:         id,
			Role:       coerceChatGPTRole(msg.Author.Role),
			Content:    flattenChatGPTContent(msg.Content),
			CreatedAt:  timeFromEpoch(msg.CreateTime),
			ModelUsage: usage,
		})
	}

	return messages
}

// coerceChatGPTRole maps a raw author role onto the canonical
// enumeration. Anything unrecognized collapses to "user"; raw strings
// never pass through.
func coerceChatGPTRole(raw string) archive.Role {
	if r := archive.Role(raw); r.Valid() {
		return r
	}
	return archive.RoleUser
}

// flattenChatGPTContent collapses a content payload to a single string.
// Structured payloads have their "parts" joined with single spaces,
// skipping empty entries; anything else is stringified directly.
func flattenChatGPTContent(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err == nil {
		var parts []interface{}
		if rawParts, ok := obj["parts"]; ok {
			// Malformed parts degrade to an empty list.
			_ = json.Unmarshal(rawParts, &parts)
		}
		kept := make([]string, 0, len(parts))
		for _, part := range parts {
			if isEmptyPart(part) {
				continue
			}
			kept = append(kept, stringifyPart(part))
		}
		return strings.Join(kept, " ")
	}

	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	return stringifyPart(v)
}

func isEmptyPart(v interface{}) bool {
	switch p := v.(type) {
	case nil:
		return true
	case string:
		return p == ""
	case bool:
		return !p
	case float64:
		return p == 0
	case []interface{}:
		return len(p) == 0
	case map[string]interface{}:
		return len(p) == 0
	}
	return false
}

func stringifyPart(v interface{}) string {
	switch p := v.(type) {
	case string:
		return p
	case float64:
		return strconv.FormatFloat(p, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(p)
	default:
		return fmt.Sprintf("%v", p)
	}
}
