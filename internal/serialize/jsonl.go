// Package serialize writes analysis results to flat output artifacts:
// line-delimited JSON records and a markdown summary report.
package serialize

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/grovetools/archivelogs/internal/archive"
)

// WriteJSONL writes items to path, one JSON document per line. Field
// names and types follow the record types' JSON tags exactly, so records
// round-trip losslessly.
func WriteJSONL[T any](path string, items []T) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for _, item := range items {
		if err := enc.Encode(item); err != nil {
			f.Close()
			return fmt.Errorf("failed to encode record: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

// FlattenConversations returns the archive's conversations as a flat
// record list.
func FlattenConversations(a *archive.Archive) []archive.Conversation {
	return a.Conversations
}

// FlattenMessages returns every message of every conversation in
// archive order.
func FlattenMessages(a *archive.Archive) []archive.Message {
	var messages []archive.Message
	for _, conv := range a.Conversations {
		messages = append(messages, conv.Messages...)
	}
	return messages
}
