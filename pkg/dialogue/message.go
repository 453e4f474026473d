// Package dialogue converts chat transcripts among three representations:
// a styled HTML dialogue format ("rich text"), a flat speaker-prefixed text
// format ("plain transcript"), and a structured message list compatible with
// chat-completion style APIs. It also provides a standalone cleaner that
// strips lightweight markup from generative-model output.
//
// All converters share one canonical utterance form: a single newline is a
// line break within an utterance, and newline followed by tab marks a
// paragraph break within one utterance. Converters agree on this form, so
// formats round-trip through each other.
package dialogue

import "strings"

// Role identifies the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// DefaultAssistantName is the fallback assistant identity used by
// PlainTranscriptToMessages when no assistant name option is supplied.
// The misspelling is historical; callers match against it, so it stays.
// RichTextToMessages deliberately has no such fallback (see options.go).
const DefaultAssistantName = "THINGKING-MACHINE"

// systemSpeaker is the speaker label that classifies as RoleSystem.
const systemSpeaker = "INSTRUCTIONS"

// Message is one turn of a conversation. Role is always derived from Name
// plus the optional assistant name; it is never stored independently of
// that derivation. Name preserves the original speaker label's case.
type Message struct {
	Role    Role   `json:"role" yaml:"role"`
	Name    string `json:"name" yaml:"name"`
	Content string `json:"content" yaml:"content"`
}

// roleFor classifies a speaker label. An empty assistantName means no
// speaker ever classifies as assistant.
func roleFor(speaker, assistantName string) Role {
	if assistantName != "" && strings.EqualFold(speaker, assistantName) {
		return RoleAssistant
	}
	if strings.EqualFold(speaker, systemSpeaker) {
		return RoleSystem
	}
	return RoleUser
}
