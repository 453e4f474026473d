package dialogue

import "testing"

func TestRoleFor(t *testing.T) {
	tests := []struct {
		name          string
		speaker       string
		assistantName string
		want          Role
	}{
		{"assistant_exact", "HAL", "HAL", RoleAssistant},
		{"assistant_case_insensitive", "hal", "HAL", RoleAssistant},
		{"system_literal", "INSTRUCTIONS", "", RoleSystem},
		{"system_case_insensitive", "instructions", "", RoleSystem},
		{"plain_user", "Alice", "", RoleUser},
		{"user_when_assistant_differs", "Alice", "HAL", RoleUser},
		{"assistant_beats_system", "INSTRUCTIONS", "INSTRUCTIONS", RoleAssistant},
		// An empty assistant name must never match, not even an empty speaker.
		{"empty_assistant_never_matches", "", "", RoleUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := roleFor(tt.speaker, tt.assistantName); got != tt.want {
				t.Errorf("roleFor(%q, %q) = %q, want %q", tt.speaker, tt.assistantName, got, tt.want)
			}
		})
	}
}

// The two parsing paths diverge on purpose when no assistant name is
// supplied: the plain-transcript path falls back to DefaultAssistantName
// while the rich-text path leaves it unset, so the same speaker can
// classify differently. This pins both behaviors down.
func TestAssistantNameFallbackDivergence(t *testing.T) {
	plain := DefaultAssistantName + ": Hello\n\n"
	richText := `<p class="dialogue"><span class="speaker">` + DefaultAssistantName + `</span> Hello</p>`

	fromPlain, err := PlainTranscriptToMessages(plain)
	if err != nil {
		t.Fatalf("PlainTranscriptToMessages() error = %v", err)
	}
	if len(fromPlain) != 1 || fromPlain[0].Role != RoleAssistant {
		t.Errorf("plain-transcript path: got %+v, want one assistant message", fromPlain)
	}

	fromRich, err := RichTextToMessages(richText)
	if err != nil {
		t.Fatalf("RichTextToMessages() error = %v", err)
	}
	if len(fromRich) != 1 || fromRich[0].Role != RoleUser {
		t.Errorf("rich-text path: got %+v, want one user message (no fallback)", fromRich)
	}

	// Supplying the option, even empty, suppresses the fallback.
	suppressed, err := PlainTranscriptToMessages(plain, WithAssistantName(""))
	if err != nil {
		t.Fatalf("PlainTranscriptToMessages() error = %v", err)
	}
	if len(suppressed) != 1 || suppressed[0].Role != RoleUser {
		t.Errorf("suppressed fallback: got %+v, want one user message", suppressed)
	}
}
