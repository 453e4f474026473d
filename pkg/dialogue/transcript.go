package dialogue

import (
	"regexp"
	"strings"

	"github.com/jmylchreest/dialogue/internal/logger"
)

var (
	// speakerPrefixRe matches the "label:" prefix that opens a transcript
	// block, consuming any trailing spaces after the colon.
	speakerPrefixRe = regexp.MustCompile(`^([A-Za-z0-9_-]+):[ \t]*`)

	// blankSeparatorRe matches a run of blank lines. Whether such a run is
	// a block boundary depends on what follows it; see splitBlocks.
	blankSeparatorRe = regexp.MustCompile(`\n(?:[ \t]*\n)+`)
)

// splitBlocks splits a trimmed transcript into blocks at every blank-line
// separator that is followed by a speaker prefix. RE2 has no lookahead, so
// each separator match is tested against the anchored speaker pattern at
// the position just past it; separators that fail the test stay inside the
// surrounding block (they are in-utterance paragraph breaks).
func splitBlocks(text string) []string {
	var blocks []string
	start := 0
	for _, loc := range blankSeparatorRe.FindAllStringIndex(text, -1) {
		if !speakerPrefixRe.MatchString(text[loc[1]:]) {
			continue
		}
		blocks = append(blocks, text[start:loc[0]])
		start = loc[1]
	}
	return append(blocks, text[start:])
}

// parseBlock extracts the speaker label and the canonical-form utterance
// from one block. ok is false when the block has no speaker prefix.
func parseBlock(block string) (speaker, text string, ok bool) {
	m := speakerPrefixRe.FindStringSubmatch(block)
	if m == nil {
		return "", "", false
	}
	raw := block[len(m[0]):]
	raw = blankSeparatorRe.ReplaceAllString(raw, "\n\t")
	return m[1], strings.TrimSpace(raw), true
}

// escapeRichText escapes markup-special characters. Ampersand goes first;
// otherwise the entities introduced by the later replacements would be
// escaped again.
func escapeRichText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	s = strings.ReplaceAll(s, "'", "&#39;")
	return s
}

// PlainTranscriptToRichText formats a plain transcript as a rich-text
// dialogue document, one p.dialogue paragraph per block. Entity escaping
// happens before the canonical tab and newline are converted to markup, so
// the markup-introduced characters come through unescaped. Blocks without
// a speaker prefix are skipped with a diagnostic. Blank input yields "".
func PlainTranscriptToRichText(plainText string) (string, error) {
	trimmed := strings.TrimSpace(plainText)
	if trimmed == "" {
		return "", nil
	}

	var sb strings.Builder
	for i, block := range splitBlocks(trimmed) {
		speaker, text, ok := parseBlock(block)
		if !ok {
			logger.Debug("skipping transcript block without speaker prefix", "block", i)
			continue
		}

		body := escapeRichText(text)
		body = strings.ReplaceAll(body, "\t", "&emsp;")
		body = strings.ReplaceAll(body, "\n", "<br />")

		sb.WriteString(`<p class="dialogue"><span class="speaker">`)
		sb.WriteString(speaker)
		sb.WriteString(`</span> `)
		sb.WriteString(body)
		sb.WriteString("</p>\n")
	}
	return strings.TrimRight(sb.String(), " \t\n"), nil
}

// PlainTranscriptToMessages parses a plain transcript into messages. When
// no assistant name option is supplied this path falls back to
// DefaultAssistantName; supplying WithAssistantName (even with an empty
// value) suppresses the fallback. Blocks without a speaker prefix are
// skipped with a diagnostic. Blank input yields an empty slice.
func PlainTranscriptToMessages(plainText string, opts ...Option) ([]Message, error) {
	cfg := newConfig(opts...)
	assistantName := cfg.assistantNameOrDefault()

	messages := []Message{}
	trimmed := strings.TrimSpace(plainText)
	if trimmed == "" {
		return messages, nil
	}

	for i, block := range splitBlocks(trimmed) {
		speaker, text, ok := parseBlock(block)
		if !ok {
			logger.Debug("skipping transcript block without speaker prefix", "block", i)
			continue
		}
		messages = append(messages, Message{
			Role:    roleFor(speaker, assistantName),
			Name:    speaker,
			Content: text,
		})
	}
	return messages, nil
}

// MessagesToPlainTranscript formats messages as a plain transcript. It
// never fails: a nil or empty slice yields "", and entries without a name
// or content are skipped with a diagnostic. Runs of blank lines inside
// content are folded to the canonical paragraph break so the output parses
// back into the same messages.
func MessagesToPlainTranscript(messages []Message) string {
	var sb strings.Builder
	for i, m := range messages {
		if m.Name == "" || m.Content == "" {
			logger.Debug("skipping message without name or content", "message", i)
			continue
		}
		content := blankSeparatorRe.ReplaceAllString(m.Content, "\n\t")
		sb.WriteString(strings.TrimSpace(m.Name))
		sb.WriteString(": ")
		sb.WriteString(strings.TrimSpace(content))
		sb.WriteString("\n\n")
	}
	return sb.String()
}
