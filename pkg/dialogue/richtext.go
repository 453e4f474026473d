package dialogue

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jmylchreest/dialogue/internal/logger"
)

// Selectors for the rich-text dialogue format. Only paragraphs explicitly
// marked as dialogue participate in conversion; anything else in the
// document is ignored.
const (
	dialogueSelector = "p.dialogue"
	speakerSelector  = "span.speaker"
)

var (
	// A line-break element immediately followed by a decorative em space
	// (entity or the raw U+2003 character, optionally separated by
	// whitespace) marks a paragraph break within one utterance.
	breakEmSpaceRe = regexp.MustCompile(`(?i)<br\s*/?>\s*(?:&emsp;|\x{2003})`)
	lineBreakRe    = regexp.MustCompile(`(?i)<br\s*/?>`)
	anyTagRe       = regexp.MustCompile(`<[^>]*>`)
)

// utterance is one speaker turn extracted from a dialogue paragraph,
// with the body in canonical form.
type utterance struct {
	speaker string
	text    string
}

// extractUtterance isolates the speaker label and body from one p.dialogue
// selection. ok is false when the paragraph has no speaker span; such
// paragraphs contribute nothing to output.
func extractUtterance(p *goquery.Selection) (utterance, bool) {
	span := p.Find(speakerSelector).First()
	if span.Length() == 0 {
		return utterance{}, false
	}

	speaker := strings.TrimSpace(span.Text())

	inner, err := p.Html()
	if err != nil {
		return utterance{}, false
	}
	spanMarkup, err := goquery.OuterHtml(span)
	if err != nil {
		return utterance{}, false
	}

	// The body is everything after the speaker label element.
	body := inner
	if idx := strings.Index(inner, spanMarkup); idx >= 0 {
		body = inner[idx+len(spanMarkup):]
	}

	// A single leading space is a generation artifact between the label
	// and the body; exactly one is dropped.
	body = strings.TrimPrefix(body, " ")

	body = breakEmSpaceRe.ReplaceAllString(body, "\n\t")
	body = lineBreakRe.ReplaceAllString(body, "\n")
	body = anyTagRe.ReplaceAllString(body, "")
	body = html.UnescapeString(body)

	return utterance{speaker: speaker, text: strings.TrimSpace(body)}, true
}

// parseDialogue parses a rich-text document and extracts all dialogue
// utterances in document order.
func parseDialogue(richText string) ([]utterance, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(richText))
	if err != nil {
		return nil, fmt.Errorf("parsing rich text: %w", err)
	}

	var utterances []utterance
	doc.Find(dialogueSelector).Each(func(i int, p *goquery.Selection) {
		u, ok := extractUtterance(p)
		if !ok {
			logger.Debug("skipping dialogue paragraph without speaker label", "paragraph", i)
			return
		}
		utterances = append(utterances, u)
	})
	return utterances, nil
}

// RichTextToMessages parses a rich-text dialogue document into messages.
// The speaker label is preserved as Message.Name with its original case;
// the role is inferred from it (see WithAssistantName). On this path an
// unset assistant name means no speaker classifies as assistant.
//
// Empty input is rejected with *InvalidInputError. A document containing
// no dialogue paragraphs yields an empty slice.
func RichTextToMessages(richText string, opts ...Option) ([]Message, error) {
	if richText == "" {
		return nil, &InvalidInputError{Op: "RichTextToMessages", Reason: "empty rich text"}
	}
	cfg := newConfig(opts...)

	utterances, err := parseDialogue(richText)
	if err != nil {
		return nil, err
	}

	messages := make([]Message, 0, len(utterances))
	for _, u := range utterances {
		messages = append(messages, Message{
			Role:    roleFor(u.speaker, cfg.assistantName),
			Name:    u.speaker,
			Content: u.text,
		})
	}
	return messages, nil
}

// RichTextToPlainTranscript parses a rich-text dialogue document and
// renders it as a plain transcript, one "speaker: utterance" block per
// dialogue paragraph. Pairs where both the speaker and the utterance are
// blank are dropped; a pair with only one side blank is kept.
// Blank input yields "".
func RichTextToPlainTranscript(richText string) (string, error) {
	if strings.TrimSpace(richText) == "" {
		return "", nil
	}

	utterances, err := parseDialogue(richText)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, u := range utterances {
		if u.speaker == "" && u.text == "" {
			continue
		}
		sb.WriteString(u.speaker)
		sb.WriteString(": ")
		sb.WriteString(u.text)
		sb.WriteString("\n\n")
	}
	return sb.String(), nil
}
