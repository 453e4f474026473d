package dialogue

import (
	"regexp"
	"strings"
)

// The markup cleaner is an ordered rewrite pipeline. Order matters: code
// fences go before generic tag removal so fence contents cannot leak tag
// fragments, bold before italic so "**" is not consumed as two italic
// markers, and the paragraph-break encoding runs last over normalized
// blank lines.
var (
	crlfRe         = regexp.MustCompile(`\r\n`)
	multiBreakRe   = regexp.MustCompile(`\n{2,}`)
	backtickFence  = regexp.MustCompile("(?ms)^```[^\n]*\n.*?^```[ \t]*$\n?")
	tildeFence     = regexp.MustCompile(`(?ms)^~~~[^\n]*\n.*?^~~~[ \t]*$\n?`)
	htmlCommentRe  = regexp.MustCompile(`(?s)<!--.*?-->`)
	horizontalRule = regexp.MustCompile(`(?m)^(?:-{3,}|\*{3,}|_{3,})[ \t]*$\n?`)
	blockquoteRe   = regexp.MustCompile(`(?m)^[ \t]*> ?`)
	atxHeaderRe    = regexp.MustCompile(`(?m)^#{1,6}[ \t]*`)
	setextHeaderRe = regexp.MustCompile(`(?m)^([^\n]+)\n(?:={2,}|-{2,})[ \t]*$`)
	inlineLinkRe   = regexp.MustCompile(`!?\[[^\]]*\]\([^)]*\)`)
	refLinkRe      = regexp.MustCompile(`!?\[[^\]]*\]\[[^\]]*\]`)
	inlineCodeRe   = regexp.MustCompile("`([^`\n]*)`")
	boldStarRe     = regexp.MustCompile(`\*\*(.*?)\*\*`)
	boldUnderRe    = regexp.MustCompile(`__(.*?)__`)
	italicStarRe   = regexp.MustCompile(`\*([^*\n]+?)\*`)
	italicUnderRe  = regexp.MustCompile(`_([^_\n]+?)_`)
	listMarkerRe   = regexp.MustCompile(`(?m)^[ \t]*(?:[-*+]|\d+\.)[ \t]+`)
	multiSpaceRe   = regexp.MustCompile(` {2,}`)
	tabRunRe       = regexp.MustCompile(`\n\t{2,}`)
)

// MarkupToPlainText strips lightweight generative-model markup from text,
// producing normalized plain text in canonical form (newline = line
// break, newline+tab = paragraph break). The transformation is lossy by
// design: code blocks, links, and images are dropped entirely, and all
// other formatting is unwrapped to its enclosed text. It never fails;
// empty input yields "".
func MarkupToPlainText(text string) string {
	if text == "" {
		return ""
	}

	// 1. Normalize line endings and blank-line runs.
	s := crlfRe.ReplaceAllString(text, "\n")
	s = multiBreakRe.ReplaceAllString(s, "\n\n")

	// 2. Fenced code blocks, fences and contents both.
	s = backtickFence.ReplaceAllString(s, "")
	s = tildeFence.ReplaceAllString(s, "")

	// 3. Comment regions.
	s = htmlCommentRe.ReplaceAllString(s, "")

	// 4. Generic tag-like spans.
	s = anyTagRe.ReplaceAllString(s, "")

	// 5. Horizontal rules, whole line.
	s = horizontalRule.ReplaceAllString(s, "")

	// 6. Blockquote prefixes, quoted text kept.
	s = blockquoteRe.ReplaceAllString(s, "")

	// 7. ATX header markers, header text kept.
	s = atxHeaderRe.ReplaceAllString(s, "")

	// 8. Setext header underlines, header text kept.
	s = setextHeaderRe.ReplaceAllString(s, "${1}")

	// 9. Links and images, label and target both dropped.
	s = inlineLinkRe.ReplaceAllString(s, "")
	s = refLinkRe.ReplaceAllString(s, "")

	// 10-12. Inline code, bold, italic: delimiters removed, text kept.
	// Italic requires non-empty content so an underscore inside an
	// identifier is not taken for an emphasis marker.
	s = inlineCodeRe.ReplaceAllString(s, "${1}")
	s = boldStarRe.ReplaceAllString(s, "${1}")
	s = boldUnderRe.ReplaceAllString(s, "${1}")
	s = italicStarRe.ReplaceAllString(s, "${1}")
	s = italicUnderRe.ReplaceAllString(s, "${1}")

	// 13. List-item markers.
	s = listMarkerRe.ReplaceAllString(s, "")

	// 14-15. Per-line cleanup. Leading tabs survive both steps: a tab at
	// line start is the canonical paragraph-break mark, which keeps the
	// cleaner idempotent over its own output.
	s = cleanLines(s)

	// 16. Encode blank-line separators as paragraph breaks. Removals above
	// can merge blank lines into longer runs, so re-establish step 1's
	// normalization first.
	s = multiBreakRe.ReplaceAllString(s, "\n\n")
	s = strings.ReplaceAll(s, "\n\n", "\n\t")

	// 17. Final normalization.
	s = strings.Trim(s, " \n\t")
	s = tabRunRe.ReplaceAllString(s, "\n\t")

	return s
}

// cleanLines trims each line, replaces interior tabs with a single space,
// and collapses space runs. Tabs at the start of a line are preserved.
func cleanLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		marks := ""
		for strings.HasPrefix(line, "\t") {
			marks += "\t"
			line = line[1:]
		}
		line = strings.TrimSpace(line)
		line = strings.ReplaceAll(line, "\t", " ")
		line = multiSpaceRe.ReplaceAllString(line, " ")
		lines[i] = marks + line
	}
	return strings.Join(lines, "\n")
}
