package dialogue

import "testing"

func TestMarkupToPlainText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "header_and_bold",
			input: "# Title\n\nSome **bold** text.",
			want:  "Title\n\tSome bold text.",
		},
		{
			name:  "crlf_normalized",
			input: "one\r\n\r\ntwo",
			want:  "one\n\ttwo",
		},
		{
			name:  "blank_line_runs_collapsed",
			input: "one\n\n\n\n\ntwo",
			want:  "one\n\ttwo",
		},
		{
			name:  "backtick_fence_dropped_with_content",
			input: "before\n```go\nfmt.Println(\"hi\")\n```\nafter",
			want:  "before\nafter",
		},
		{
			name:  "tilde_fence_dropped_with_content",
			input: "before\n~~~\nsecret code\n~~~\nafter",
			want:  "before\nafter",
		},
		{
			name:  "comment_region_removed",
			input: "keep <!-- drop this --> keep",
			want:  "keep keep",
		},
		{
			name:  "tag_spans_removed",
			input: "a <div>wrapped</div> word",
			want:  "a wrapped word",
		},
		{
			name:  "horizontal_rules_removed",
			input: "above\n---\nbelow\n***\nend",
			want:  "above\nbelow\nend",
		},
		{
			name:  "blockquote_prefix_removed",
			input: "> quoted line\n> another",
			want:  "quoted line\nanother",
		},
		{
			name:  "all_header_levels_unwrapped",
			input: "## Second\n###### Sixth",
			want:  "Second\nSixth",
		},
		{
			name:  "setext_header_unwrapped",
			input: "Heading\n=====\nbody",
			want:  "Heading\nbody",
		},
		{
			name:  "link_removed_entirely",
			input: "see [the docs](https://example.com/docs) for more",
			want:  "see for more",
		},
		{
			name:  "image_removed_entirely",
			input: "photo ![alt text](https://example.com/x.png) here",
			want:  "photo here",
		},
		{
			name:  "inline_code_unwrapped",
			input: "run `go build` first",
			want:  "run go build first",
		},
		{
			name:  "bold_variants_unwrapped",
			input: "**stars** and __unders__",
			want:  "stars and unders",
		},
		{
			name:  "italic_variants_unwrapped",
			input: "*stars* and _unders_",
			want:  "stars and unders",
		},
		{
			name:  "identifier_underscore_untouched",
			input: "call snake_case now",
			want:  "call snake_case now",
		},
		{
			name:  "list_markers_removed",
			input: "- one\n* two\n+ three\n1. four\n12. five",
			want:  "one\ntwo\nthree\nfour\nfive",
		},
		{
			name:  "lines_trimmed",
			input: "  padded   \n   indented",
			want:  "padded\nindented",
		},
		{
			name:  "tabs_and_space_runs_collapsed",
			input: "a\tb    c",
			want:  "a b c",
		},
		{
			name:  "empty_input",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace_only",
			input: " \n \n ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MarkupToPlainText(tt.input); got != tt.want {
				t.Errorf("MarkupToPlainText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Cleaning already-cleaned text must be a no-op, including text carrying
// the canonical newline+tab paragraph marks the cleaner itself emits.
func TestMarkupToPlainTextIdempotent(t *testing.T) {
	inputs := []string{
		"# Title\n\nSome **bold** text.",
		"intro\n\n> a quote\n\n- item one\n- item two",
		"para one\r\n\r\npara two\r\n\r\npara three",
		"plain text, nothing to do",
	}

	for _, input := range inputs {
		once := MarkupToPlainText(input)
		twice := MarkupToPlainText(once)
		if twice != once {
			t.Errorf("not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}
