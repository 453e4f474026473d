// Package output serializes converted messages to JSON, JSONL, or YAML.
package output

import (
	"fmt"
	"io"

	"github.com/jmylchreest/dialogue/pkg/dialogue"
)

// Format represents output format types.
type Format string

const (
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
	FormatYAML  Format = "yaml"
)

// Writer serializes a message sequence.
type Writer interface {
	// WriteMessages outputs the full message sequence.
	WriteMessages(messages []dialogue.Message) error
}

// NewWriter creates a writer for the specified format.
func NewWriter(w io.Writer, format Format) (Writer, error) {
	switch format {
	case FormatJSON:
		return &jsonWriter{w: w, pretty: true, indent: "  "}, nil
	case FormatJSONL:
		return &jsonlWriter{w: w}, nil
	case FormatYAML:
		return &yamlWriter{w: w}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
