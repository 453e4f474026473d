package output

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/jmylchreest/dialogue/pkg/dialogue"
)

// jsonWriter writes the message sequence as one JSON array.
type jsonWriter struct {
	w      io.Writer
	pretty bool
	indent string
}

func (w *jsonWriter) WriteMessages(messages []dialogue.Message) error {
	if messages == nil {
		messages = []dialogue.Message{}
	}

	var out []byte
	var err error
	if w.pretty {
		out, err = json.MarshalIndent(messages, "", w.indent)
	} else {
		out, err = json.Marshal(messages)
	}
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w.w)
	if _, err := bw.Write(out); err != nil {
		return err
	}
	if _, err := bw.WriteString("\n"); err != nil {
		return err
	}
	return bw.Flush()
}

// jsonlWriter writes one JSON object per line (JSONL).
type jsonlWriter struct {
	w io.Writer
}

func (w *jsonlWriter) WriteMessages(messages []dialogue.Message) error {
	bw := bufio.NewWriter(w.w)
	enc := json.NewEncoder(bw)
	for _, m := range messages {
		if err := enc.Encode(m); err != nil {
			return err
		}
	}
	return bw.Flush()
}
