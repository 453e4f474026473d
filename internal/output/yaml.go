package output

import (
	"bufio"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/dialogue/pkg/dialogue"
)

// yamlWriter writes the message sequence as a YAML list.
type yamlWriter struct {
	w io.Writer
}

func (w *yamlWriter) WriteMessages(messages []dialogue.Message) error {
	if messages == nil {
		messages = []dialogue.Message{}
	}

	bw := bufio.NewWriter(w.w)
	enc := yaml.NewEncoder(bw)
	enc.SetIndent(2)
	if err := enc.Encode(messages); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return bw.Flush()
}
