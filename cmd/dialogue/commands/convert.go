package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/dialogue/internal/logger"
	"github.com/jmylchreest/dialogue/internal/output"
	"github.com/jmylchreest/dialogue/pkg/dialogue"
)

// convertOptions holds the validated convert command inputs.
type convertOptions struct {
	From   string `validate:"required,oneof=richtext transcript messages"`
	To     string `validate:"required,oneof=richtext transcript messages,nefield=From"`
	Format string `validate:"oneof=json jsonl yaml"`
}

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a transcript from one representation to another",
	Long: `Convert chat-transcript data between representations.

Representations:
  richtext    styled HTML dialogue (<p class="dialogue"> paragraphs)
  transcript  plain "speaker: utterance" blocks separated by blank lines
  messages    JSON list of {role, name, content} records

The assistant name decides which speaker is classified with the
assistant role. It can come from --assistant-name, the assistant_name
config key, or the DIALOGUE_ASSISTANT_NAME environment variable.

Examples:
  dialogue convert --from richtext --to messages -f chat.html
  dialogue convert --from transcript --to richtext -f chat.txt -o chat.html
  dialogue convert --from messages --to transcript -f messages.json`,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	flags := convertCmd.Flags()
	flags.String("from", "", "input representation: richtext, transcript, messages")
	flags.String("to", "", "output representation: richtext, transcript, messages")
	flags.StringP("file", "f", "", "input file (default: stdin)")
	flags.StringP("output", "o", "", "output file (default: stdout)")
	flags.String("format", "json", "message output format: json, jsonl, yaml")
	flags.String("assistant-name", "", "speaker label classified as the assistant")

	_ = convertCmd.MarkFlagRequired("from")
	_ = convertCmd.MarkFlagRequired("to")

	_ = viper.BindPFlag("assistant_name", flags.Lookup("assistant-name"))
}

func runConvert(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	opts := convertOptions{}
	opts.From, _ = cmd.Flags().GetString("from")
	opts.To, _ = cmd.Flags().GetString("to")
	opts.Format, _ = cmd.Flags().GetString("format")

	if err := validator.New().Struct(opts); err != nil {
		return fmt.Errorf("invalid convert options: %w", err)
	}

	input, err := readInput(cmd)
	if err != nil {
		return err
	}

	// The assistant name only counts as supplied when it was actually
	// configured; an unset name keeps each converter's documented
	// fallback behavior.
	var libOpts []dialogue.Option
	if viper.IsSet("assistant_name") && viper.GetString("assistant_name") != "" {
		libOpts = append(libOpts, dialogue.WithAssistantName(viper.GetString("assistant_name")))
	}

	logger.Debug("converting", "from", opts.From, "to", opts.To)

	// Normalize the input to messages or a plain transcript, then render.
	switch opts.To {
	case "messages":
		messages, err := toMessages(opts.From, input, libOpts)
		if err != nil {
			return err
		}
		return writeMessages(cmd, messages, output.Format(opts.Format))
	case "transcript":
		transcript, err := toTranscript(opts.From, input, libOpts)
		if err != nil {
			return err
		}
		return writeOutput(cmd, transcript)
	case "richtext":
		transcript, err := toTranscript(opts.From, input, libOpts)
		if err != nil {
			return err
		}
		richText, err := dialogue.PlainTranscriptToRichText(transcript)
		if err != nil {
			return err
		}
		return writeOutput(cmd, richText)
	}
	return fmt.Errorf("unsupported conversion: %s to %s", opts.From, opts.To)
}

func toMessages(from, input string, opts []dialogue.Option) ([]dialogue.Message, error) {
	switch from {
	case "richtext":
		return dialogue.RichTextToMessages(input, opts...)
	case "transcript":
		return dialogue.PlainTranscriptToMessages(input, opts...)
	}
	return nil, fmt.Errorf("cannot read messages from %s", from)
}

func toTranscript(from, input string, opts []dialogue.Option) (string, error) {
	switch from {
	case "richtext":
		return dialogue.RichTextToPlainTranscript(input)
	case "transcript":
		return input, nil
	case "messages":
		var messages []dialogue.Message
		if err := json.Unmarshal([]byte(input), &messages); err != nil {
			return "", fmt.Errorf("parsing message JSON: %w", err)
		}
		return dialogue.MessagesToPlainTranscript(messages), nil
	}
	return "", fmt.Errorf("cannot read transcript from %s", from)
}

func readInput(cmd *cobra.Command) (string, error) {
	path, _ := cmd.Flags().GetString("file")
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading file %s: %w", path, err)
	}
	return string(data), nil
}

func writeOutput(cmd *cobra.Command, content string) error {
	path, _ := cmd.Flags().GetString("output")
	if path == "" {
		fmt.Println(content)
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}

func writeMessages(cmd *cobra.Command, messages []dialogue.Message, format output.Format) error {
	path, _ := cmd.Flags().GetString("output")

	dest := io.Writer(os.Stdout)
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		dest = f
	}

	w, err := output.NewWriter(dest, format)
	if err != nil {
		return err
	}
	return w.WriteMessages(messages)
}
