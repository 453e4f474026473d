package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/dialogue/internal/logger"
	"github.com/jmylchreest/dialogue/pkg/dialogue"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Strip lightweight markup from generative-model output",
	Long: `Clean removes Markdown-style markup from text: code fences and
their contents, links and images, headers, emphasis delimiters, list
markers, and blockquote prefixes. The remaining text is normalized so a
single newline is a line break and newline+tab is a paragraph break.

Examples:
  dialogue clean -f answer.md
  cat answer.md | dialogue clean -o answer.txt`,
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	flags := cleanCmd.Flags()
	flags.StringP("file", "f", "", "input file (default: stdin)")
	flags.StringP("output", "o", "", "output file (default: stdout)")
}

func runClean(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	input, err := readInput(cmd)
	if err != nil {
		return err
	}

	return writeOutput(cmd, dialogue.MarkupToPlainText(input))
}
