// Package commands implements the CLI commands for dialogue.
package commands

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "dialogue",
	Short: "Convert chat transcripts between rich text, plain text, and message formats",
	Long: `Dialogue converts chat-transcript data among three representations:
a styled HTML dialogue format, a plain speaker-prefixed text format, and
a structured message list compatible with chat-completion APIs. It also
cleans lightweight markup out of generative-model output.

Examples:
  # Rich-text HTML to a JSON message list
  dialogue convert --from richtext --to messages -f chat.html

  # Plain transcript to rich text, naming the assistant speaker
  dialogue convert --from transcript --to richtext \
      --assistant-name "HAL" -f chat.txt

  # Strip markup from model output
  dialogue clean -f answer.md`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.dialogue.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress output")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".dialogue")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("DIALOGUE")
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
