package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	rootProvider  string
	rootModel     string
	rootSystemMsg string
	rootText      bool
	rootNoColor   bool
	rootDebug     bool
)

var rootCmd = &cobra.Command{
	Use:   "askmd [question]",
	Short: "Ask an AI model and stream the answer as rendered markdown",
	Long: `askmd sends a question to a hosted AI model and streams the answer to
your terminal with live markdown rendering.

The question can be a direct argument, piped stdin, or both (piped data
becomes context for the question).

Examples:
  askmd "What is the capital of France?"
  askmd "How do I reverse a string in Go?" -p openai
  cat error.log | askmd "What went wrong?"
  git diff | askmd "Write a commit message" --text
  askmd "List 5 programming languages" --no-color

  askmd config                          # view configuration
  askmd models -p anthropic             # list available models`,
	Args:              cobra.ArbitraryArgs,
	RunE:              runAsk,
	SilenceUsage:      true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

func init() {
	AddProviderFlag(rootCmd, &rootProvider)
	AddDebugFlag(rootCmd, &rootDebug)
	AddSystemMessageFlag(rootCmd, &rootSystemMsg)
	rootCmd.Flags().StringVar(&rootModel, "model", "", "Override model for the active provider")
	rootCmd.Flags().BoolVarP(&rootText, "text", "t", false, "Output plain text instead of rendered markdown")
	rootCmd.Flags().BoolVar(&rootNoColor, "no-color", false, "Disable colored output")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
