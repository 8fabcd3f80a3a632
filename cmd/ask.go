package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/termtools/askmd/internal/config"
	"github.com/termtools/askmd/internal/input"
	"github.com/termtools/askmd/internal/llm"
	"github.com/termtools/askmd/internal/prompt"
	"github.com/termtools/askmd/internal/signal"
	"github.com/termtools/askmd/internal/ui"
	"github.com/termtools/askmd/internal/ui/streaming"
)

func runAsk(cmd *cobra.Command, args []string) error {
	question := strings.Join(args, " ")

	ctx, stop := signal.NotifyContext()
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Apply overrides: --provider may carry provider:model, --model wins
	providerName, providerModel := llm.ParseProviderModel(rootProvider)
	model := rootModel
	if model == "" {
		model = providerModel
	}
	cfg.ApplyOverrides(providerName, model)

	stdin, err := input.ReadStdin()
	if err != nil {
		return err
	}
	if strings.TrimSpace(question) == "" && strings.TrimSpace(stdin) == "" {
		return fmt.Errorf("question required (pass as argument or pipe via stdin)")
	}

	provider, err := llm.NewProvider(cfg)
	if err != nil {
		return err
	}

	var messages []llm.Message
	instructions := rootSystemMsg
	if instructions == "" {
		instructions = cfg.Ask.Instructions
	}
	if sys := prompt.AskSystemPrompt(instructions); sys != "" {
		messages = append(messages, llm.SystemText(sys))
	}
	messages = append(messages, llm.UserText(prompt.AskUserPrompt(question, stdin)))

	stream, err := provider.Stream(ctx, llm.Request{
		Messages: messages,
		Debug:    rootDebug,
	})
	if err != nil {
		return err
	}
	defer stream.Close()

	return streamResponse(ctx, stream, newResponseRenderer(cfg))
}

// newResponseRenderer builds a fresh renderer for one response. Styling
// needs both colors enabled in config and stdout attached to a terminal.
func newResponseRenderer(cfg *config.Config) *streaming.Renderer {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	palette := streaming.PlainPalette()
	if cfg.Colors && !rootNoColor && isTTY {
		palette = streaming.NewPalette(lipgloss.NewRenderer(os.Stdout))
	}

	opts := []streaming.Option{
		streaming.WithMarkdown(cfg.Markdown && !rootText),
		streaming.WithPalette(palette),
	}
	if isTTY {
		if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 && width < 60 {
			opts = append(opts, streaming.WithRuleWidth(width))
		}
	}
	return streaming.New(opts...)
}

// streamResponse consumes provider events and writes rendered output to
// stdout. A spinner runs on stderr until the first token arrives. On
// interrupt, partial output stays on screen.
func streamResponse(ctx context.Context, stream llm.Stream, renderer *streaming.Renderer) error {
	spin := ui.NewSpinner("thinking...")
	spin.Start()
	spinning := true
	stopSpinner := func() {
		if spinning {
			spin.Stop()
			spinning = false
		}
	}
	defer stopSpinner()

	for {
		event, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			stopSpinner()
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				fmt.Println()
				return nil
			}
			return err
		}

		switch event.Type {
		case llm.EventTextDelta:
			stopSpinner()
			fmt.Print(renderer.Feed(event.Text))
		case llm.EventRetry:
			fmt.Fprintf(os.Stderr, "\rRate limited (%d/%d), waiting %.0fs...\n",
				event.RetryAttempt, event.RetryMaxAttempts, event.RetryWaitSecs)
		case llm.EventUsage:
			if rootDebug && event.Use != nil {
				fmt.Fprintf(os.Stderr, "tokens: %d in, %d out\n",
					event.Use.InputTokens, event.Use.OutputTokens)
			}
		case llm.EventError:
			if event.Err != nil {
				stopSpinner()
				return event.Err
			}
		}
	}

	stopSpinner()
	fmt.Print(renderer.Flush())
	return nil
}
