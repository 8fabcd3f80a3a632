package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/termtools/askmd/internal/config"
	"github.com/termtools/askmd/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and edit configuration",
	Long: `View and edit the askmd configuration.

Examples:
  askmd config                          # show current configuration
  askmd config path                     # print config file location
  askmd config init                     # write a default config file
  askmd config set provider openai      # change the default provider
  askmd config get anthropic.model      # read a single value`,
	RunE: runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if config.Exists() {
			path, _ := config.GetConfigPath()
			return fmt.Errorf("config already exists at %s", path)
		}
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
		path, _ := config.GetConfigPath()
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := setConfigKey(cfg, args[0], args[1]); err != nil {
			return err
		}
		return config.Save(cfg)
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a single config value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		value, err := getConfigKey(cfg, args[0])
		if err != nil {
			return err
		}
		fmt.Println(value)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	styles := ui.NewStyles(os.Stdout)
	path, _ := config.GetConfigPath()

	fmt.Println(styles.Title.Render("askmd configuration"))
	fmt.Println(styles.Subtitle.Render(path))
	fmt.Println()

	fmt.Printf("%s %s\n", styles.Bold.Render("provider:"), cfg.Provider)
	fmt.Printf("%s %s\n", styles.Bold.Render("model:"), cfg.ActiveModel())
	fmt.Printf("%s %t\n", styles.Bold.Render("markdown:"), cfg.Markdown)
	fmt.Printf("%s %t\n", styles.Bold.Render("colors:"), cfg.Colors)
	if cfg.Ask.Instructions != "" {
		fmt.Printf("%s %s\n", styles.Bold.Render("instructions:"), ui.Truncate(cfg.Ask.Instructions, 60))
	}
	fmt.Println()

	fmt.Println(styles.Bold.Render("credentials:"))
	printKeyStatus(styles, "anthropic", cfg.Anthropic.APIKey)
	printKeyStatus(styles, "openai", cfg.OpenAI.APIKey)
	printKeyStatus(styles, "gemini", cfg.Gemini.APIKey)

	return nil
}

func printKeyStatus(styles *ui.Styles, name, key string) {
	if key != "" {
		fmt.Printf("  %s %s\n", name, styles.Success.Render("✓ set"))
	} else {
		fmt.Printf("  %s %s\n", name, styles.Muted.Render("○ not set"))
	}
}

func setConfigKey(cfg *config.Config, key, value string) error {
	switch key {
	case "provider":
		cfg.Provider = value
	case "markdown", "colors":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s expects true or false, got %q", key, value)
		}
		if key == "markdown" {
			cfg.Markdown = b
		} else {
			cfg.Colors = b
		}
	case "ask.instructions":
		cfg.Ask.Instructions = value
	case "anthropic.model":
		cfg.Anthropic.Model = value
	case "openai.model":
		cfg.OpenAI.Model = value
	case "gemini.model":
		cfg.Gemini.Model = value
	case "ollama.model":
		cfg.Ollama.Model = value
	case "ollama.base_url":
		cfg.Ollama.BaseURL = value
	case "lmstudio.model":
		cfg.LMStudio.Model = value
	case "lmstudio.base_url":
		cfg.LMStudio.BaseURL = value
	case "openai-compat.model":
		cfg.Compat.Model = value
	case "openai-compat.base_url":
		cfg.Compat.BaseURL = value
	case "openai-compat.api_key":
		cfg.Compat.APIKey = value
	default:
		return fmt.Errorf("unknown config key %q\n\nKnown keys: %s", key, strings.Join(configKeys, ", "))
	}
	return nil
}

func getConfigKey(cfg *config.Config, key string) (string, error) {
	switch key {
	case "provider":
		return cfg.Provider, nil
	case "markdown":
		return strconv.FormatBool(cfg.Markdown), nil
	case "colors":
		return strconv.FormatBool(cfg.Colors), nil
	case "ask.instructions":
		return cfg.Ask.Instructions, nil
	case "anthropic.model":
		return cfg.Anthropic.Model, nil
	case "openai.model":
		return cfg.OpenAI.Model, nil
	case "gemini.model":
		return cfg.Gemini.Model, nil
	case "ollama.model":
		return cfg.Ollama.Model, nil
	case "ollama.base_url":
		return cfg.Ollama.BaseURL, nil
	case "lmstudio.model":
		return cfg.LMStudio.Model, nil
	case "lmstudio.base_url":
		return cfg.LMStudio.BaseURL, nil
	case "openai-compat.model":
		return cfg.Compat.Model, nil
	case "openai-compat.base_url":
		return cfg.Compat.BaseURL, nil
	case "openai-compat.api_key":
		return cfg.Compat.APIKey, nil
	default:
		return "", fmt.Errorf("unknown config key %q\n\nKnown keys: %s", key, strings.Join(configKeys, ", "))
	}
}

var configKeys = []string{
	"provider", "markdown", "colors", "ask.instructions",
	"anthropic.model", "openai.model", "gemini.model",
	"ollama.model", "ollama.base_url",
	"lmstudio.model", "lmstudio.base_url",
	"openai-compat.model", "openai-compat.base_url", "openai-compat.api_key",
}
