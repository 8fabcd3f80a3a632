package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Provider  string         `mapstructure:"provider"`
	Markdown  bool           `mapstructure:"markdown"`
	Colors    bool           `mapstructure:"colors"`
	Ask       AskConfig      `mapstructure:"ask"`
	Anthropic ProviderConfig `mapstructure:"anthropic"`
	OpenAI    ProviderConfig `mapstructure:"openai"`
	Gemini    ProviderConfig `mapstructure:"gemini"`
	Ollama    CompatConfig   `mapstructure:"ollama"`
	LMStudio  CompatConfig   `mapstructure:"lmstudio"`
	Compat    CompatConfig   `mapstructure:"openai-compat"`
}

type AskConfig struct {
	Instructions string `mapstructure:"instructions"` // Custom system prompt for answers
}

// ProviderConfig configures a hosted provider reached through its own SDK.
type ProviderConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// CompatConfig configures an OpenAI-compatible server reached by base URL.
type CompatConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
	APIKey  string `mapstructure:"api_key"` // Optional, local servers ignore it
}

func Load() (*Config, error) {
	configPath, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config dir: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("json")
	viper.AddConfigPath(configPath)
	viper.AddConfigPath(".")

	// Set defaults
	viper.SetDefault("provider", "anthropic")
	viper.SetDefault("markdown", true)
	viper.SetDefault("colors", true)
	viper.SetDefault("anthropic.model", "claude-sonnet-4-5")
	viper.SetDefault("openai.model", "gpt-5.2")
	viper.SetDefault("gemini.model", "gemini-3-flash-preview")
	viper.SetDefault("ollama.base_url", "http://localhost:11434/v1")
	viper.SetDefault("lmstudio.base_url", "http://localhost:1234/v1")
	// openai-compat has no base_url default - it's required

	// Read config file (optional - won't error if missing)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	resolveCredentials(&cfg)

	return &cfg, nil
}

// resolveCredentials fills API keys from the environment when the config
// leaves them empty, expanding ${VAR} references first.
func resolveCredentials(cfg *Config) {
	cfg.Anthropic.APIKey = expandEnv(cfg.Anthropic.APIKey)
	if cfg.Anthropic.APIKey == "" {
		cfg.Anthropic.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	}

	cfg.OpenAI.APIKey = expandEnv(cfg.OpenAI.APIKey)
	if cfg.OpenAI.APIKey == "" {
		cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	}

	cfg.Gemini.APIKey = expandEnv(cfg.Gemini.APIKey)
	if cfg.Gemini.APIKey == "" {
		cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	cfg.Ollama.APIKey = expandEnv(cfg.Ollama.APIKey)
	cfg.Ollama.BaseURL = expandEnv(cfg.Ollama.BaseURL)
	cfg.LMStudio.APIKey = expandEnv(cfg.LMStudio.APIKey)
	cfg.LMStudio.BaseURL = expandEnv(cfg.LMStudio.BaseURL)
	cfg.Compat.APIKey = expandEnv(cfg.Compat.APIKey)
	cfg.Compat.BaseURL = expandEnv(cfg.Compat.BaseURL)
}

// ApplyOverrides applies provider and model overrides to the config.
// If provider is non-empty, it overrides the global provider.
// If model is non-empty, it overrides the model for the active provider.
func (c *Config) ApplyOverrides(provider, model string) {
	if provider != "" {
		c.Provider = provider
	}
	if model != "" {
		switch c.Provider {
		case "anthropic":
			c.Anthropic.Model = model
		case "openai":
			c.OpenAI.Model = model
		case "gemini":
			c.Gemini.Model = model
		case "ollama":
			c.Ollama.Model = model
		case "lmstudio":
			c.LMStudio.Model = model
		case "openai-compat":
			c.Compat.Model = model
		}
	}
}

// ActiveModel returns the configured model for the active provider.
func (c *Config) ActiveModel() string {
	switch c.Provider {
	case "anthropic":
		return c.Anthropic.Model
	case "openai":
		return c.OpenAI.Model
	case "gemini":
		return c.Gemini.Model
	case "ollama":
		return c.Ollama.Model
	case "lmstudio":
		return c.LMStudio.Model
	case "openai-compat":
		return c.Compat.Model
	}
	return ""
}

// expandEnv expands ${VAR} or $VAR in a string
func expandEnv(s string) string {
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		varName := s[2 : len(s)-1]
		return os.Getenv(varName)
	}
	if strings.HasPrefix(s, "$") {
		return os.Getenv(s[1:])
	}
	return s
}

// GetConfigDir returns the XDG config directory for askmd.
// Uses $XDG_CONFIG_HOME if set, otherwise ~/.config
func GetConfigDir() (string, error) {
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		return filepath.Join(xdgHome, "askmd"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "askmd"), nil
}

// GetConfigPath returns the path where the config file should be located
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// Exists returns true if a config file exists
func Exists() bool {
	path, err := GetConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// fileConfig mirrors Config for JSON persistence. Provider API keys are
// never written back; they belong in the environment or were typed into
// the file by hand. Only the openai-compat key is persisted since local
// gateways often require a literal token.
type fileConfig struct {
	Provider  string        `json:"provider"`
	Markdown  bool          `json:"markdown"`
	Colors    bool          `json:"colors"`
	Ask       fileAskConfig `json:"ask,omitempty"`
	Anthropic fileProvider  `json:"anthropic,omitempty"`
	OpenAI    fileProvider  `json:"openai,omitempty"`
	Gemini    fileProvider  `json:"gemini,omitempty"`
	Ollama    fileCompat    `json:"ollama,omitempty"`
	LMStudio  fileCompat    `json:"lmstudio,omitempty"`
	Compat    fileCompat    `json:"openai-compat,omitempty"`
}

type fileAskConfig struct {
	Instructions string `json:"instructions,omitempty"`
}

type fileProvider struct {
	APIKey string `json:"api_key,omitempty"`
	Model  string `json:"model,omitempty"`
}

type fileCompat struct {
	BaseURL string `json:"base_url,omitempty"`
	Model   string `json:"model,omitempty"`
	APIKey  string `json:"api_key,omitempty"`
}

// Save writes the config to disk as indented JSON.
func Save(cfg *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	fc := fileConfig{
		Provider:  cfg.Provider,
		Markdown:  cfg.Markdown,
		Colors:    cfg.Colors,
		Ask:       fileAskConfig{Instructions: cfg.Ask.Instructions},
		Anthropic: fileProvider{Model: cfg.Anthropic.Model},
		OpenAI:    fileProvider{Model: cfg.OpenAI.Model},
		Gemini:    fileProvider{Model: cfg.Gemini.Model},
		Ollama:    fileCompat{BaseURL: cfg.Ollama.BaseURL, Model: cfg.Ollama.Model},
		LMStudio:  fileCompat{BaseURL: cfg.LMStudio.BaseURL, Model: cfg.LMStudio.Model},
		Compat:    fileCompat{BaseURL: cfg.Compat.BaseURL, Model: cfg.Compat.Model, APIKey: cfg.Compat.APIKey},
	}

	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	data = append(data, '\n')

	return os.WriteFile(path, data, 0600)
}
