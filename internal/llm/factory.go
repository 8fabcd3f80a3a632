package llm

import (
	"fmt"
	"strings"

	"github.com/termtools/askmd/internal/config"
)

// ParseProviderModel splits a "provider:model" override. A bare provider
// name leaves the model empty.
func ParseProviderModel(s string) (provider, model string) {
	if idx := strings.Index(s, ":"); idx >= 0 {
		return s[:idx], s[idx+1:]
	}
	return s, ""
}

// NewProvider builds the active provider from config, wrapped with retry.
func NewProvider(cfg *config.Config) (Provider, error) {
	inner, err := newProvider(cfg)
	if err != nil {
		return nil, err
	}
	return WrapWithRetry(inner, DefaultRetryConfig()), nil
}

// NewModelLister builds the active provider unwrapped and asserts it can
// enumerate models. Gemini has no listing endpoint in this client.
func NewModelLister(cfg *config.Config) (ModelLister, error) {
	p, err := newProvider(cfg)
	if err != nil {
		return nil, err
	}
	lister, ok := p.(ModelLister)
	if !ok {
		return nil, fmt.Errorf("provider %q does not support model listing", cfg.Provider)
	}
	return lister, nil
}

func newProvider(cfg *config.Config) (Provider, error) {
	switch cfg.Provider {
	case "anthropic":
		return NewAnthropicProvider(cfg.Anthropic.APIKey, cfg.Anthropic.Model)
	case "openai":
		return NewOpenAIProvider(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
	case "gemini":
		return NewGeminiProvider(cfg.Gemini.APIKey, cfg.Gemini.Model)
	case "ollama":
		return NewOllamaProvider(cfg.Ollama.BaseURL, cfg.Ollama.Model)
	case "lmstudio":
		return NewLMStudioProvider(cfg.LMStudio.BaseURL, cfg.LMStudio.Model)
	case "openai-compat":
		return NewOpenAICompatProvider("OpenAI-compat", cfg.Compat.BaseURL, cfg.Compat.APIKey, cfg.Compat.Model)
	default:
		return nil, fmt.Errorf("unknown provider %q (expected anthropic, openai, gemini, ollama, lmstudio, or openai-compat)", cfg.Provider)
	}
}
