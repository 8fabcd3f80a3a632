package llm

import (
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// NewOpenAICompatProvider creates a provider against any OpenAI-compatible
// server. Local servers like ollama and lmstudio accept any API key.
func NewOpenAICompatProvider(label, baseURL, apiKey, model string) (*OpenAIProvider, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("%s requires a base_url in config", strings.ToLower(label))
	}
	opts := []option.RequestOption{option.WithBaseURL(baseURL)}
	if apiKey == "" {
		apiKey = "unused"
	}
	opts = append(opts, option.WithAPIKey(apiKey))

	client := openai.NewClient(opts...)
	return &OpenAIProvider{client: &client, label: label, model: model}, nil
}

// NewOllamaProvider creates a provider against a local ollama server.
func NewOllamaProvider(baseURL, model string) (*OpenAIProvider, error) {
	if baseURL == "" {
		baseURL = "http://localhost:11434/v1"
	}
	return NewOpenAICompatProvider("Ollama", baseURL, "", model)
}

// NewLMStudioProvider creates a provider against a local LM Studio server.
func NewLMStudioProvider(baseURL, model string) (*OpenAIProvider, error) {
	if baseURL == "" {
		baseURL = "http://localhost:1234/v1"
	}
	return NewOpenAICompatProvider("LM Studio", baseURL, "", model)
}
