package llm

import (
	"testing"

	"github.com/termtools/askmd/internal/config"
)

func TestParseProviderModel(t *testing.T) {
	tests := []struct {
		in           string
		wantProvider string
		wantModel    string
	}{
		{"anthropic", "anthropic", ""},
		{"anthropic:claude-sonnet-4-5", "anthropic", "claude-sonnet-4-5"},
		{"openai:gpt-5.2", "openai", "gpt-5.2"},
		{"ollama:llama3.2:latest", "ollama", "llama3.2:latest"},
		{"", "", ""},
	}

	for _, tt := range tests {
		provider, model := ParseProviderModel(tt.in)
		if provider != tt.wantProvider || model != tt.wantModel {
			t.Errorf("ParseProviderModel(%q) = (%q, %q), want (%q, %q)",
				tt.in, provider, model, tt.wantProvider, tt.wantModel)
		}
	}
}

func TestNewProviderUnknown(t *testing.T) {
	cfg := &config.Config{Provider: "mystery"}
	if _, err := NewProvider(cfg); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestNewProviderCompatRequiresBaseURL(t *testing.T) {
	cfg := &config.Config{Provider: "openai-compat"}
	if _, err := NewProvider(cfg); err == nil {
		t.Fatal("expected error when openai-compat has no base_url")
	}
}

func TestChooseModel(t *testing.T) {
	if got := chooseModel("", "default"); got != "default" {
		t.Errorf("chooseModel empty = %q, want default", got)
	}
	if got := chooseModel("override", "default"); got != "override" {
		t.Errorf("chooseModel override = %q, want override", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("hello", 10); got != "hello" {
		t.Errorf("truncate short = %q", got)
	}
	if got := truncate("hello world", 5); got != "hello..." {
		t.Errorf("truncate long = %q", got)
	}
}
