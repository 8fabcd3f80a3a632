package config

import (
	"testing"
)

func TestApplyOverrides(t *testing.T) {
	cfg := &Config{
		Provider:  "anthropic",
		Anthropic: ProviderConfig{Model: "claude-sonnet-4-5"},
		OpenAI:    ProviderConfig{Model: "gpt-5.2"},
	}

	cfg.ApplyOverrides("openai", "gpt-5.2-mini")
	if cfg.Provider != "openai" {
		t.Errorf("provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.Model != "gpt-5.2-mini" {
		t.Errorf("openai model = %q, want gpt-5.2-mini", cfg.OpenAI.Model)
	}
	if cfg.Anthropic.Model != "claude-sonnet-4-5" {
		t.Errorf("anthropic model changed: %q", cfg.Anthropic.Model)
	}
}

func TestApplyOverridesModelOnly(t *testing.T) {
	cfg := &Config{
		Provider:  "anthropic",
		Anthropic: ProviderConfig{Model: "claude-sonnet-4-5"},
	}

	cfg.ApplyOverrides("", "claude-opus-4-5")
	if cfg.Provider != "anthropic" {
		t.Errorf("provider = %q, want anthropic", cfg.Provider)
	}
	if cfg.Anthropic.Model != "claude-opus-4-5" {
		t.Errorf("model = %q, want claude-opus-4-5", cfg.Anthropic.Model)
	}
}

func TestActiveModel(t *testing.T) {
	cfg := &Config{
		Provider: "gemini",
		Gemini:   ProviderConfig{Model: "gemini-3-flash-preview"},
		Ollama:   CompatConfig{Model: "llama3.2"},
	}

	if got := cfg.ActiveModel(); got != "gemini-3-flash-preview" {
		t.Errorf("ActiveModel = %q", got)
	}

	cfg.Provider = "ollama"
	if got := cfg.ActiveModel(); got != "llama3.2" {
		t.Errorf("ActiveModel = %q", got)
	}

	cfg.Provider = "unknown"
	if got := cfg.ActiveModel(); got != "" {
		t.Errorf("ActiveModel for unknown provider = %q, want empty", got)
	}
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("ASKMD_TEST_KEY", "secret")

	tests := []struct {
		in   string
		want string
	}{
		{"${ASKMD_TEST_KEY}", "secret"},
		{"$ASKMD_TEST_KEY", "secret"},
		{"literal-value", "literal-value"},
		{"", ""},
		{"${ASKMD_TEST_UNSET}", ""},
	}

	for _, tt := range tests {
		if got := expandEnv(tt.in); got != tt.want {
			t.Errorf("expandEnv(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGetConfigDirRespectsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	dir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir: %v", err)
	}
	if dir != "/tmp/xdg/askmd" {
		t.Errorf("dir = %q, want /tmp/xdg/askmd", dir)
	}
}
