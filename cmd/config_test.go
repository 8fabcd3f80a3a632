package cmd

import (
	"testing"

	"github.com/termtools/askmd/internal/config"
)

func TestSetConfigKey(t *testing.T) {
	cfg := &config.Config{}

	if err := setConfigKey(cfg, "provider", "openai"); err != nil {
		t.Fatalf("set provider: %v", err)
	}
	if cfg.Provider != "openai" {
		t.Errorf("provider = %q", cfg.Provider)
	}

	if err := setConfigKey(cfg, "markdown", "false"); err != nil {
		t.Fatalf("set markdown: %v", err)
	}
	if cfg.Markdown {
		t.Error("markdown should be false")
	}

	if err := setConfigKey(cfg, "ollama.base_url", "http://localhost:9999/v1"); err != nil {
		t.Fatalf("set ollama.base_url: %v", err)
	}
	if cfg.Ollama.BaseURL != "http://localhost:9999/v1" {
		t.Errorf("base_url = %q", cfg.Ollama.BaseURL)
	}

	if err := setConfigKey(cfg, "markdown", "maybe"); err == nil {
		t.Error("expected error for non-bool markdown value")
	}
	if err := setConfigKey(cfg, "bogus.key", "x"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestGetConfigKey(t *testing.T) {
	cfg := &config.Config{
		Provider: "gemini",
		Markdown: true,
		Gemini:   config.ProviderConfig{Model: "gemini-3-flash-preview"},
	}

	got, err := getConfigKey(cfg, "gemini.model")
	if err != nil {
		t.Fatalf("get gemini.model: %v", err)
	}
	if got != "gemini-3-flash-preview" {
		t.Errorf("gemini.model = %q", got)
	}

	got, err = getConfigKey(cfg, "markdown")
	if err != nil {
		t.Fatalf("get markdown: %v", err)
	}
	if got != "true" {
		t.Errorf("markdown = %q", got)
	}

	if _, err := getConfigKey(cfg, "nope"); err == nil {
		t.Error("expected error for unknown key")
	}
}

// Every settable key must be readable back.
func TestConfigKeysRoundTrip(t *testing.T) {
	for _, key := range configKeys {
		cfg := &config.Config{}
		value := "true"
		if key != "markdown" && key != "colors" {
			value = "some-value"
		}
		if err := setConfigKey(cfg, key, value); err != nil {
			t.Fatalf("set %s: %v", key, err)
		}
		got, err := getConfigKey(cfg, key)
		if err != nil {
			t.Fatalf("get %s: %v", key, err)
		}
		if got != value {
			t.Errorf("%s round trip = %q, want %q", key, got, value)
		}
	}
}
