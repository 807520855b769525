package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveAlias(t *testing.T) {
	aliases := DefaultAliases()

	if got := aliases.Resolve("fast"); got != "gpt-5.2-instant" {
		t.Fatalf("fast -> %q", got)
	}
	if got := aliases.Resolve("deep"); got != "claude-opus-4-20250514" {
		t.Fatalf("deep -> %q", got)
	}
	// Canonical names and unknowns pass through.
	if got := aliases.Resolve("deepseek-chat"); got != "deepseek-chat" {
		t.Fatalf("canonical name changed: %q", got)
	}
	if got := aliases.Resolve("no-such-model"); got != "no-such-model" {
		t.Fatalf("unknown name changed: %q", got)
	}

	var nilAliases *ModelAliases
	if got := nilAliases.Resolve("fast"); got != "fast" {
		t.Fatalf("nil receiver should pass through, got %q", got)
	}
}

func TestIsAlias(t *testing.T) {
	aliases := DefaultAliases()
	if !aliases.IsAlias("reason") {
		t.Fatalf("reason should be an alias")
	}
	if aliases.IsAlias("deepseek-reasoner") {
		t.Fatalf("canonical name is not an alias")
	}
}

func TestValidateModel(t *testing.T) {
	aliases := DefaultAliases()

	if err := aliases.ValidateModel("anthropic", "claude-opus-4-20250514"); err != nil {
		t.Fatalf("valid model rejected: %v", err)
	}
	if err := aliases.ValidateModel("anthropic", "gpt-5.2-instant"); err == nil {
		t.Fatalf("wrong provider accepted")
	}
	if err := aliases.ValidateModel("unknown", "whatever"); err == nil {
		t.Fatalf("unknown adapter accepted")
	}
}

func TestValidateRoutingConfig(t *testing.T) {
	aliases := DefaultAliases()

	if errs := aliases.ValidateRoutingConfig(DefaultRoutingConfig()); len(errs) != 0 {
		t.Fatalf("default routing should validate, got %v", errs)
	}

	bad := &RoutingConfig{
		Tiers: map[string]RouteTarget{
			"simple": {Adapter: "openai", Model: "claude-opus-4-20250514"},
		},
		Pins: []Pin{
			{Triggers: []string{"x"}, Adapter: "nope", Model: "y"},
		},
		Agentic: &RouteTarget{Adapter: "google", Model: "gemini-2.0-pro"},
		Default: RouteTarget{Adapter: "anthropic", Model: "quality"},
	}
	errs := aliases.ValidateRoutingConfig(bad)
	if len(errs) != 2 {
		t.Fatalf("expected 2 validation errors, got %d: %v", len(errs), errs)
	}
}

func TestLoadAliasesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "models.yaml")
	content := `aliases:
  tiny: gpt-5.2-instant
providers:
  openai:
    - gpt-5.2-instant
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	aliases, err := LoadAliases(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := aliases.Resolve("tiny"); got != "gpt-5.2-instant" {
		t.Fatalf("tiny -> %q", got)
	}
	if err := aliases.ValidateModel("openai", "gpt-5.2-instant"); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestLoadAliasesWithFallback(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	// No user file, no default path: built-in defaults.
	aliases, err := LoadAliasesWithFallback("")
	if err != nil {
		t.Fatalf("fallback: %v", err)
	}
	if !aliases.IsAlias("fast") {
		t.Fatalf("expected built-in defaults")
	}

	// User file wins once it exists.
	configDir := filepath.Join(home, ".tiergate")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	content := "aliases:\n  mine: deepseek-chat\n"
	if err := os.WriteFile(filepath.Join(configDir, "models.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	aliases, err = LoadAliasesWithFallback("")
	if err != nil {
		t.Fatalf("fallback: %v", err)
	}
	if !aliases.IsAlias("mine") || aliases.IsAlias("fast") {
		t.Fatalf("user file should replace defaults")
	}
}

func TestGetProviderForModel(t *testing.T) {
	aliases := DefaultAliases()
	if got := aliases.GetProviderForModel("deepseek-reasoner"); got != "deepseek" {
		t.Fatalf("provider = %q", got)
	}
	if got := aliases.GetProviderForModel("no-such-model"); got != "" {
		t.Fatalf("expected empty provider, got %q", got)
	}
}
