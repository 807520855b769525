package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zen-systems/tiergate/pkg/classify"
)

// RoutingConfig maps complexity tiers to adapter/model targets.
type RoutingConfig struct {
	// Tiers is keyed by the canonical lowercase tier names
	// (simple, medium, complex, reasoning).
	Tiers map[string]RouteTarget `yaml:"tiers"`

	// Agentic, when set, overrides the tier target for prompts whose
	// agentic score reaches AgenticThreshold.
	Agentic          *RouteTarget `yaml:"agentic,omitempty"`
	AgenticThreshold float64      `yaml:"agentic_threshold,omitempty"`

	// Pins route prompts containing a trigger phrase directly to a target,
	// bypassing classification.
	Pins []Pin `yaml:"pins,omitempty"`

	Default RouteTarget  `yaml:"default"`
	Scorer  ScorerTuning `yaml:"scorer,omitempty"`
	Retry   RetryConfig  `yaml:"retry,omitempty"`
}

// RouteTarget specifies an adapter and model combination.
type RouteTarget struct {
	Adapter string `yaml:"adapter"`
	Model   string `yaml:"model"`
}

// Pin defines trigger phrases that bypass the classifier.
type Pin struct {
	Triggers []string `yaml:"triggers"`
	Adapter  string   `yaml:"adapter"`
	Model    string   `yaml:"model"`
}

// RetryConfig defines retry and backoff behavior for adapter calls.
type RetryConfig struct {
	MaxRetries    int `yaml:"max_retries,omitempty"`
	BaseBackoffMs int `yaml:"base_backoff_ms,omitempty"`
	MaxBackoffMs  int `yaml:"max_backoff_ms,omitempty"`
}

// ScorerTuning overrides classifier parameters from the routing file.
// Nil fields keep the classifier defaults; SimpleMedium defaults to 0.0,
// so a pointer is needed to tell "unset" from "zero".
type ScorerTuning struct {
	SimpleMedium          *float64 `yaml:"simple_medium,omitempty"`
	MediumComplex         *float64 `yaml:"medium_complex,omitempty"`
	ComplexReasoning      *float64 `yaml:"complex_reasoning,omitempty"`
	ConfidenceThreshold   *float64 `yaml:"confidence_threshold,omitempty"`
	ConfidenceSteepness   *float64 `yaml:"confidence_steepness,omitempty"`
	MaxTokensForceComplex *int     `yaml:"max_tokens_force_complex,omitempty"`
}

// ScorerConfig overlays the tuning onto the classifier defaults.
func (s ScorerTuning) ScorerConfig() classify.ScorerConfig {
	cfg := classify.DefaultScorerConfig()
	if s.SimpleMedium != nil {
		cfg.SimpleMedium = *s.SimpleMedium
	}
	if s.MediumComplex != nil {
		cfg.MediumComplex = *s.MediumComplex
	}
	if s.ComplexReasoning != nil {
		cfg.ComplexReasoning = *s.ComplexReasoning
	}
	if s.ConfidenceThreshold != nil {
		cfg.ConfidenceThreshold = *s.ConfidenceThreshold
	}
	if s.ConfidenceSteepness != nil {
		cfg.ConfidenceSteepness = *s.ConfidenceSteepness
	}
	if s.MaxTokensForceComplex != nil {
		cfg.MaxTokensForceComplex = *s.MaxTokensForceComplex
	}
	return cfg
}

// TierTarget returns the configured target for a tier, falling back to the
// default target when the tier has no entry.
func (c *RoutingConfig) TierTarget(t classify.Tier) RouteTarget {
	if c == nil {
		return RouteTarget{}
	}
	if target, ok := c.Tiers[t.Name()]; ok && target.Adapter != "" {
		return target
	}
	return c.Default
}

// LoadRoutingConfig reads routing configuration from a YAML file.
func LoadRoutingConfig(path string) (*RoutingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg RoutingConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyRoutingDefaults(&cfg)
	return &cfg, nil
}

// DefaultRoutingConfig returns the default routing configuration.
func DefaultRoutingConfig() *RoutingConfig {
	cfg := &RoutingConfig{
		Tiers: map[string]RouteTarget{
			"simple": {
				Adapter: "openai",
				Model:   "gpt-5.2-instant",
			},
			"medium": {
				Adapter: "anthropic",
				Model:   "claude-sonnet-4-20250514",
			},
			"complex": {
				Adapter: "anthropic",
				Model:   "claude-opus-4-20250514",
			},
			"reasoning": {
				Adapter: "deepseek",
				Model:   "deepseek-reasoner",
			},
		},
		Agentic: &RouteTarget{
			Adapter: "anthropic",
			Model:   "claude-sonnet-4-20250514",
		},
		Pins: []Pin{
			{
				Triggers: []string{"security review", "vulnerability", "penetration test"},
				Adapter:  "anthropic",
				Model:    "claude-opus-4-20250514",
			},
			{
				Triggers: []string{"bulk code", "batch generate"},
				Adapter:  "deepseek",
				Model:    "deepseek-coder",
			},
		},
		Default: RouteTarget{
			Adapter: "anthropic",
			Model:   "claude-sonnet-4-20250514",
		},
	}

	applyRoutingDefaults(cfg)
	return cfg
}

func applyRoutingDefaults(cfg *RoutingConfig) {
	if cfg == nil {
		return
	}
	if cfg.Tiers == nil {
		cfg.Tiers = make(map[string]RouteTarget)
	}
	if cfg.AgenticThreshold == 0 {
		cfg.AgenticThreshold = 0.6
	}
	if cfg.Retry.MaxRetries == 0 {
		cfg.Retry.MaxRetries = 2
	}
	if cfg.Retry.BaseBackoffMs == 0 {
		cfg.Retry.BaseBackoffMs = 200
	}
	if cfg.Retry.MaxBackoffMs == 0 {
		cfg.Retry.MaxBackoffMs = 2000
	}
	if cfg.Retry.MaxBackoffMs < cfg.Retry.BaseBackoffMs {
		cfg.Retry.MaxBackoffMs = cfg.Retry.BaseBackoffMs
	}
}
