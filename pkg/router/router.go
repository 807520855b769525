// Package router picks an adapter and model for a prompt. Pinned trigger
// phrases win outright; everything else goes through the local complexity
// classifier and the per-tier targets from the routing config.
package router

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/zen-systems/tiergate/pkg/adapter"
	"github.com/zen-systems/tiergate/pkg/classify"
	"github.com/zen-systems/tiergate/pkg/config"
)

// Router routes prompts to adapters based on classified complexity.
type Router struct {
	adapters map[string]adapter.Adapter
	cfg      *config.RoutingConfig
	aliases  *config.ModelAliases
	scorer   classify.ScorerConfig
	pins     *pinSet
	debug    bool
}

// Option configures a Router.
type Option func(*Router)

// WithAliases sets the model aliases for the router.
func WithAliases(aliases *config.ModelAliases) Option {
	return func(r *Router) {
		r.aliases = aliases
	}
}

// WithDebug enables debug logging.
func WithDebug(debug bool) Option {
	return func(r *Router) {
		r.debug = debug
	}
}

// New creates a router with the given adapters and routing config.
func New(adapters map[string]adapter.Adapter, cfg *config.RoutingConfig, opts ...Option) *Router {
	if cfg == nil {
		cfg = config.DefaultRoutingConfig()
	}
	r := &Router{
		adapters: adapters,
		cfg:      cfg,
		scorer:   cfg.Scorer.ScorerConfig(),
		pins:     newPinSet(cfg.Pins),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Route determines the adapter and model for a prompt. systemPrompt may be
// empty; it contributes to classification but not to pin matching.
func (r *Router) Route(prompt, systemPrompt string) (adapter.Adapter, string, *Decision) {
	decision := &Decision{}
	var target config.RouteTarget

	if pinTarget, trigger, ok := r.pins.Match(prompt); ok {
		target = pinTarget
		decision.Pinned = true
		decision.PinTrigger = trigger
		if r.debug {
			log.Printf("[router] pinned by %q -> %s/%s", trigger, target.Adapter, target.Model)
		}
	} else {
		res := classify.Classify(prompt, systemPrompt, &r.scorer)
		decision.Classification = &res
		if r.debug {
			log.Printf("[router] %s", res.String())
		}

		if r.cfg.Agentic != nil && res.AgenticScore >= r.cfg.AgenticThreshold {
			target = *r.cfg.Agentic
			decision.AgenticRoute = true
		} else {
			target = r.cfg.TierTarget(res.Tier)
		}
	}

	a, ok := r.adapters[target.Adapter]
	if !ok {
		target = r.cfg.Default
		a = r.adapters[target.Adapter]
	}

	model := r.resolveModel(target.Model)
	decision.Adapter = target.Adapter
	decision.Model = model

	return a, model, decision
}

// Send routes the prompt and generates a response, retrying transient
// provider failures per the routing config's retry policy.
func (r *Router) Send(ctx context.Context, prompt, systemPrompt string) (*adapter.Response, *Decision, error) {
	a, model, decision := r.Route(prompt, systemPrompt)
	if a == nil {
		return nil, decision, fmt.Errorf("no adapter available for %q", decision.Adapter)
	}

	backoff := time.Duration(r.cfg.Retry.BaseBackoffMs) * time.Millisecond
	maxBackoff := time.Duration(r.cfg.Retry.MaxBackoffMs) * time.Millisecond

	var lastErr error
	for attempt := 0; attempt <= r.cfg.Retry.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, decision, ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
			if backoff > maxBackoff {
				backoff = maxBackoff
			}
		}

		resp, err := a.Generate(ctx, model, prompt)
		if err == nil {
			decision.Retries = attempt
			return resp, decision, nil
		}
		lastErr = err
		if !adapter.IsTransient(err) {
			break
		}
	}

	return nil, decision, lastErr
}

// GetAdapter returns an adapter by name.
func (r *Router) GetAdapter(name string) (adapter.Adapter, bool) {
	a, ok := r.adapters[name]
	return a, ok
}

// ScorerConfig returns the classifier parameters the router uses.
func (r *Router) ScorerConfig() classify.ScorerConfig {
	return r.scorer
}

// Aliases returns the model aliases, if configured.
func (r *Router) Aliases() *config.ModelAliases {
	return r.aliases
}

func (r *Router) resolveModel(model string) string {
	if r.aliases != nil {
		return r.aliases.Resolve(model)
	}
	return model
}
