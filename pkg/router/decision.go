package router

import "github.com/zen-systems/tiergate/pkg/classify"

// Decision captures how a prompt was routed.
type Decision struct {
	// Adapter and Model are the chosen target, after alias resolution and
	// default fallback.
	Adapter string `json:"adapter"`
	Model   string `json:"model"`

	// Pinned is true when a configured trigger phrase bypassed
	// classification; PinTrigger names the phrase that matched.
	Pinned     bool   `json:"pinned,omitempty"`
	PinTrigger string `json:"pin_trigger,omitempty"`

	// AgenticRoute is true when the agentic target overrode the tier
	// target.
	AgenticRoute bool `json:"agentic_route,omitempty"`

	// Classification holds the classifier output; nil for pinned routes.
	Classification *classify.Result `json:"classification,omitempty"`

	// Retries is how many retry attempts Send needed before success.
	Retries int `json:"retries,omitempty"`
}
