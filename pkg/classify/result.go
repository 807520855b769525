package classify

import (
	"fmt"
	"strings"
)

// Result is the output of a single classification. Results are plain values:
// each call produces a fresh one and no call retains a reference to another
// call's result.
type Result struct {
	// Score is the weighted complexity score. It has no fixed range;
	// realistic prompts land roughly in [-1, +3].
	Score float64 `json:"score"`

	// Tier is the complexity tier mapped from Score (or forced by an
	// override, or by ambiguity).
	Tier Tier `json:"tier"`

	// Ambiguous is true when confidence fell below the configured
	// threshold; Tier is then MEDIUM regardless of the raw mapping.
	Ambiguous bool `json:"ambiguous"`

	// Confidence is the calibrated confidence in [0,1].
	Confidence float64 `json:"confidence"`

	// AgenticScore estimates, independently of Tier, how likely the prompt
	// is to require multi-step tool use. Range [0,1].
	AgenticScore float64 `json:"agentic_score"`

	// Signals lists which heuristics fired, in dimension evaluation order.
	Signals []string `json:"signals,omitempty"`
}

// Clone returns an independent copy of the result.
func (r Result) Clone() Result {
	c := r
	if r.Signals != nil {
		c.Signals = make([]string, len(r.Signals))
		copy(c.Signals, r.Signals)
	}
	return c
}

// String renders a one-line debug form of the result.
func (r Result) String() string {
	tier := r.Tier.String()
	if r.Ambiguous {
		tier = "AMBIGUOUS"
	}
	return fmt.Sprintf("tier=%s confidence=%.2f score=%.3f agentic=%.2f signals=[%s]",
		tier, r.Confidence, r.Score, r.AgenticScore, strings.Join(r.Signals, ", "))
}
