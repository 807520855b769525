package classify

import (
	"encoding/json"
	"strings"
)

// Tier is the model complexity tier assigned to a prompt.
type Tier int

const (
	TierSimple    Tier = iota // cheap, fast — greetings, trivial factual questions
	TierMedium                // mid-range — summaries, light code, moderate Q&A
	TierComplex               // full capability — deep analysis, multi-step work
	TierReasoning             // specialised reasoning — proofs, logic chains, planning
)

var tierNames = [...]string{"SIMPLE", "MEDIUM", "COMPLEX", "REASONING"}

func (t Tier) String() string {
	if t >= 0 && int(t) < len(tierNames) {
		return tierNames[t]
	}
	return "MEDIUM"
}

// Name returns the canonical lowercase name used in config files.
func (t Tier) Name() string {
	return strings.ToLower(t.String())
}

// ParseTier converts a tier name (any case) to a Tier.
// Unrecognized input defaults to TierMedium.
func ParseTier(s string) Tier {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "simple":
		return TierSimple
	case "medium":
		return TierMedium
	case "complex":
		return TierComplex
	case "reasoning":
		return TierReasoning
	default:
		return TierMedium
	}
}

// MarshalJSON implements json.Marshaler.
func (t Tier) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Tier) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = ParseTier(s)
	return nil
}
