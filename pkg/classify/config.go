package classify

// ScorerConfig holds the tunable parameters of the classifier. Callers own
// the value; the classifier never mutates it. A config is safe to share
// across concurrent Classify calls as long as nobody writes to it.
//
// Correct tier mapping requires SimpleMedium < MediumComplex <
// ComplexReasoning. The ordering is not validated: inverted boundaries fall
// through the mapping switch mechanically rather than producing an error.
type ScorerConfig struct {
	// Tier boundaries on the weighted score, ascending.
	SimpleMedium     float64
	MediumComplex    float64
	ComplexReasoning float64

	// ConfidenceThreshold marks results ambiguous when the calibrated
	// confidence falls below it. Ambiguous results are forced to MEDIUM.
	ConfidenceThreshold float64

	// ConfidenceSteepness is the logistic steepness used to turn boundary
	// distance into confidence.
	ConfidenceSteepness float64

	// MaxTokensForceComplex forces COMPLEX for prompts whose estimated token
	// count exceeds it while the score is still below MediumComplex.
	MaxTokensForceComplex int
}

// DefaultScorerConfig returns the tuned default parameters.
func DefaultScorerConfig() ScorerConfig {
	return ScorerConfig{
		SimpleMedium:          0.0,
		MediumComplex:         0.3,
		ComplexReasoning:      0.5,
		ConfidenceThreshold:   0.7,
		ConfidenceSteepness:   12.0,
		MaxTokensForceComplex: 100000,
	}
}
