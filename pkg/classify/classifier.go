// Package classify scores prompt complexity without calling any model. It
// evaluates 14 weighted heuristic dimensions over the prompt text, maps the
// aggregate onto four ordered tiers, and calibrates a confidence from the
// distance to the nearest tier boundary. The whole computation is a pure
// function of its inputs: keyword tables are read-only package data, and any
// number of calls may run concurrently against a shared ScorerConfig.
package classify

import (
	"math"
	"strings"
)

// Dimension weights. They sum to roughly 1.0; the aggregate score is the
// weighted sum of the per-dimension scores.
const (
	weightTokenCount          = 0.08
	weightCodePresence        = 0.15
	weightReasoningMarkers    = 0.18
	weightTechnicalTerms      = 0.10
	weightCreativeMarkers     = 0.05
	weightSimpleIndicators    = 0.02
	weightMultiStepPatterns   = 0.12
	weightQuestionComplexity  = 0.05
	weightImperativeVerbs     = 0.03
	weightConstraintCount     = 0.04
	weightOutputFormat        = 0.03
	weightReferenceComplexity = 0.02
	weightNegationComplexity  = 0.01
	weightDomainSpecificity   = 0.02
	weightAgenticTask         = 0.04
)

// Classify scores a prompt and returns the tier, confidence, agentic score,
// and the signals that fired. systemPrompt may be empty; cfg may be nil to
// use DefaultScorerConfig. An empty prompt degrades to a zero result with
// tier MEDIUM.
func Classify(prompt, systemPrompt string, cfg *ScorerConfig) Result {
	if cfg == nil {
		def := DefaultScorerConfig()
		cfg = &def
	}
	if prompt == "" {
		return Result{Tier: TierMedium}
	}

	userLower := strings.ToLower(prompt)
	combined := userLower
	if systemPrompt != "" {
		combined = strings.ToLower(systemPrompt) + " " + userLower
	}

	dims := scoreDimensions(prompt, systemPrompt, userLower, combined)

	var score float64
	var signals []string
	for _, d := range dims {
		score += d.score * d.weight
		if d.signal != "" {
			signals = append(signals, d.signal)
		}
	}
	agentic, _ := scoreAgenticTask(combined)

	// Reasoning override: two distinct reasoning keywords in the user
	// prompt force the reasoning tier regardless of the aggregate.
	if countKeywordMatches(userLower, reasoningKeywords) >= 2 {
		conf := logistic(math.Max(score, 0.3), cfg.ConfidenceSteepness)
		if conf < 0.85 {
			conf = 0.85
		}
		return Result{
			Score:        score,
			Tier:         TierReasoning,
			Confidence:   conf,
			AgenticScore: agentic,
			Signals:      signals,
		}
	}

	// Length override: very long prompts that have not already scored into
	// COMPLEX are forced there. A long prompt whose score clears
	// MediumComplex takes the normal mapping path instead.
	if estimateTokens(prompt, systemPrompt) > cfg.MaxTokensForceComplex && score < cfg.MediumComplex {
		return Result{
			Score:        score,
			Tier:         TierComplex,
			Confidence:   0.9,
			AgenticScore: agentic,
			Signals:      signals,
		}
	}

	tier, distance := mapTier(score, cfg)
	conf := logistic(distance, cfg.ConfidenceSteepness)
	ambiguous := false
	if conf < cfg.ConfidenceThreshold {
		ambiguous = true
		tier = TierMedium
	}

	return Result{
		Score:        score,
		Tier:         tier,
		Ambiguous:    ambiguous,
		Confidence:   conf,
		AgenticScore: agentic,
		Signals:      signals,
	}
}

// scoreDimensions evaluates all dimensions in their fixed order. The order
// determines the signal sequence, not the aggregate.
func scoreDimensions(prompt, systemPrompt, userLower, combined string) []dimensionScore {
	dims := make([]dimensionScore, 0, 15)
	add := func(name string, weight float64, score float64, signal string) {
		dims = append(dims, dimensionScore{name: name, weight: weight, score: score, signal: signal})
	}

	s, sig := scoreTokenCount(prompt, systemPrompt)
	add("tokenCount", weightTokenCount, s, sig)
	s, sig = scoreCodePresence(combined)
	add("codePresence", weightCodePresence, s, sig)
	s, sig = scoreReasoningMarkers(userLower)
	add("reasoningMarkers", weightReasoningMarkers, s, sig)
	s, sig = scoreTechnicalTerms(combined)
	add("technicalTerms", weightTechnicalTerms, s, sig)
	s, sig = scoreCreativeMarkers(combined)
	add("creativeMarkers", weightCreativeMarkers, s, sig)
	s, sig = scoreSimpleIndicators(combined)
	add("simpleIndicators", weightSimpleIndicators, s, sig)
	s, sig = scoreMultiStepPatterns(combined)
	add("multiStepPatterns", weightMultiStepPatterns, s, sig)
	s, sig = scoreQuestionComplexity(prompt)
	add("questionComplexity", weightQuestionComplexity, s, sig)
	s, sig = scoreImperativeVerbs(combined)
	add("imperativeVerbs", weightImperativeVerbs, s, sig)
	s, sig = scoreConstraintCount(combined)
	add("constraintCount", weightConstraintCount, s, sig)
	s, sig = scoreOutputFormat(combined)
	add("outputFormat", weightOutputFormat, s, sig)
	s, sig = scoreReferenceComplexity(combined)
	add("referenceComplexity", weightReferenceComplexity, s, sig)
	s, sig = scoreNegationComplexity(combined)
	add("negationComplexity", weightNegationComplexity, s, sig)
	s, sig = scoreDomainSpecificity(combined)
	add("domainSpecificity", weightDomainSpecificity, s, sig)
	s, sig = scoreAgenticTask(combined)
	add("agenticTask", weightAgenticTask, s, sig)

	return dims
}

// mapTier maps the score onto a tier and returns the distance to the
// nearest boundary. Boundaries are applied mechanically in ascending order;
// an inverted configuration is not rejected, it just maps oddly.
func mapTier(score float64, cfg *ScorerConfig) (Tier, float64) {
	switch {
	case score < cfg.SimpleMedium:
		return TierSimple, cfg.SimpleMedium - score
	case score < cfg.MediumComplex:
		return TierMedium, math.Min(score-cfg.SimpleMedium, cfg.MediumComplex-score)
	case score < cfg.ComplexReasoning:
		return TierComplex, math.Min(score-cfg.MediumComplex, cfg.ComplexReasoning-score)
	default:
		return TierReasoning, score - cfg.ComplexReasoning
	}
}

// logistic maps a non-negative boundary distance to a confidence in
// [0.5, 1).
func logistic(distance, steepness float64) float64 {
	return 1.0 / (1.0 + math.Exp(-steepness*distance))
}
