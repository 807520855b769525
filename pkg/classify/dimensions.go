package classify

import "strings"

// dimensionScore is one dimension's contribution before weighting. The slice
// of these is transient per call; only the aggregate and the signals survive
// into the Result.
type dimensionScore struct {
	name   string
	weight float64
	score  float64
	signal string
}

// thresholdDim implements the shared threshold-table shape: below low
// matches the score is zero and no signal fires; at low the low score and
// signal apply; at high the high score replaces it (same signal).
func thresholdDim(count, low, high int, lowScore, highScore float64, signal string) (float64, string) {
	switch {
	case count >= high:
		return highScore, signal
	case count >= low:
		return lowScore, signal
	default:
		return 0.0, ""
	}
}

// estimateTokens approximates the token count as byte length / 4. This is a
// deliberate approximation; tokenizer accuracy is a non-goal.
func estimateTokens(prompt, systemPrompt string) int {
	est := len(prompt) / 4
	if systemPrompt != "" {
		est += len(systemPrompt) / 4
	}
	return est
}

func scoreTokenCount(prompt, systemPrompt string) (float64, string) {
	est := estimateTokens(prompt, systemPrompt)
	switch {
	case est < 50:
		return -1.0, "short"
	case est > 500:
		return 1.0, "long"
	default:
		return 0.0, ""
	}
}

func scoreCodePresence(text string) (float64, string) {
	return thresholdDim(countKeywordMatches(text, codeKeywords), 1, 2, 0.5, 1.0, "code")
}

// scoreReasoningMarkers reads the user prompt only, so a complex system
// prompt cannot lift a trivial user query into the reasoning tier.
func scoreReasoningMarkers(userLower string) (float64, string) {
	return thresholdDim(countKeywordMatches(userLower, reasoningKeywords), 1, 2, 0.7, 1.0, "reasoning")
}

func scoreTechnicalTerms(text string) (float64, string) {
	return thresholdDim(countKeywordMatches(text, technicalKeywords), 2, 4, 0.5, 1.0, "technical")
}

func scoreCreativeMarkers(text string) (float64, string) {
	return thresholdDim(countKeywordMatches(text, creativeKeywords), 1, 2, 0.5, 0.7, "creative")
}

// scoreSimpleIndicators is the only dimension with a negative score: any hit
// pulls the prompt toward SIMPLE.
func scoreSimpleIndicators(text string) (float64, string) {
	if countKeywordMatches(text, simpleKeywords) >= 1 {
		return -1.0, "simple"
	}
	return 0.0, ""
}

func scoreMultiStepPatterns(text string) (float64, string) {
	if hasMultiStepPattern(text) {
		return 0.5, "multi-step"
	}
	return 0.0, ""
}

// hasMultiStepPattern detects sequential structure: a first/then pair, a
// "step N" token, or a bare numbered-list marker ("3. ").
func hasMultiStepPattern(text string) bool {
	if strings.Contains(text, "first") && strings.Contains(text, "then") {
		return true
	}
	for idx := 0; idx < len(text); {
		pos := strings.Index(text[idx:], "step ")
		if pos < 0 {
			break
		}
		next := idx + pos + len("step ")
		if next < len(text) && text[next] >= '0' && text[next] <= '9' {
			return true
		}
		idx = idx + pos + 1
	}
	for i := 0; i+2 < len(text); i++ {
		if text[i] >= '1' && text[i] <= '9' && text[i+1] == '.' && text[i+2] == ' ' {
			return true
		}
	}
	return false
}

// scoreQuestionComplexity counts question marks in the raw prompt, not the
// normalized text.
func scoreQuestionComplexity(raw string) (float64, string) {
	if strings.Count(raw, "?") > 3 {
		return 0.5, "multi-question"
	}
	return 0.0, ""
}

func scoreImperativeVerbs(text string) (float64, string) {
	return thresholdDim(countKeywordMatches(text, imperativeKeywords), 1, 2, 0.3, 0.5, "imperative")
}

func scoreConstraintCount(text string) (float64, string) {
	return thresholdDim(countKeywordMatches(text, constraintKeywords), 1, 3, 0.3, 0.7, "constraints")
}

func scoreOutputFormat(text string) (float64, string) {
	return thresholdDim(countKeywordMatches(text, outputFormatKeywords), 1, 2, 0.4, 0.7, "format")
}

func scoreReferenceComplexity(text string) (float64, string) {
	return thresholdDim(countKeywordMatches(text, referenceKeywords), 1, 2, 0.3, 0.5, "references")
}

func scoreNegationComplexity(text string) (float64, string) {
	return thresholdDim(countKeywordMatches(text, negationKeywords), 2, 3, 0.3, 0.5, "negation")
}

func scoreDomainSpecificity(text string) (float64, string) {
	return thresholdDim(countKeywordMatches(text, domainKeywords), 1, 2, 0.5, 0.8, "domain-specific")
}

// scoreAgenticTask estimates multi-step tool use. The value is reported
// separately on the Result and also enters the weighted sum at a small
// weight.
func scoreAgenticTask(text string) (float64, string) {
	count := countKeywordMatches(text, agenticKeywords)
	switch {
	case count >= 4:
		return 1.0, "agentic"
	case count >= 3:
		return 0.6, "agentic"
	case count >= 1:
		return 0.2, "agentic-light"
	default:
		return 0.0, ""
	}
}
