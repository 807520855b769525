package classify

import (
	"reflect"
	"strings"
	"testing"
)

// complexPrompt scores into COMPLEX under default boundaries: code markers,
// dense technical vocabulary, a first/then step structure, format
// constraints, and agentic verbs.
const complexPrompt = "First design the architecture, then implement a distributed cache " +
	"in golang with sharding and replication. Ensure latency stays low and must return " +
	"json and yaml. ```func main()``` Execute the build command, search the repository " +
	"files, verify output."

func TestClassifyGreetingIsSimple(t *testing.T) {
	res := Classify("hello", "", nil)
	if res.Tier != TierSimple {
		t.Fatalf("expected SIMPLE, got %s (score=%.3f)", res.Tier, res.Score)
	}
	if res.Ambiguous {
		t.Fatalf("greeting should not be ambiguous (confidence=%.2f)", res.Confidence)
	}
	want := []string{"short", "simple"}
	if !reflect.DeepEqual(res.Signals, want) {
		t.Fatalf("signals mismatch: got %v want %v", res.Signals, want)
	}
}

func TestClassifyShortQuestionIsSimple(t *testing.T) {
	res := Classify("what time is it?", "", nil)
	if res.Tier != TierSimple {
		t.Fatalf("expected SIMPLE, got %s (score=%.3f)", res.Tier, res.Score)
	}
}

func TestClassifyComplexPrompt(t *testing.T) {
	res := Classify(complexPrompt, "", nil)
	if res.Tier != TierComplex {
		t.Fatalf("expected COMPLEX, got %s (score=%.3f)", res.Tier, res.Score)
	}
	if res.Ambiguous {
		t.Fatalf("expected unambiguous result, confidence=%.2f", res.Confidence)
	}
	want := []string{"code", "technical", "multi-step", "imperative", "constraints", "format", "agentic"}
	if !reflect.DeepEqual(res.Signals, want) {
		t.Fatalf("signals mismatch: got %v want %v", res.Signals, want)
	}
}

func TestScoreMonotonicOverComplexity(t *testing.T) {
	simple := Classify("hello", "", nil)
	complex := Classify(complexPrompt, "", nil)
	if simple.Score >= complex.Score {
		t.Fatalf("expected simple score %.3f < complex score %.3f", simple.Score, complex.Score)
	}
}

func TestReasoningOverride(t *testing.T) {
	// Boundaries set absurdly high: the override must win regardless.
	cfg := DefaultScorerConfig()
	cfg.SimpleMedium = 10
	cfg.MediumComplex = 20
	cfg.ComplexReasoning = 30

	res := Classify("Prove the theorem and derive the bound step by step.", "", &cfg)
	if res.Tier != TierReasoning {
		t.Fatalf("expected REASONING, got %s", res.Tier)
	}
	if res.Confidence < 0.85 {
		t.Fatalf("expected confidence >= 0.85, got %.2f", res.Confidence)
	}
	if res.Ambiguous {
		t.Fatalf("override result must not be ambiguous")
	}
}

func TestReasoningUsesUserPromptOnly(t *testing.T) {
	// Reasoning keywords in the system prompt must not trigger the override
	// or the reasoning dimension for a trivial user query.
	sys := "Always prove your claims. Derive every theorem from first principles."
	res := Classify("hello", sys, nil)
	if res.Tier == TierReasoning {
		t.Fatalf("system prompt must not force reasoning tier (score=%.3f)", res.Score)
	}
	for _, s := range res.Signals {
		if s == "reasoning" {
			t.Fatalf("reasoning signal fired from system prompt: %v", res.Signals)
		}
	}
}

func TestLengthOverrideForcesComplex(t *testing.T) {
	cfg := DefaultScorerConfig()
	cfg.MaxTokensForceComplex = 10

	prompt := strings.Repeat("lorem ipsum dolor sit amet ", 4)
	res := Classify(prompt, "", &cfg)
	if res.Tier != TierComplex {
		t.Fatalf("expected COMPLEX from length override, got %s", res.Tier)
	}
	if res.Confidence != 0.9 {
		t.Fatalf("expected fixed confidence 0.9, got %.2f", res.Confidence)
	}
	if res.Ambiguous {
		t.Fatalf("override result must not be ambiguous")
	}
}

func TestLengthOverrideSkippedWhenScoreAlreadyComplex(t *testing.T) {
	// A prompt that clears the medium/complex boundary on its own merits
	// takes the normal mapping path even past the token limit.
	cfg := DefaultScorerConfig()
	cfg.MaxTokensForceComplex = 10

	res := Classify(complexPrompt, "", &cfg)
	if res.Tier != TierComplex {
		t.Fatalf("expected COMPLEX, got %s", res.Tier)
	}
	if res.Confidence >= 0.9 {
		t.Fatalf("expected calibrated confidence below the override's fixed 0.9, got %.2f", res.Confidence)
	}
}

func TestDeterminism(t *testing.T) {
	cfg := DefaultScorerConfig()
	a := Classify(complexPrompt, "be thorough", &cfg)
	b := Classify(complexPrompt, "be thorough", &cfg)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("identical inputs produced different results:\n%+v\n%+v", a, b)
	}
}

func TestTierMonotonicInBoundaryTightness(t *testing.T) {
	def := Classify(complexPrompt, "", nil)

	cfg := DefaultScorerConfig()
	cfg.SimpleMedium = -1.0
	cfg.MediumComplex = -0.5
	cfg.ComplexReasoning = -0.2
	tight := Classify(complexPrompt, "", &cfg)

	if tight.Tier < def.Tier {
		t.Fatalf("lowering boundaries decreased tier: %s -> %s", def.Tier, tight.Tier)
	}
}

func TestAmbiguousForcesMedium(t *testing.T) {
	cfg := DefaultScorerConfig()
	cfg.ConfidenceThreshold = 0.99

	res := Classify("hello", "", &cfg)
	if !res.Ambiguous {
		t.Fatalf("expected ambiguous result, confidence=%.2f", res.Confidence)
	}
	if res.Tier != TierMedium {
		t.Fatalf("ambiguous result must map to MEDIUM, got %s", res.Tier)
	}
	if !strings.HasPrefix(res.String(), "tier=AMBIGUOUS ") {
		t.Fatalf("debug rendering should flag ambiguity: %s", res.String())
	}
}

func TestAgenticDetection(t *testing.T) {
	res := Classify("Read the config file, execute the build command, then search the repository and verify the output.", "", nil)
	if res.AgenticScore < 0.6 {
		t.Fatalf("expected agentic score >= 0.6, got %.2f", res.AgenticScore)
	}
}

func TestSystemPromptRaisesTokenDimension(t *testing.T) {
	sys := strings.Repeat("you are a helpful assistant. ", 12)
	with := Classify("hi", sys, nil)
	without := Classify("hi", "", nil)
	if with.Score < without.Score {
		t.Fatalf("system prompt lowered score: %.3f < %.3f", with.Score, without.Score)
	}
}

func TestEmptyPromptDegradesToMedium(t *testing.T) {
	res := Classify("", "", nil)
	if res.Tier != TierMedium {
		t.Fatalf("expected MEDIUM for empty prompt, got %s", res.Tier)
	}
	if res.Score != 0 || res.Confidence != 0 || len(res.Signals) != 0 {
		t.Fatalf("expected zero result, got %+v", res)
	}
}

func TestConfidenceAndAgenticBounds(t *testing.T) {
	prompts := []string{
		"hello",
		"what time is it?",
		complexPrompt,
		"Prove the theorem and derive the bound step by step.",
		strings.Repeat("word ", 600),
		"?",
	}
	for _, p := range prompts {
		res := Classify(p, "", nil)
		if res.Confidence < 0 || res.Confidence > 1 {
			t.Fatalf("confidence out of range for %q: %.3f", p, res.Confidence)
		}
		if res.AgenticScore < 0 || res.AgenticScore > 1 {
			t.Fatalf("agentic score out of range for %q: %.3f", p, res.AgenticScore)
		}
	}
}

func TestInvertedBoundariesMapMechanically(t *testing.T) {
	// Ordering is not validated; the mapping switch applies as written.
	cfg := DefaultScorerConfig()
	cfg.SimpleMedium = 0.5
	cfg.MediumComplex = 0.3
	cfg.ComplexReasoning = 0.0

	res := Classify(complexPrompt, "", &cfg) // score ~0.4, below SimpleMedium
	if res.Tier != TierSimple {
		t.Fatalf("expected mechanical SIMPLE under inverted boundaries, got %s", res.Tier)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	orig := Classify(complexPrompt, "", nil)
	clone := orig.Clone()

	if !reflect.DeepEqual(orig, clone) {
		t.Fatalf("clone differs from original:\n%+v\n%+v", orig, clone)
	}

	if len(orig.Signals) == 0 {
		t.Fatalf("test needs signals to mutate")
	}
	orig.Signals[0] = "mutated"
	if clone.Signals[0] == "mutated" {
		t.Fatalf("clone shares signal storage with original")
	}
}
