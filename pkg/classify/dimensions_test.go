package classify

import (
	"strings"
	"testing"
)

func TestThresholdDim(t *testing.T) {
	cases := []struct {
		count      int
		wantScore  float64
		wantSignal string
	}{
		{0, 0.0, ""},
		{1, 0.3, "x"},
		{2, 0.3, "x"},
		{3, 0.7, "x"},
		{5, 0.7, "x"},
	}
	for _, c := range cases {
		score, signal := thresholdDim(c.count, 1, 3, 0.3, 0.7, "x")
		if score != c.wantScore || signal != c.wantSignal {
			t.Fatalf("count=%d: got (%.1f, %q), want (%.1f, %q)", c.count, score, signal, c.wantScore, c.wantSignal)
		}
	}
}

func TestScoreTokenCount(t *testing.T) {
	score, signal := scoreTokenCount("hi", "")
	if score != -1.0 || signal != "short" {
		t.Fatalf("short prompt: got (%.1f, %q)", score, signal)
	}

	long := strings.Repeat("word ", 500) // ~625 estimated tokens
	score, signal = scoreTokenCount(long, "")
	if score != 1.0 || signal != "long" {
		t.Fatalf("long prompt: got (%.1f, %q)", score, signal)
	}

	mid := strings.Repeat("word ", 100) // ~125 estimated tokens
	score, signal = scoreTokenCount(mid, "")
	if score != 0.0 || signal != "" {
		t.Fatalf("mid prompt: got (%.1f, %q)", score, signal)
	}
}

func TestEstimateTokensIncludesSystemPrompt(t *testing.T) {
	prompt := strings.Repeat("a", 100)
	sys := strings.Repeat("b", 100)
	if got := estimateTokens(prompt, ""); got != 25 {
		t.Fatalf("prompt only: got %d, want 25", got)
	}
	if got := estimateTokens(prompt, sys); got != 50 {
		t.Fatalf("with system prompt: got %d, want 50", got)
	}
}

func TestHasMultiStepPattern(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"first do this, then do that", true},
		{"follow step 3 of the guide", true},
		{"1. gather input 2. process it", true},
		{"nothing sequential here", false},
		{"many steps were taken", false}, // "steps" is not "step N"
		{"then again, maybe", false},     // "then" without "first"
	}
	for _, c := range cases {
		if got := hasMultiStepPattern(c.text); got != c.want {
			t.Fatalf("%q: got %v, want %v", c.text, got, c.want)
		}
	}
}

func TestScoreQuestionComplexityUsesRawPrompt(t *testing.T) {
	score, signal := scoreQuestionComplexity("why? how? when? where?")
	if score != 0.5 || signal != "multi-question" {
		t.Fatalf("four questions: got (%.1f, %q)", score, signal)
	}
	score, signal = scoreQuestionComplexity("what? why? how?")
	if score != 0.0 || signal != "" {
		t.Fatalf("three questions: got (%.1f, %q)", score, signal)
	}
}

func TestScoreAgenticTask(t *testing.T) {
	cases := []struct {
		text       string
		wantScore  float64
		wantSignal string
	}{
		{"fetch the latest news", 0.2, "agentic-light"},
		{"execute the command and search for matches", 0.6, "agentic"},
		{"open the file, execute the command, search the directory", 1.0, "agentic"},
		{"summarize this paragraph", 0.0, ""},
	}
	for _, c := range cases {
		score, signal := scoreAgenticTask(c.text)
		if score != c.wantScore || signal != c.wantSignal {
			t.Fatalf("%q: got (%.1f, %q), want (%.1f, %q)", c.text, score, signal, c.wantScore, c.wantSignal)
		}
	}
}

func TestCountKeywordMatchesIsPermissive(t *testing.T) {
	// Matching is substring-based on purpose: "improve" contains "prove".
	if got := countKeywordMatches("improve the wording", reasoningKeywords); got != 1 {
		t.Fatalf("expected 1 permissive match, got %d", got)
	}
	// Distinct keywords are counted once no matter how often they repeat.
	if got := countKeywordMatches("json json json", outputFormatKeywords); got != 1 {
		t.Fatalf("expected 1 distinct match, got %d", got)
	}
}

func TestKeywordMatchingIsUnicodeAware(t *testing.T) {
	text := strings.ToLower("ПРИВЕТ, как дела")
	if got := countKeywordMatches(text, simpleKeywords); got < 1 {
		t.Fatalf("expected Cyrillic greeting to match, got %d", got)
	}
	res := Classify("你好，请证明这个定理并逐步推理", "", nil)
	if res.Tier != TierReasoning {
		t.Fatalf("expected CJK reasoning keywords to trigger override, got %s", res.Tier)
	}
}

func TestScoreSimpleIndicatorsIsNegative(t *testing.T) {
	score, signal := scoreSimpleIndicators("hello there")
	if score != -1.0 || signal != "simple" {
		t.Fatalf("got (%.1f, %q)", score, signal)
	}
}

func TestScoreNegationComplexity(t *testing.T) {
	score, signal := scoreNegationComplexity("never do that without asking")
	if score != 0.3 || signal != "negation" {
		t.Fatalf("two negations: got (%.1f, %q)", score, signal)
	}
	score, signal = scoreNegationComplexity("this is fine")
	if score != 0.0 || signal != "" {
		t.Fatalf("no negations: got (%.1f, %q)", score, signal)
	}
}
