package router

import (
	"sort"
	"strings"

	"github.com/zen-systems/tiergate/pkg/config"
)

// pinSet holds the compiled pin rules, longest trigger first so the most
// specific phrase wins.
type pinSet struct {
	rules []compiledPin
}

type compiledPin struct {
	trigger string
	adapter string
	model   string
}

func newPinSet(pins []config.Pin) *pinSet {
	ps := &pinSet{}
	for _, pin := range pins {
		for _, trigger := range pin.Triggers {
			ps.rules = append(ps.rules, compiledPin{
				trigger: strings.ToLower(trigger),
				adapter: pin.Adapter,
				model:   pin.Model,
			})
		}
	}
	sort.SliceStable(ps.rules, func(i, j int) bool {
		return len(ps.rules[i].trigger) > len(ps.rules[j].trigger)
	})
	return ps
}

// Match returns the target for the first pin whose trigger occurs in the
// prompt, and the trigger that matched.
func (ps *pinSet) Match(prompt string) (config.RouteTarget, string, bool) {
	promptLower := strings.ToLower(prompt)

	for _, rule := range ps.rules {
		if containsTrigger(promptLower, rule.trigger) {
			return config.RouteTarget{Adapter: rule.adapter, Model: rule.model}, rule.trigger, true
		}
	}

	return config.RouteTarget{}, "", false
}

// containsTrigger checks if the prompt contains the trigger phrase at word
// boundaries. Unlike the classifier's keyword matching, pins are exact
// routing rules and must not fire inside larger words.
func containsTrigger(prompt, trigger string) bool {
	idx := strings.Index(prompt, trigger)
	if idx == -1 {
		return false
	}

	if idx > 0 && isWordChar(prompt[idx-1]) {
		return false
	}

	endIdx := idx + len(trigger)
	if endIdx < len(prompt) && isWordChar(prompt[endIdx]) {
		return false
	}

	return true
}

func isWordChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_'
}
