package reply

import (
	"fmt"
	"strings"

	"github.com/coregx/ahocorasick"
)

// Rule is one keyword-triggered canned response. Rules are evaluated in
// declaration order and the first rule with any keyword present in the
// message wins, regardless of where the keywords sit in the text. This
// ordering is part of the demo contract; do not reorder or merge rules.
type Rule struct {
	Name     string
	Keywords []string
}

const (
	RuleSwitchConfig        = "switch-config"
	RuleProductAlternatives = "product-alternatives"
	RulePowerBudget         = "power-budget"
)

var defaultRules = []Rule{
	{Name: RuleSwitchConfig, Keywords: []string{"switch", "configuration"}},
	{Name: RuleProductAlternatives, Keywords: []string{"alternative", "replacement", "compare"}},
	{Name: RulePowerBudget, Keywords: []string{"budget", "power"}},
}

// Matcher scans message text against every rule keyword in a single pass.
type Matcher struct {
	ac          *ahocorasick.Automaton
	patternRule []int
	rules       []Rule
}

func NewMatcher() (*Matcher, error) {
	return newMatcher(defaultRules)
}

func newMatcher(rules []Rule) (*Matcher, error) {
	var patterns []string
	var patternRule []int
	for i, r := range rules {
		for _, kw := range r.Keywords {
			patterns = append(patterns, strings.ToLower(kw))
			patternRule = append(patternRule, i)
		}
	}

	ac, err := ahocorasick.NewBuilder().
		AddStrings(patterns).
		SetMatchKind(ahocorasick.LeftmostLongest).
		SetPrefilter(true).
		Build()
	if err != nil {
		return nil, fmt.Errorf("build keyword automaton: %w", err)
	}

	return &Matcher{ac: ac, patternRule: patternRule, rules: rules}, nil
}

// Match returns the name of the winning rule for the given text, or ""
// when no keyword matches. Matching is case-insensitive substring search;
// among rules with a hit the earliest-declared one wins.
func (m *Matcher) Match(text string) string {
	haystack := []byte(strings.ToLower(text))
	best := -1
	for _, hit := range m.ac.FindAllOverlapping(haystack) {
		rule := m.patternRule[hit.PatternID]
		if best == -1 || rule < best {
			best = rule
		}
	}
	if best == -1 {
		return ""
	}
	return m.rules[best].Name
}
