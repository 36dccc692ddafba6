package reply

import (
	"testing"
)

func TestMatcherRules(t *testing.T) {
	m, err := NewMatcher()
	if err != nil {
		t.Fatalf("NewMatcher: %v", err)
	}

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "switch keyword",
			text: "Can you check my switch quote?",
			want: RuleSwitchConfig,
		},
		{
			name: "configuration keyword",
			text: "Please validate this configuration",
			want: RuleSwitchConfig,
		},
		{
			name: "alternative keyword",
			text: "Is there an alternative for the SW-48-PRO?",
			want: RuleProductAlternatives,
		},
		{
			name: "replacement keyword",
			text: "I need a replacement model",
			want: RuleProductAlternatives,
		},
		{
			name: "compare keyword",
			text: "compare these two products",
			want: RuleProductAlternatives,
		},
		{
			name: "budget keyword",
			text: "what's my PoE budget looking like",
			want: RulePowerBudget,
		},
		{
			name: "power keyword",
			text: "do I have enough power",
			want: RulePowerBudget,
		},
		{
			name: "case insensitive",
			text: "CHECK MY SWITCH",
			want: RuleSwitchConfig,
		},
		{
			name: "first declared rule wins on multiple hits",
			text: "power budget for my switch",
			want: RuleSwitchConfig,
		},
		{
			name: "alternative beats power",
			text: "power draw of the alternative model",
			want: RuleProductAlternatives,
		},
		{
			name: "keyword inside larger word",
			text: "comparellanous", // still contains "compare"
			want: RuleProductAlternatives,
		},
		{
			name: "no keyword",
			text: "hello there",
			want: "",
		},
		{
			name: "empty text",
			text: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Match(tt.text); got != tt.want {
				t.Errorf("Match(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
