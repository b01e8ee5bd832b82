package scoring

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rule applies a signed adjustment when its keyword occurs, lowercased, as a
// substring of the lowercased comments. Matching is deliberately lexical
// containment rather than tokenized word matching, so "interestedly" still
// matches "interested".
type Rule struct {
	Keyword    string `yaml:"keyword"`
	Adjustment int    `yaml:"adjustment"`
}

// DefaultRules returns the built-in keyword table in its fixed application
// order. Rules are independent and cumulative; overlapping keywords such as
// "interested" and "not interested" both fire when both are present.
func DefaultRules() []Rule {
	return []Rule{
		{Keyword: "urgent", Adjustment: 10},
		{Keyword: "now", Adjustment: 5},
		{Keyword: "immediately", Adjustment: 5},
		{Keyword: "interested", Adjustment: 5},
		{Keyword: "not interested", Adjustment: -10},
		{Keyword: "later", Adjustment: -5},
		{Keyword: "maybe", Adjustment: -5},
	}
}

// LoadRules reads a keyword table from a YAML file, preserving file order as
// application order. Used to override DefaultRules at startup.
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var rules []Rule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("decode rerank rules: %w", err)
	}
	if len(rules) == 0 {
		return nil, fmt.Errorf("rerank rules file %s is empty", path)
	}
	for _, r := range rules {
		if strings.TrimSpace(r.Keyword) == "" {
			return nil, fmt.Errorf("rerank rules file %s contains a rule without a keyword", path)
		}
	}
	return rules, nil
}

// Reranker applies the keyword adjustment table to an initial score.
type Reranker struct {
	rules []Rule
}

// NewReranker creates a reranker over the given ordered rule table.
func NewReranker(rules []Rule) *Reranker {
	return &Reranker{rules: rules}
}

// Rerank returns clamp(initial + sum of matched adjustments, 0, 100).
// The sum over matched keywords is order-independent; only the final clamp
// depends on the accumulated total.
func (r *Reranker) Rerank(initial float64, comments string) float64 {
	lowered := strings.ToLower(comments)

	score := initial
	for _, rule := range r.rules {
		if strings.Contains(lowered, strings.ToLower(rule.Keyword)) {
			score += float64(rule.Adjustment)
		}
	}

	return clamp(score, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
