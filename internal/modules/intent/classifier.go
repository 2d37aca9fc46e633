// README: Ordered rule-table intent classifier.
package intent

import (
	"fmt"
	"regexp"
	"strings"
)

// CategoryRules pairs a category with its pattern rules. The slice order in
// which CategoryRules are supplied to NewClassifier fixes the priority order.
type CategoryRules struct {
	Category Category
	Rules    []Rule
}

type compiledRule struct {
	re     *regexp.Regexp
	weight int
}

type compiledCategory struct {
	category Category
	rules    []compiledRule
}

// Classifier maps raw message text to exactly one category with a confidence
// score. It holds no mutable state after construction and is safe for
// concurrent use.
type Classifier struct {
	table []compiledCategory
}

// NewClassifier compiles the given rule table. The table is evaluated in the
// order given; rules with weight < 1 are rejected.
func NewClassifier(table []CategoryRules) (*Classifier, error) {
	compiled := make([]compiledCategory, 0, len(table))
	for _, cr := range table {
		cc := compiledCategory{category: cr.Category}
		for _, r := range cr.Rules {
			if r.Weight < 1 {
				return nil, fmt.Errorf("rule %q for %s: weight must be >= 1", r.Pattern, cr.Category)
			}
			re, err := regexp.Compile(r.Pattern)
			if err != nil {
				return nil, fmt.Errorf("rule %q for %s: %w", r.Pattern, cr.Category, err)
			}
			cc.rules = append(cc.rules, compiledRule{re: re, weight: r.Weight})
		}
		compiled = append(compiled, cc)
	}
	return &Classifier{table: compiled}, nil
}

// NewDefaultClassifier builds a classifier from DefaultRules.
func NewDefaultClassifier() *Classifier {
	c, err := NewClassifier(DefaultRules())
	if err != nil {
		// The built-in table is covered by tests; a compile failure here is a bug.
		panic(err)
	}
	return c
}

// Classify returns the first category, in priority order, with at least one
// matching rule. Empty or whitespace-only input and input matching no rule
// yield Unclassified with confidence 0. The function is pure: the same input
// always produces the same result.
func (c *Classifier) Classify(text string) Result {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return Result{Category: Unclassified}
	}

	for _, cc := range c.table {
		matched, weight := 0, 0
		for _, r := range cc.rules {
			if r.re.MatchString(normalized) {
				matched++
				weight += r.weight
			}
		}
		if matched > 0 {
			return Result{
				Category:   cc.category,
				Confidence: confidence(weight),
				Matched:    matched,
			}
		}
	}
	return Result{Category: Unclassified}
}

// confidence maps total matched weight to [0,1]. A lone keyword scores 0.5;
// each extra unit of weight adds 0.2 up to the cap. Monotonic in weight.
func confidence(weight int) float64 {
	conf := 0.3 + 0.2*float64(weight)
	if conf > 1 {
		conf = 1
	}
	return conf
}
