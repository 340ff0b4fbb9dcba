package category

import (
	"fmt"
	"regexp"
)

// Rule maps descriptions matching Pattern to Category.
type Rule struct {
	Category string `toml:"category" yaml:"category"`
	Pattern  string `toml:"pattern" yaml:"pattern"`
}

type matcher struct {
	re       *regexp.Regexp
	category Category
}

type Matcher struct {
	matchers []matcher
}

func NewMatcher(rules []Rule) (*Matcher, error) {
	matchers := make([]matcher, len(rules))

	for i, rule := range rules {
		c, err := Parse(rule.Category)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}

		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return nil, fmt.Errorf("rule %d: invalid pattern %q: %w", i, rule.Pattern, err)
		}

		matchers[i] = matcher{
			re:       re,
			category: c,
		}
	}

	return &Matcher{
		matchers: matchers,
	}, nil
}

// Match returns the category of the first rule matching description.
func (m *Matcher) Match(description string) (Category, bool) {
	if m == nil {
		return "", false
	}

	for _, matcher := range m.matchers {
		if matcher.re.MatchString(description) {
			return matcher.category, true
		}
	}

	return "", false
}
