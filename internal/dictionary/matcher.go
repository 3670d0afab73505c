package dictionary

import (
	"fmt"
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"
)

// CategoryMatcher resolves a text to a single label of one category.
//
// Keyword hits are detected in one pass with an Aho-Corasick automaton
// built over the lowered keywords. Ambiguity between labels is resolved
// by precedence: the longest matching keyword wins, and between equal
// lengths the keyword occurring earliest in the text wins. A keyword
// shared by two labels belongs to the first declared label.
type CategoryMatcher struct {
	category string
	patterns []string
	labelFor map[string]string
	matcher  *ahocorasick.Matcher
}

// Match is a resolved category label with the keyword that produced it.
type Match struct {
	Label    string
	Keyword  string
	Position int
}

// NewCategoryMatcher compiles the automaton for one category.
func NewCategoryMatcher(category Category) (*CategoryMatcher, error) {
	m := &CategoryMatcher{
		category: category.Name,
		labelFor: make(map[string]string),
	}

	for _, label := range category.Labels {
		if len(label.Keywords) == 0 {
			return nil, &ConfigError{
				Field:  fmt.Sprintf("%s.%s", category.Name, label.Name),
				Reason: "empty keyword list",
			}
		}
		for _, keyword := range label.Keywords {
			normalized := strings.ToLower(strings.TrimSpace(keyword))
			if normalized == "" {
				continue
			}
			if _, seen := m.labelFor[normalized]; seen {
				continue
			}
			m.labelFor[normalized] = label.Name
			m.patterns = append(m.patterns, normalized)
		}
	}

	if len(m.patterns) == 0 {
		return nil, &ConfigError{Field: category.Name, Reason: "no keywords"}
	}

	m.matcher = ahocorasick.NewStringMatcher(m.patterns)

	return m, nil
}

// Category returns the category name this matcher serves.
func (m *CategoryMatcher) Category() string { return m.category }

// Match scans the text case-insensitively and returns the winning label,
// or ok=false when no keyword of the category occurs.
func (m *CategoryMatcher) Match(text string) (Match, bool) {
	if text == "" {
		return Match{}, false
	}

	lowered := strings.ToLower(text)
	hits := m.matcher.Match([]byte(lowered))
	if len(hits) == 0 {
		return Match{}, false
	}

	best := Match{Position: -1}
	for _, hit := range hits {
		if hit < 0 || hit >= len(m.patterns) {
			continue
		}
		keyword := m.patterns[hit]
		position := strings.Index(lowered, keyword)
		if position < 0 {
			continue
		}

		if best.Position < 0 ||
			len(keyword) > len(best.Keyword) ||
			(len(keyword) == len(best.Keyword) && position < best.Position) {
			best = Match{
				Label:    m.labelFor[keyword],
				Keyword:  keyword,
				Position: position,
			}
		}
	}

	if best.Position < 0 {
		return Match{}, false
	}

	return best, true
}
