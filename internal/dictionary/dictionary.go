// Package dictionary holds the static keyword dictionaries, the ICP
// target configuration and the exclusion list. A Store is built once at
// startup and is safe for concurrent reads.
package dictionary

import (
	"fmt"
	"sort"
	"strings"
)

// Category names understood by the store.
const (
	CategoryFunctions    = "functions"
	CategorySeniority    = "seniority"
	CategoryCompanyTypes = "company_types"
	CategoryGeographies  = "geographies"
)

// Unknown is returned when no label of a category matches.
const Unknown = "unknown"

// Category is an ordered set of labels with their keyword lists.
type Category struct {
	Name   string
	Labels []Label
}

// Label maps a category label to its keywords.
type Label struct {
	Name     string
	Keywords []string
}

// ICPConfig names the target labels per category for relevance scoring.
type ICPConfig struct {
	TargetFunctions    []string `mapstructure:"target-functions"`
	TargetSeniority    []string `mapstructure:"target-seniority"`
	TargetCompanyTypes []string `mapstructure:"target-company-types"`
	TargetGeo          []string `mapstructure:"target-geo"`
}

// Overrides carries optional configuration-file replacements for the
// built-in data. Keyword lists replace the built-in list of the same
// label; unknown labels are appended to the category.
type Overrides struct {
	Dictionaries map[string]map[string][]string `mapstructure:"dictionaries"`
	ICP          *ICPConfig                     `mapstructure:"icp"`
	Exclusions   []string                       `mapstructure:"exclusions"`
	PostKeywords []string                       `mapstructure:"post-keywords"`
}

// ConfigError reports invalid dictionary or ICP configuration. It is
// returned at construction time only; a built store never fails per call.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("dictionary config: %s: %s", e.Field, e.Reason)
}

// Store is the immutable run configuration: dictionaries with their
// matchers, ICP targets, exclusions and the post keyword lists.
type Store struct {
	matchers map[string]*CategoryMatcher

	icp             ICPConfig
	targetFunctions map[string]struct{}
	targetSeniority map[string]struct{}
	targetCompany   map[string]struct{}
	targetGeo       map[string]struct{}

	exclusions      []string
	postKeywords    []string
	ctaPhrases      []string
	engagementWords []string
}

// New builds a Store from the built-in data with the provided overrides
// applied. Referencing an unknown category or supplying an empty keyword
// list is a ConfigError.
func New(ov *Overrides) (*Store, error) {
	categories := defaultCategories()

	if ov != nil {
		merged, err := applyOverrides(categories, ov.Dictionaries)
		if err != nil {
			return nil, err
		}
		categories = merged
	}

	s := &Store{
		matchers:        make(map[string]*CategoryMatcher, len(categories)),
		icp:             defaultICP(),
		exclusions:      defaultExclusions(),
		postKeywords:    defaultPostKeywords(),
		ctaPhrases:      defaultCTAPhrases(),
		engagementWords: defaultEngagementWords(),
	}

	for _, category := range categories {
		matcher, err := NewCategoryMatcher(category)
		if err != nil {
			return nil, err
		}
		s.matchers[category.Name] = matcher
	}

	if ov != nil {
		if ov.ICP != nil {
			s.icp = *ov.ICP
		}
		if len(ov.Exclusions) > 0 {
			s.exclusions = append([]string{}, ov.Exclusions...)
		}
		if len(ov.PostKeywords) > 0 {
			s.postKeywords = append([]string{}, ov.PostKeywords...)
		}
	}

	if err := s.validateICP(categories); err != nil {
		return nil, err
	}

	s.targetFunctions = toSet(s.icp.TargetFunctions)
	s.targetSeniority = toSet(s.icp.TargetSeniority)
	s.targetCompany = toSet(s.icp.TargetCompanyTypes)
	s.targetGeo = toSet(s.icp.TargetGeo)

	return s, nil
}

func applyOverrides(categories []Category, overrides map[string]map[string][]string) ([]Category, error) {
	if len(overrides) == 0 {
		return categories, nil
	}

	known := make(map[string]int, len(categories))
	for i, category := range categories {
		known[category.Name] = i
	}

	for name, labels := range overrides {
		idx, ok := known[name]
		if !ok {
			return nil, &ConfigError{Field: name, Reason: "unknown category"}
		}

		category := &categories[idx]
		existing := make(map[string]int, len(category.Labels))
		for i, label := range category.Labels {
			existing[label.Name] = i
		}

		// Sort new labels for a deterministic declaration order.
		added := make([]string, 0)
		for label, keywords := range labels {
			if len(keywords) == 0 {
				return nil, &ConfigError{
					Field:  fmt.Sprintf("%s.%s", name, label),
					Reason: "empty keyword list",
				}
			}
			if i, ok := existing[label]; ok {
				category.Labels[i].Keywords = append([]string{}, keywords...)
				continue
			}
			added = append(added, label)
		}

		sort.Strings(added)
		for _, label := range added {
			category.Labels = append(category.Labels, Label{
				Name:     label,
				Keywords: append([]string{}, labels[label]...),
			})
		}
	}

	return categories, nil
}

func (s *Store) validateICP(categories []Category) error {
	labels := make(map[string]map[string]struct{}, len(categories))
	for _, category := range categories {
		set := make(map[string]struct{}, len(category.Labels))
		for _, label := range category.Labels {
			set[label.Name] = struct{}{}
		}
		labels[category.Name] = set
	}

	checks := []struct {
		category string
		targets  []string
	}{
		{CategoryFunctions, s.icp.TargetFunctions},
		{CategorySeniority, s.icp.TargetSeniority},
		{CategoryCompanyTypes, s.icp.TargetCompanyTypes},
		{CategoryGeographies, s.icp.TargetGeo},
	}

	for _, check := range checks {
		for _, target := range check.targets {
			if _, ok := labels[check.category][target]; !ok {
				return &ConfigError{
					Field:  fmt.Sprintf("icp.%s", check.category),
					Reason: fmt.Sprintf("target %q is not a label of the category", target),
				}
			}
		}
	}

	return nil
}

// Matcher returns the matcher for the named category, or nil.
func (s *Store) Matcher(category string) *CategoryMatcher {
	return s.matchers[category]
}

// ICP returns the configured target sets.
func (s *Store) ICP() ICPConfig { return s.icp }

// IsTargetFunction reports whether the label is an ICP target function.
func (s *Store) IsTargetFunction(label string) bool {
	_, ok := s.targetFunctions[label]
	return ok
}

// IsTargetSeniority reports whether the label is an ICP target seniority.
func (s *Store) IsTargetSeniority(label string) bool {
	_, ok := s.targetSeniority[label]
	return ok
}

// IsTargetCompanyType reports whether the label is an ICP target company type.
func (s *Store) IsTargetCompanyType(label string) bool {
	_, ok := s.targetCompany[label]
	return ok
}

// IsTargetGeo reports whether the label is an ICP target geography.
func (s *Store) IsTargetGeo(label string) bool {
	_, ok := s.targetGeo[label]
	return ok
}

// ExclusionMatch returns the first configured exclusion term contained in
// the title or company, case-insensitively.
func (s *Store) ExclusionMatch(title, company string) (string, bool) {
	haystack := strings.ToLower(title + " " + company)
	for _, term := range s.exclusions {
		if term == "" {
			continue
		}
		if strings.Contains(haystack, strings.ToLower(term)) {
			return term, true
		}
	}
	return "", false
}

// Exclusions returns the configured exclusion terms.
func (s *Store) Exclusions() []string { return s.exclusions }

// PostKeywords returns the keywords used for the title keyword bonus.
func (s *Store) PostKeywords() []string { return s.postKeywords }

// CTAPhrases returns the call-to-action phrase list.
func (s *Store) CTAPhrases() []string { return s.ctaPhrases }

// EngagementWords returns the engagement keyword list.
func (s *Store) EngagementWords() []string { return s.engagementWords }

// WithExclusions returns a copy of the store with the extra exclusion
// terms appended. The receiver is not modified.
func (s *Store) WithExclusions(terms []string) *Store {
	if len(terms) == 0 {
		return s
	}
	clone := *s
	clone.exclusions = append(append([]string{}, s.exclusions...), terms...)
	return &clone
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
