// Package audience holds the profile collection produced from the input
// rows and the operations run over it: classification, sorting,
// prospect filtering and exports.
package audience

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/mitchellh/mapstructure"
)

// Fields usable with Profiles.Exclude.
const (
	ProfileNameField    = "Name"
	ProfileCompanyField = "Company"
)

// Outreach priority tiers derived from the relevance score.
const (
	PriorityHigh   = "HIGH"
	PriorityMedium = "MEDIUM"
	PriorityLow    = "LOW"

	priorityHighMin   = 90
	priorityMediumMin = 70
)

// Profile is one audience member: the raw (name, title) row plus the
// classification and score attached by the pipeline.
type Profile struct {
	Name         string `json:"name"`
	Title        string `json:"title"`
	Company      string `json:"company,omitempty"`
	RoleFunction string `json:"role_function,omitempty"`
	Seniority    string `json:"seniority,omitempty"`
	CompanyType  string `json:"company_type,omitempty"`
	Geo          string `json:"geo,omitempty"`
	Score        int    `json:"score"`
	ScoreReason  string `json:"score_reason,omitempty"`
	Excluded     bool   `json:"excluded"`
}

// Profiles is the working collection.
type Profiles struct {
	Items []*Profile
}

// Prospect is a profile selected for outreach with its priority tier.
type Prospect struct {
	*Profile
	OutreachPriority string `json:"outreach_priority"`
}

// Prospects is an ordered prospect list.
type Prospects struct {
	Items []*Prospect
}

// seniorityRank orders seniority labels for sorting, most senior first.
// Unknown labels sort last.
var seniorityRank = map[string]int{
	"c_level":  0,
	"vp":       1,
	"director": 2,
	"manager":  3,
	"senior":   4,
	"mid":      5,
	"entry":    6,
}

func (p *Profiles) Len() int {
	return len(p.Items)
}

// FindByName returns the first profile with the given name, or nil.
func (p *Profiles) FindByName(name string) *Profile {
	for _, profile := range p.Items {
		if profile.Name == name {
			return profile
		}
	}
	return nil
}

// GetStringField returns a profile field by its exported name.
func (p *Profile) GetStringField(name string) string {
	switch name {
	case ProfileNameField:
		return p.Name
	case ProfileCompanyField:
		return p.Company
	default:
		return ""
	}
}

// SortByRelevance orders the collection by score descending, ties broken
// by seniority rank (most senior first). The sort is stable so equally
// ranked rows keep their input order.
func (p *Profiles) SortByRelevance() {
	sort.SliceStable(p.Items, func(i, j int) bool {
		a, b := p.Items[i], p.Items[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return rankOf(a.Seniority) < rankOf(b.Seniority)
	})
}

func rankOf(seniority string) int {
	if rank, ok := seniorityRank[seniority]; ok {
		return rank
	}
	return len(seniorityRank)
}

// OutreachPriority maps a relevance score to its tier.
func OutreachPriority(score int) string {
	switch {
	case score >= priorityHighMin:
		return PriorityHigh
	case score >= priorityMediumMin:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// Prospects returns the profiles with score >= minScore, excluded rows
// dropped, in the collection's current order, each tagged with its
// outreach priority.
func (p *Profiles) Prospects(minScore int) *Prospects {
	prospects := &Prospects{}
	for _, profile := range p.Items {
		if profile.Excluded || profile.Score < minScore {
			continue
		}
		prospects.Items = append(prospects.Items, &Prospect{
			Profile:          profile,
			OutreachPriority: OutreachPriority(profile.Score),
		})
	}
	return prospects
}

func (p *Prospects) Len() int {
	return len(p.Items)
}

// CountByPriority returns the number of prospects per tier.
func (p *Prospects) CountByPriority() map[string]int {
	counts := make(map[string]int, 3)
	for _, prospect := range p.Items {
		counts[prospect.OutreachPriority]++
	}
	return counts
}

// ExcludedCount returns how many profiles are marked excluded.
func (p *Profiles) ExcludedCount() int {
	count := 0
	for _, profile := range p.Items {
		if profile.Excluded {
			count++
		}
	}
	return count
}

// AverageScore is the mean score of non-excluded profiles.
func (p *Profiles) AverageScore() float64 {
	sum, valid := 0, 0
	for _, profile := range p.Items {
		if profile.Excluded {
			continue
		}
		sum += profile.Score
		valid++
	}
	if valid == 0 {
		return 0
	}
	return float64(sum) / float64(valid)
}

// HighValueCount returns how many profiles score at or above threshold.
func (p *Profiles) HighValueCount(threshold int) int {
	count := 0
	for _, profile := range p.Items {
		if profile.Score >= threshold {
			count++
		}
	}
	return count
}

// CountBy tallies non-excluded profiles by the given attribute selector.
func (p *Profiles) CountBy(attribute func(*Profile) string) map[string]int {
	counts := make(map[string]int)
	for _, profile := range p.Items {
		if profile.Excluded {
			continue
		}
		counts[attribute(profile)]++
	}
	return counts
}

// ReportByFunction groups non-excluded profiles by role function. Rows
// carry the profile fields keyed by their json tags, with their native
// types preserved.
func (p *Profiles) ReportByFunction() (map[string][]map[string]any, error) {
	report := make(map[string][]map[string]any)
	for _, profile := range p.Items {
		if profile.Excluded {
			continue
		}

		row := map[string]any{}
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Metadata: nil,
			Result:   &row,
			TagName:  "json",
		})
		if err != nil {
			return nil, err
		}
		if err := decoder.Decode(profile); err != nil {
			return nil, fmt.Errorf("building report row for %q: %w", profile.Name, err)
		}

		report[profile.RoleFunction] = append(report[profile.RoleFunction], row)
	}
	return report, nil
}

// Exclude removes profiles whose field matches one of the targets.
// Returns the names of removed profiles. Order is preserved.
func (p *Profiles) Exclude(field string, targets []string) []string {
	if len(targets) == 0 {
		return nil
	}

	targetSet := make(map[string]struct{}, len(targets))
	for _, target := range targets {
		targetSet[target] = struct{}{}
	}

	var removed []string
	kept := p.Items[:0]
	for _, profile := range p.Items {
		if _, hit := targetSet[profile.GetStringField(field)]; hit {
			removed = append(removed, profile.Name)
			continue
		}
		kept = append(kept, profile)
	}
	p.Items = kept

	return removed
}

// DumpToTmpFile writes the collection as indented JSON to a temp file
// and returns its name.
func (p *Profiles) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "audience_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return "", err
	}
	return file.Name(), nil
}
