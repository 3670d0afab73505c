package audience

import (
	"encoding/json"
	"os"
	"time"
)

// ExcludedTerms is the persisted list of extra exclusion substrings.
// Terms loaded from the file are merged with the configured exclusion
// list for the run.
type ExcludedTerms struct {
	Items []*ExcludedTerm
}

// ExcludedTerm is one exclusion substring with its provenance.
type ExcludedTerm struct {
	Term       string    `json:"term"`
	Source     string    `json:"source,omitempty"`
	ExcludedAt time.Time `json:"excluded_at"`
}

// GetExcludedTermsFromFile loads the exclusion terms file. An empty file
// yields an empty list.
func GetExcludedTermsFromFile(path string) (*ExcludedTerms, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	if stat.Size() == 0 {
		return &ExcludedTerms{}, nil
	}

	var excluded ExcludedTerms
	if err := json.NewDecoder(file).Decode(&excluded); err != nil {
		return nil, err
	}
	return &excluded, nil
}

// Append merges another list into this one.
func (e *ExcludedTerms) Append(other *ExcludedTerms) {
	e.Items = append(e.Items, other.Items...)
}

// Terms returns the raw exclusion substrings.
func (e *ExcludedTerms) Terms() []string {
	terms := make([]string, 0, len(e.Items))
	for _, item := range e.Items {
		terms = append(terms, item.Term)
	}
	return terms
}

// ToFile writes the list as indented JSON.
func (e *ExcludedTerms) ToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}

// ToExcludedTerms converts the prospects' companies into exclusion
// terms, skipping prospects without an extracted company.
func (p *Prospects) ToExcludedTerms() *ExcludedTerms {
	excluded := &ExcludedTerms{}
	for _, prospect := range p.Items {
		if prospect.Company == "" {
			continue
		}
		excluded.Items = append(excluded.Items, &ExcludedTerm{
			Term:       prospect.Company,
			Source:     prospect.Name,
			ExcludedAt: time.Now().UTC(),
		})
	}
	return excluded
}
