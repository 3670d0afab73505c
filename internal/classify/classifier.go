package classify

import (
	"github.com/spigell/audience-scout/internal/dictionary"
)

// Attributes is the four-way classification of a title. Each field is a
// dictionary label or dictionary.Unknown.
type Attributes struct {
	Function    string
	Seniority   string
	CompanyType string
	Geo         string
}

// Classify maps the title (and the extracted company) onto the four
// category dictionaries. Each category is scanned independently over the
// full title: company-type and geography keywords often live in the
// company or location clause rather than the role phrase. The company
// string is additionally consulted for the company type, matching
// company-specific hints the dictionary defines.
func Classify(title, company string, store *dictionary.Store) Attributes {
	attrs := Attributes{
		Function:    dictionary.Unknown,
		Seniority:   dictionary.Unknown,
		CompanyType: dictionary.Unknown,
		Geo:         dictionary.Unknown,
	}

	if match, ok := store.Matcher(dictionary.CategoryFunctions).Match(title); ok {
		attrs.Function = match.Label
	}
	if match, ok := store.Matcher(dictionary.CategorySeniority).Match(title); ok {
		attrs.Seniority = match.Label
	}
	if match, ok := store.Matcher(dictionary.CategoryCompanyTypes).Match(title + " " + company); ok {
		attrs.CompanyType = match.Label
	}
	if match, ok := store.Matcher(dictionary.CategoryGeographies).Match(title); ok {
		attrs.Geo = match.Label
	}

	return attrs
}
