// Package classify turns a raw professional title into structured
// attributes and a relevance score against the configured ICP.
package classify

import (
	"strings"
)

// ParsedTitle is the split of a raw title into its role phrase and the
// extracted company name. Company is empty when no delimiter separates a
// role from an organization.
type ParsedTitle struct {
	RolePhrase string
	Company    string
}

// Delimiters separating the role side from the organization side, in
// scan order. The first one encountered in the title wins; everything
// after it belongs to the organization side.
var roleDelimiters = []string{"@", " at ", "|"}

// ParseTitle extracts the company and the role phrase from a title.
//
// The heuristic is first-delimiter-wins: with several organizations or
// roles chained by pipes, the primary company is the first "@"/" at "
// segment. That is a known precision limit for multi-organization
// titles, kept deliberately.
func ParseTitle(title string) ParsedTitle {
	title = strings.TrimSpace(title)
	if title == "" {
		return ParsedTitle{}
	}

	idx, width := firstDelimiter(title)
	if idx < 0 {
		return ParsedTitle{RolePhrase: title}
	}

	role := strings.TrimSpace(title[:idx])
	rest := title[idx+width:]

	// The company is the organization side up to the next pipe; any
	// later |-segments are secondary role clauses, not the company.
	if pipe := strings.Index(rest, "|"); pipe >= 0 {
		rest = rest[:pipe]
	}

	return ParsedTitle{
		RolePhrase: role,
		Company:    strings.TrimSpace(rest),
	}
}

// firstDelimiter returns the byte offset and width of the earliest
// delimiter occurrence, or -1 when the title has none. The " at "
// delimiter is matched case-insensitively.
func firstDelimiter(title string) (int, int) {
	lowered := strings.ToLower(title)

	best := -1
	width := 0
	for _, delimiter := range roleDelimiters {
		idx := strings.Index(lowered, delimiter)
		if idx < 0 {
			continue
		}
		if best < 0 || idx < best {
			best = idx
			width = len(delimiter)
		}
	}

	return best, width
}
