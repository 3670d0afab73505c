package classify

import (
	"fmt"
	"strings"

	"github.com/spigell/audience-scout/internal/dictionary"
)

// Scoring weights of the additive relevance model.
const (
	scoreFunctionTarget    = 40
	scoreFunctionAdjacent  = 20
	scoreSeniorityTarget   = 25
	scoreSeniorityNear     = 10
	scoreCompanyTarget     = 20
	scoreCompanyAdjacent   = 10
	scoreGeoTarget         = 10
	scorePerKeyword        = 5
	scoreKeywordBonusLimit = 10
	scoreMax               = 100
)

// Adjacent tiers scored below the ICP targets. These are fixed by the
// model, independent of the configured target sets. The built-in
// dictionary folds lead titles into the manager label; the "lead"
// entry applies when a dictionary override declares it as its own
// seniority label.
var (
	adjacentFunctions    = map[string]struct{}{"sales": {}, "marketing": {}, "product": {}}
	nearSeniorities      = map[string]struct{}{"manager": {}, "lead": {}}
	adjacentCompanyTypes = map[string]struct{}{"consulting": {}, "tech": {}}
)

// Result is a relevance score in [0,100] with the list of contributing
// factors joined by "+", in model order. No factors yields an empty
// reason.
type Result struct {
	Score  int
	Reason string
}

// Score evaluates the classified attributes against the ICP targets.
// postKeywords is the optional keyword set of an analyzed post; when
// empty, the keyword bonus term is skipped entirely.
func Score(attrs Attributes, title string, postKeywords []string, store *dictionary.Store) Result {
	score := 0
	reasons := make([]string, 0, 5)

	switch {
	case store.IsTargetFunction(attrs.Function):
		score += scoreFunctionTarget
		reasons = append(reasons, "Function")
	case isIn(adjacentFunctions, attrs.Function):
		score += scoreFunctionAdjacent
		reasons = append(reasons, "Function(partial)")
	}

	switch {
	case store.IsTargetSeniority(attrs.Seniority):
		score += scoreSeniorityTarget
		reasons = append(reasons, "Seniority")
	case isIn(nearSeniorities, attrs.Seniority):
		score += scoreSeniorityNear
		reasons = append(reasons, "Seniority(near)")
	}

	switch {
	case store.IsTargetCompanyType(attrs.CompanyType):
		score += scoreCompanyTarget
		reasons = append(reasons, "CompanyType")
	case isIn(adjacentCompanyTypes, attrs.CompanyType):
		score += scoreCompanyAdjacent
		reasons = append(reasons, "CompanyType(adjacent)")
	}

	if store.IsTargetGeo(attrs.Geo) {
		score += scoreGeoTarget
		reasons = append(reasons, "Geo")
	}

	if bonus := keywordBonus(title, postKeywords); bonus > 0 {
		score += bonus
		reasons = append(reasons, fmt.Sprintf("Keywords(+%d)", bonus))
	}

	if score > scoreMax {
		score = scoreMax
	}
	if score < 0 {
		score = 0
	}

	return Result{
		Score:  score,
		Reason: strings.Join(reasons, "+"),
	}
}

// keywordBonus grants +5 per distinct post keyword found in the title,
// capped at +10.
func keywordBonus(title string, postKeywords []string) int {
	if len(postKeywords) == 0 {
		return 0
	}

	lowered := strings.ToLower(title)
	matches := 0
	for _, keyword := range postKeywords {
		if keyword == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(keyword)) {
			matches++
		}
	}

	bonus := matches * scorePerKeyword
	if bonus > scoreKeywordBonusLimit {
		bonus = scoreKeywordBonusLimit
	}
	return bonus
}

func isIn(set map[string]struct{}, label string) bool {
	_, ok := set[label]
	return ok
}
