package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/audience-scout/internal/dictionary"
)

func TestScoreTargetProfile(t *testing.T) {
	store := newTestStore(t)

	title := "VP of Sustainability @ Klarna | Climate Tech Advocate"
	parsed := ParseTitle(title)
	attrs := Classify(title, parsed.Company, store)

	result := Score(attrs, title, nil, store)
	assert.Equal(t, 85, result.Score)
	assert.Equal(t, "Function+Seniority+CompanyType", result.Reason)
}

func TestScoreKeywordBonusCapped(t *testing.T) {
	store := newTestStore(t)

	title := "Climate Risk Lead"
	attrs := Classify(title, "", store)

	// Three keyword hits would be +15; the bonus caps at +10.
	result := Score(attrs, title, []string{"climate", "risk", "lead"}, store)
	assert.Equal(t, 80, result.Score)
	assert.Equal(t, "Function+Seniority(near)+CompanyType+Keywords(+10)", result.Reason)
}

func TestScoreNoPostKeywordsSkipsBonus(t *testing.T) {
	store := newTestStore(t)

	title := "Climate Risk Lead"
	attrs := Classify(title, "", store)

	result := Score(attrs, title, nil, store)
	assert.Equal(t, 70, result.Score)
	assert.Equal(t, "Function+Seniority(near)+CompanyType", result.Reason)
}

func TestScoreClampedAtHundred(t *testing.T) {
	store := newTestStore(t)

	title := "Chief Climate Officer, Stockholm"
	attrs := Classify(title, "", store)

	// 40+25+20+10 base plus a +10 bonus is 105 before the clamp.
	result := Score(attrs, title, []string{"climate", "officer"}, store)
	assert.Equal(t, 100, result.Score)
	assert.Equal(t, "Function+Seniority+CompanyType+Geo+Keywords(+10)", result.Reason)
}

func TestScoreAdjacentTiers(t *testing.T) {
	store := newTestStore(t)

	title := "Sales Manager"
	attrs := Classify(title, "", store)

	result := Score(attrs, title, nil, store)
	assert.Equal(t, 30, result.Score)
	assert.Equal(t, "Function(partial)+Seniority(near)", result.Reason)
}

func TestScoreLeadLabelFromOverride(t *testing.T) {
	store, err := dictionary.New(&dictionary.Overrides{
		Dictionaries: map[string]map[string][]string{
			dictionary.CategorySeniority: {"lead": {"squad lead"}},
		},
	})
	require.NoError(t, err)

	title := "Squad Lead of Things"
	attrs := Classify(title, "", store)
	require.Equal(t, "lead", attrs.Seniority)

	result := Score(attrs, title, nil, store)
	assert.Equal(t, 10, result.Score)
	assert.Equal(t, "Seniority(near)", result.Reason)
}

func TestScoreNothingMatches(t *testing.T) {
	store := newTestStore(t)

	attrs := Classify("Gardener", "", store)

	result := Score(attrs, "Gardener", nil, store)
	assert.Equal(t, 0, result.Score)
	assert.Equal(t, "", result.Reason)
}
