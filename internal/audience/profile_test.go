package audience

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoredProfiles() *Profiles {
	return &Profiles{Items: []*Profile{
		{Name: "Anna", Title: "CFO @ Acme", Seniority: "c_level", RoleFunction: "finance", Score: 70},
		{Name: "Bruno", Title: "Risk Manager", Seniority: "manager", RoleFunction: "risk", Score: 85},
		{Name: "Carla", Title: "VP Climate", Seniority: "vp", RoleFunction: "climate", Score: 85},
		{Name: "Dmitri", Title: "Spam Lord", Score: 0, ScoreReason: "spam", Excluded: true},
		{Name: "Elin", Title: "Junior Analyst", Seniority: "entry", RoleFunction: "finance", Score: 95},
	}}
}

func TestSortByRelevance(t *testing.T) {
	profiles := scoredProfiles()
	profiles.SortByRelevance()

	names := make([]string, 0, profiles.Len())
	for _, profile := range profiles.Items {
		names = append(names, profile.Name)
	}

	// Score descending; the 85-tie resolves by seniority (vp over
	// manager); unknown seniority sorts last within score 0.
	assert.Equal(t, []string{"Elin", "Carla", "Bruno", "Anna", "Dmitri"}, names)
}

func TestSortByRelevanceStable(t *testing.T) {
	profiles := &Profiles{Items: []*Profile{
		{Name: "First", Seniority: "vp", Score: 80},
		{Name: "Second", Seniority: "vp", Score: 80},
	}}
	profiles.SortByRelevance()

	assert.Equal(t, "First", profiles.Items[0].Name)
	assert.Equal(t, "Second", profiles.Items[1].Name)
}

func TestOutreachPriorityBoundaries(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, PriorityHigh},
		{90, PriorityHigh},
		{89, PriorityMedium},
		{70, PriorityMedium},
		{69, PriorityLow},
		{0, PriorityLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, OutreachPriority(tt.score), "score=%d", tt.score)
	}
}

func TestProspects(t *testing.T) {
	prospects := scoredProfiles().Prospects(70)

	require.Equal(t, 4, prospects.Len(), "excluded rows never become prospects")

	counts := prospects.CountByPriority()
	assert.Equal(t, 1, counts[PriorityHigh])
	assert.Equal(t, 3, counts[PriorityMedium])
	assert.Zero(t, counts[PriorityLow])
}

func TestProspectsMinScoreCut(t *testing.T) {
	prospects := scoredProfiles().Prospects(90)

	require.Equal(t, 1, prospects.Len())
	assert.Equal(t, "Elin", prospects.Items[0].Name)
	assert.Equal(t, PriorityHigh, prospects.Items[0].OutreachPriority)
}

func TestAverageScoreSkipsExcluded(t *testing.T) {
	profiles := scoredProfiles()

	// (70+85+85+95)/4
	assert.InDelta(t, 83.75, profiles.AverageScore(), 0.001)
	assert.Equal(t, 1, profiles.ExcludedCount())

	empty := &Profiles{}
	assert.Zero(t, empty.AverageScore())
}

func TestCountBy(t *testing.T) {
	counts := scoredProfiles().CountBy(func(p *Profile) string { return p.RoleFunction })

	assert.Equal(t, map[string]int{"finance": 2, "risk": 1, "climate": 1}, counts)
}

func TestReportByFunction(t *testing.T) {
	report, err := scoredProfiles().ReportByFunction()
	require.NoError(t, err)

	require.Len(t, report["finance"], 2)
	anna := report["finance"][0]
	assert.Equal(t, "Anna", anna["name"])
	assert.Equal(t, "c_level", anna["seniority"])
	assert.Equal(t, 70, anna["score"], "non-string fields keep their type")
	assert.Equal(t, false, anna["excluded"])
	assert.NotContains(t, anna, "company", "empty fields are omitted")
	assert.NotContains(t, report, "", "excluded rows are skipped")
}

func TestExclude(t *testing.T) {
	profiles := scoredProfiles()
	profiles.Items[0].Company = "Acme"

	removed := profiles.Exclude(ProfileCompanyField, []string{"Acme"})

	assert.Equal(t, []string{"Anna"}, removed)
	require.Equal(t, 4, profiles.Len())
	assert.Equal(t, "Bruno", profiles.Items[0].Name)

	assert.Nil(t, profiles.Exclude(ProfileNameField, nil))
	assert.Equal(t, 4, profiles.Len())
}

func TestFindByName(t *testing.T) {
	profiles := scoredProfiles()

	require.NotNil(t, profiles.FindByName("Carla"))
	assert.Nil(t, profiles.FindByName("Nobody"))
}
