package audience

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spigell/audience-scout/internal/dictionary"
)

func newPipeline(t *testing.T, workers int) *Pipeline {
	t.Helper()
	store, err := dictionary.New(nil)
	require.NoError(t, err)
	return NewPipeline(store, zap.NewNop(), workers)
}

func TestPipelineRun(t *testing.T) {
	pipeline := newPipeline(t, 4)

	profiles := &Profiles{Items: []*Profile{
		{Name: "Anna", Title: "VP of Sustainability @ Klarna | Climate Tech Advocate"},
		{Name: "Bruno", Title: "Head of Risk and Compliance at FinanceInc"},
		{Name: "Carla", Title: "Gardener"},
	}}

	require.NoError(t, pipeline.Run(context.Background(), profiles, nil))

	anna := profiles.Items[0]
	assert.Equal(t, "Klarna", anna.Company)
	assert.Equal(t, "climate", anna.RoleFunction)
	assert.Equal(t, "vp", anna.Seniority)
	assert.Equal(t, 85, anna.Score)
	assert.Equal(t, "Function+Seniority+CompanyType", anna.ScoreReason)

	bruno := profiles.Items[1]
	assert.Equal(t, "FinanceInc", bruno.Company)
	assert.Equal(t, "risk", bruno.RoleFunction)
	assert.Equal(t, "director", bruno.Seniority)

	carla := profiles.Items[2]
	assert.Equal(t, dictionary.Unknown, carla.RoleFunction)
	assert.Zero(t, carla.Score)
	assert.Equal(t, "", carla.ScoreReason)
}

func TestPipelinePreservesOrder(t *testing.T) {
	pipeline := newPipeline(t, 16)

	profiles := &Profiles{}
	for i := 0; i < 200; i++ {
		title := "CEO"
		if i%2 == 1 {
			title = "Junior Assistant"
		}
		profiles.Items = append(profiles.Items, &Profile{Name: "p", Title: title})
	}

	require.NoError(t, pipeline.Run(context.Background(), profiles, nil))

	for i, profile := range profiles.Items {
		want := "c_level"
		if i%2 == 1 {
			want = "entry"
		}
		assert.Equal(t, want, profile.Seniority, "row %d", i)
	}
}

func TestPipelineExcludedKeepsZeroScore(t *testing.T) {
	pipeline := newPipeline(t, 1)

	profiles := &Profiles{Items: []*Profile{
		{Name: "Dmitri", Title: "CEO at SpamWorks", Excluded: true, ScoreReason: "spam"},
	}}

	require.NoError(t, pipeline.Run(context.Background(), profiles, nil))

	dmitri := profiles.Items[0]
	// Attributes are still classified for reporting, but the exclusion
	// verdict wins over any score they would earn.
	assert.Equal(t, "c_level", dmitri.Seniority)
	assert.Zero(t, dmitri.Score)
	assert.Equal(t, "spam", dmitri.ScoreReason)
}

func TestPipelineIdempotent(t *testing.T) {
	pipeline := newPipeline(t, 2)

	profiles := &Profiles{Items: []*Profile{
		{Name: "Anna", Title: "VP Climate @ Klarna"},
	}}

	require.NoError(t, pipeline.Run(context.Background(), profiles, nil))
	first := *profiles.Items[0]

	require.NoError(t, pipeline.Run(context.Background(), profiles, nil))
	assert.Equal(t, first, *profiles.Items[0])
}

func TestPipelineCancelledContext(t *testing.T) {
	pipeline := newPipeline(t, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	profiles := &Profiles{Items: []*Profile{{Name: "Anna", Title: "CEO"}}}
	err := pipeline.Run(ctx, profiles, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
