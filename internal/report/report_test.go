package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/spigell/audience-scout/internal/audience"
	"github.com/spigell/audience-scout/internal/post"
)

func reportProfiles() *audience.Profiles {
	return &audience.Profiles{Items: []*audience.Profile{
		{Name: "Anna", Title: "VP Climate @ Klarna", Seniority: "vp", RoleFunction: "climate",
			CompanyType: "fintech", Geo: "nordics", Score: 85, ScoreReason: "Function+Seniority+CompanyType"},
		{Name: "Bruno", Title: "Risk Manager", Seniority: "manager", RoleFunction: "risk", Score: 50},
		{Name: "Dmitri", Title: "Spam Lord", Excluded: true, ScoreReason: "spam"},
	}}
}

func reportAnalysis() *post.Analysis {
	return &post.Analysis{
		Features:             post.Features{WordCount: 120, HashtagCount: 4, HasQuestion: true, ParagraphCount: 4, EmojiCount: 2, HasCTA: true, LengthCategory: post.LengthMedium},
		PredictedPerformance: post.PerformanceOverperform,
		PerformanceScore:     85,
		PerformanceReason:    "OptimalLength+OptimalHashtags+HasQuestion+HasCTA+GoodStructure+OptimalEmojis",
	}
}

func TestRenderFullReport(t *testing.T) {
	text := Render(Params{
		GeneratedAt: time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
		PostURL:     "https://linkedin.com/posts/example",
		Post:        reportAnalysis(),
		Audience:    reportProfiles(),
	})

	assert.Contains(t, text, "AUDIENCE INTELLIGENCE & POST PERFORMANCE REPORT")
	assert.Contains(t, text, "Generated: 2026-08-31 12:00:00")
	assert.Contains(t, text, "Post URL: https://linkedin.com/posts/example")

	assert.Contains(t, text, "Performance Prediction: OVERPERFORM")
	assert.Contains(t, text, "Performance Score: 85/100")

	assert.Contains(t, text, "Total profiles analyzed: 3")
	assert.Contains(t, text, "Valid profiles: 2")
	assert.Contains(t, text, "Excluded profiles: 1")
	assert.Contains(t, text, "Average relevance score: 67.5/100")
	assert.Contains(t, text, "High-value profiles (>=70): 1 (50.0%)")

	assert.Contains(t, text, "TOP 10 HIGHEST-VALUE PROSPECTS")
	assert.Contains(t, text, "1. Anna (Score: 85)")
	assert.NotContains(t, text, "Spam Lord", "excluded rows never reach the prospect list")

	// 50% high-value is well above the strong-alignment bar.
	assert.Contains(t, text, "STRONG alignment: 50.0%")
	assert.Contains(t, text, "Priority functions: climate, risk")
}

func TestRenderPostOnly(t *testing.T) {
	analysis := reportAnalysis()
	analysis.HasQuestion = false

	text := Render(Params{GeneratedAt: time.Now(), Post: analysis})

	assert.Contains(t, text, "POST PERFORMANCE ANALYSIS")
	assert.Contains(t, text, "Add a question")
	assert.NotContains(t, text, "AUDIENCE INTELLIGENCE ANALYSIS")
	assert.NotContains(t, text, "STRATEGIC INSIGHTS")
}

func TestRenderAudienceOnly(t *testing.T) {
	text := Render(Params{GeneratedAt: time.Now(), Audience: reportProfiles()})

	assert.NotContains(t, text, "POST PERFORMANCE ANALYSIS")
	assert.Contains(t, text, "AUDIENCE INTELLIGENCE ANALYSIS")
	assert.NotContains(t, text, "STRATEGIC INSIGHTS")
}

func TestRenderAllExcluded(t *testing.T) {
	profiles := &audience.Profiles{Items: []*audience.Profile{
		{Name: "Dmitri", Title: "Spam Lord", Excluded: true},
	}}

	text := Render(Params{GeneratedAt: time.Now(), Audience: profiles})

	assert.Contains(t, text, "Valid profiles: 0")
	assert.NotContains(t, text, "Average relevance score")
}

func TestRenderLowScoringPostGetsOptimizationNote(t *testing.T) {
	analysis := &post.Analysis{
		Features:             post.Features{LengthCategory: post.LengthShort},
		PredictedPerformance: post.PerformanceUnderperform,
		PerformanceScore:     15,
		PerformanceReason:    "HasQuestion",
	}

	text := Render(Params{
		GeneratedAt: time.Now(),
		Post:        analysis,
		Audience:    reportProfiles(),
	})

	assert.Contains(t, text, "Content Optimization Priority")
}

func TestRenderWellOptimizedPost(t *testing.T) {
	analysis := reportAnalysis()

	text := Render(Params{GeneratedAt: time.Now(), Post: analysis})

	assert.Contains(t, text, "Post is well-optimized!")
	assert.False(t, strings.Contains(text, "Recommendations:"))
}
