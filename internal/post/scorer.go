package post

import (
	"strings"
)

// Predicted performance categories.
const (
	PerformanceOverperform  = "overperform"
	PerformanceAverage      = "average"
	PerformanceUnderperform = "underperform"
)

// Category thresholds: overperform at 75 and above, underperform below 50.
const (
	overperformThreshold = 75
	averageThreshold     = 50
)

// Optimal ranges rewarded by the scoring model.
const (
	optimalWordsMin      = 100
	optimalWordsMax      = 200
	optimalHashtagsMin   = 3
	optimalHashtagsMax   = 5
	optimalParagraphsMin = 3
	optimalParagraphsMax = 5
	optimalEmojiMin      = 1
	optimalEmojiMax      = 3
	engagementWordsMin   = 2
)

// Analysis is the scored feature profile of a post.
type Analysis struct {
	Features
	PredictedPerformance string `json:"predicted_performance"`
	PerformanceScore     int    `json:"performance_score"`
	PerformanceReason    string `json:"performance_reason"`
}

// ScoreFeatures applies the additive performance model. Each term is
// independent; the reason lists the triggered factors in fixed order.
func ScoreFeatures(f Features) (int, string, string) {
	score := 0
	reasons := make([]string, 0, 8)

	if f.WordCount >= optimalWordsMin && f.WordCount <= optimalWordsMax {
		score += 20
		reasons = append(reasons, "OptimalLength")
	}

	if f.HashtagCount >= optimalHashtagsMin && f.HashtagCount <= optimalHashtagsMax {
		score += 15
		reasons = append(reasons, "OptimalHashtags")
	}

	if f.HasQuestion {
		score += 15
		reasons = append(reasons, "HasQuestion")
	}

	if f.HasCTA {
		score += 15
		reasons = append(reasons, "HasCTA")
	}

	if f.ParagraphCount >= optimalParagraphsMin && f.ParagraphCount <= optimalParagraphsMax {
		score += 10
		reasons = append(reasons, "GoodStructure")
	}

	if f.EmojiCount >= optimalEmojiMin && f.EmojiCount <= optimalEmojiMax {
		score += 10
		reasons = append(reasons, "OptimalEmojis")
	}

	if f.HasLink {
		score += 10
		reasons = append(reasons, "HasLink")
	}

	if f.EngagementKeywordCount >= engagementWordsMin {
		score += 5
		reasons = append(reasons, "EngagementWords")
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	return score, strings.Join(reasons, "+"), Categorize(score)
}

// Categorize maps a performance score to its three-way category.
func Categorize(score int) string {
	switch {
	case score >= overperformThreshold:
		return PerformanceOverperform
	case score >= averageThreshold:
		return PerformanceAverage
	default:
		return PerformanceUnderperform
	}
}

// Analyze extracts and scores the post in one step.
func Analyze(text string, ctaPhrases, engagementWords []string) Analysis {
	features := ExtractFeatures(text, ctaPhrases, engagementWords)
	score, reason, category := ScoreFeatures(features)

	return Analysis{
		Features:             features,
		PredictedPerformance: category,
		PerformanceScore:     score,
		PerformanceReason:    reason,
	}
}
