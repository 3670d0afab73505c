// Package report renders the combined plain-text analysis report from
// already-computed results.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spigell/audience-scout/internal/audience"
	"github.com/spigell/audience-scout/internal/post"
)

const (
	divider = "================================================================================"

	highValueThreshold = 70

	strongAlignmentPct   = 30.0
	moderateAlignmentPct = 15.0

	topProspects     = 10
	topDistributions = 5
)

// Params carries everything the combined report renders. Post and
// Audience are both optional; the corresponding sections are omitted
// when nil.
type Params struct {
	GeneratedAt time.Time
	PostURL     string
	Post        *post.Analysis
	Audience    *audience.Profiles
}

// Render produces the combined report text.
func Render(p Params) string {
	var b strings.Builder

	writeHeader(&b, p)

	if p.Post != nil {
		writePostSection(&b, p.Post)
	}

	if p.Audience != nil {
		writeAudienceSection(&b, p.Audience)
	}

	if p.Post != nil && p.Audience != nil {
		writeInsightsSection(&b, p.Post, p.Audience)
	}

	return b.String()
}

func writeHeader(b *strings.Builder, p Params) {
	fmt.Fprintf(b, "%s\nAUDIENCE INTELLIGENCE & POST PERFORMANCE REPORT\n%s\n\n", divider, divider)
	fmt.Fprintf(b, "Generated: %s\n", p.GeneratedAt.Format("2006-01-02 15:04:05"))
	if p.PostURL != "" {
		fmt.Fprintf(b, "Post URL: %s\n", p.PostURL)
	}
	b.WriteString("\n")
}

func writePostSection(b *strings.Builder, analysis *post.Analysis) {
	fmt.Fprintf(b, "%s\nPOST PERFORMANCE ANALYSIS\n%s\n\n", divider, divider)

	fmt.Fprintf(b, "Performance Prediction: %s\n", strings.ToUpper(analysis.PredictedPerformance))
	fmt.Fprintf(b, "Performance Score: %d/100\n", analysis.PerformanceScore)
	fmt.Fprintf(b, "Score Factors: %s\n\n", analysis.PerformanceReason)

	b.WriteString("Feature Summary:\n")
	fmt.Fprintf(b, "  - Word count: %d (%s)\n", analysis.WordCount, analysis.LengthCategory)
	fmt.Fprintf(b, "  - Has question: %t\n", analysis.HasQuestion)
	fmt.Fprintf(b, "  - Hashtags: %d\n", analysis.HashtagCount)
	fmt.Fprintf(b, "  - Emojis: %d\n", analysis.EmojiCount)
	fmt.Fprintf(b, "  - Paragraphs: %d\n", analysis.ParagraphCount)
	fmt.Fprintf(b, "  - External link: %t\n", analysis.HasLink)
	fmt.Fprintf(b, "  - Call to action: %t\n\n", analysis.HasCTA)

	recommendations := post.Recommendations(analysis.Features)
	if len(recommendations) == 0 {
		b.WriteString("Post is well-optimized! No major recommendations.\n\n")
		return
	}

	b.WriteString("Recommendations:\n")
	for _, recommendation := range recommendations {
		fmt.Fprintf(b, "  - %s\n", recommendation)
	}
	b.WriteString("\n")
}

func writeAudienceSection(b *strings.Builder, profiles *audience.Profiles) {
	fmt.Fprintf(b, "%s\nAUDIENCE INTELLIGENCE ANALYSIS\n%s\n\n", divider, divider)

	total := profiles.Len()
	excluded := profiles.ExcludedCount()
	valid := total - excluded

	fmt.Fprintf(b, "Total profiles analyzed: %d\n", total)
	fmt.Fprintf(b, "Valid profiles: %d\n", valid)
	fmt.Fprintf(b, "Excluded profiles: %d\n\n", excluded)

	if valid == 0 {
		return
	}

	highValue := profiles.HighValueCount(highValueThreshold)
	fmt.Fprintf(b, "Average relevance score: %.1f/100\n", profiles.AverageScore())
	fmt.Fprintf(b, "High-value profiles (>=%d): %d (%.1f%%)\n\n",
		highValueThreshold, highValue, pct(highValue, valid))

	writeDistribution(b, "Top Functions", profiles.CountBy(func(p *audience.Profile) string { return p.RoleFunction }), valid)
	writeDistribution(b, "Seniority Distribution", profiles.CountBy(func(p *audience.Profile) string { return p.Seniority }), valid)
	writeDistribution(b, "Geography Distribution", profiles.CountBy(func(p *audience.Profile) string { return p.Geo }), valid)

	writeTopProspects(b, profiles)
}

func writeDistribution(b *strings.Builder, heading string, counts map[string]int, valid int) {
	fmt.Fprintf(b, "%s:\n", heading)
	for _, entry := range topEntries(counts, topDistributions) {
		fmt.Fprintf(b, "  - %s: %d (%.1f%%)\n", entry.label, entry.count, pct(entry.count, valid))
	}
	b.WriteString("\n")
}

func writeTopProspects(b *strings.Builder, profiles *audience.Profiles) {
	fmt.Fprintf(b, "%s\nTOP %d HIGHEST-VALUE PROSPECTS\n%s\n\n", divider, topProspects, divider)

	written := 0
	for _, profile := range profiles.Items {
		if profile.Excluded {
			continue
		}
		if written == topProspects {
			break
		}
		written++

		fmt.Fprintf(b, "%d. %s (Score: %d)\n", written, profile.Name, profile.Score)
		fmt.Fprintf(b, "   %s\n", profile.Title)
		fmt.Fprintf(b, "   %s | %s | %s | %s\n",
			profile.Seniority, profile.RoleFunction, profile.CompanyType, profile.Geo)
		fmt.Fprintf(b, "   Reason: %s\n\n", profile.ScoreReason)
	}
}

func writeInsightsSection(b *strings.Builder, analysis *post.Analysis, profiles *audience.Profiles) {
	fmt.Fprintf(b, "%s\nSTRATEGIC INSIGHTS & RECOMMENDATIONS\n%s\n\n", divider, divider)

	valid := profiles.Len() - profiles.ExcludedCount()
	if valid > 0 {
		highValue := profiles.HighValueCount(highValueThreshold)
		alignment := pct(highValue, valid)

		b.WriteString("Post-Audience Alignment:\n")
		switch {
		case alignment >= strongAlignmentPct:
			fmt.Fprintf(b, "  STRONG alignment: %.1f%% high-value audience\n", alignment)
			b.WriteString("  This post is resonating with your ICP. Continue similar content.\n\n")
		case alignment >= moderateAlignmentPct:
			fmt.Fprintf(b, "  MODERATE alignment: %.1f%% high-value audience\n", alignment)
			b.WriteString("  Consider refining targeting or post theme.\n\n")
		default:
			fmt.Fprintf(b, "  WEAK alignment: %.1f%% high-value audience\n", alignment)
			b.WriteString("  Review content strategy and targeting approach.\n\n")
		}
	}

	if analysis.PerformanceScore < highValueThreshold {
		b.WriteString("Content Optimization Priority:\n")
		b.WriteString("  Focus on improving post structure to increase reach.\n")
		b.WriteString("  Higher reach = more potential ICP engagement.\n\n")
	}

	functions := topEntries(profiles.CountBy(func(p *audience.Profile) string { return p.RoleFunction }), 3)
	labels := make([]string, 0, len(functions))
	for _, entry := range functions {
		labels = append(labels, entry.label)
	}

	b.WriteString("Engagement Strategy:\n")
	fmt.Fprintf(b, "  Priority functions: %s\n", strings.Join(labels, ", "))
	b.WriteString("  - Engage directly with C-level and VP profiles\n")
	b.WriteString("  - Create follow-up content for these functions\n")
	b.WriteString("  - Consider targeted ads to similar profiles\n")
}

type distributionEntry struct {
	label string
	count int
}

// topEntries orders a tally by count descending, label ascending for
// determinism, truncated to limit.
func topEntries(counts map[string]int, limit int) []distributionEntry {
	entries := make([]distributionEntry, 0, len(counts))
	for label, count := range counts {
		entries = append(entries, distributionEntry{label: label, count: count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].label < entries[j].label
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

func pct(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}
