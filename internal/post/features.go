// Package post extracts surface features from a marketing post and
// scores its predicted engagement.
package post

import (
	"regexp"
	"strings"
	"unicode"
)

// Length categories derived from the word count.
const (
	LengthShort    = "short"
	LengthMedium   = "medium"
	LengthLong     = "long"
	LengthVeryLong = "very_long"
)

// Features are the structural and lexical properties of a post text.
// All fields derive purely from the string; an empty post yields the
// zero value with LengthCategory = "short".
type Features struct {
	WordCount              int    `json:"word_count"`
	CharCount              int    `json:"char_count"`
	HasQuestion            bool   `json:"has_question"`
	QuestionCount          int    `json:"question_count"`
	HashtagCount           int    `json:"hashtag_count"`
	EmojiCount             int    `json:"emoji_count"`
	HasLink                bool   `json:"has_external_link"`
	LinkCount              int    `json:"link_count"`
	HasLineBreaks          bool   `json:"has_line_breaks"`
	ParagraphCount         int    `json:"paragraph_count"`
	HasCTA                 bool   `json:"has_call_to_action"`
	MentionsCount          int    `json:"mentions_count"`
	AllCapsWords           int    `json:"all_caps_words"`
	ExclamationCount       int    `json:"exclamation_count"`
	EngagementKeywordCount int    `json:"engagement_keyword_count"`
	LengthCategory         string `json:"post_length_category"`
}

var (
	hashtagRe   = regexp.MustCompile(`#\w+`)
	mentionRe   = regexp.MustCompile(`@\w+`)
	linkRe      = regexp.MustCompile(`(?i)\bhttps?://[^\s]+|\bwww\.[a-z0-9-]+\.[a-z]{2,}\S*`)
	paragraphRe = regexp.MustCompile(`\n[ \t\r]*\n+`)
)

// emojiRanges is the union of the recognized emoji code-point ranges.
var emojiRanges = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x24C2, Hi: 0xFFFF, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x10000, Hi: 0x1F251, Stride: 1},
		{Lo: 0x1F300, Hi: 0x1F64F, Stride: 1},
		{Lo: 0x1F680, Hi: 0x1F6FF, Stride: 1},
	},
}

// ExtractFeatures computes the feature profile of a post text.
// ctaPhrases and engagementWords come from the dictionary store and are
// matched as case-insensitive substrings.
func ExtractFeatures(text string, ctaPhrases, engagementWords []string) Features {
	lowered := strings.ToLower(text)

	f := Features{
		WordCount:        len(strings.Fields(text)),
		CharCount:        len([]rune(text)),
		QuestionCount:    strings.Count(text, "?"),
		HashtagCount:     len(hashtagRe.FindAllString(text, -1)),
		ExclamationCount: strings.Count(text, "!"),
		HasLineBreaks:    strings.Contains(text, "\n"),
	}
	f.HasQuestion = f.QuestionCount > 0

	f.EmojiCount = countEmoji(text)

	links := linkRe.FindAllString(text, -1)
	f.LinkCount = len(links)
	f.HasLink = f.LinkCount > 0

	f.ParagraphCount = countParagraphs(text)
	f.MentionsCount = len(mentionRe.FindAllString(text, -1))
	f.AllCapsWords = countAllCapsWords(text)

	for _, phrase := range ctaPhrases {
		if phrase != "" && strings.Contains(lowered, strings.ToLower(phrase)) {
			f.HasCTA = true
			break
		}
	}

	for _, keyword := range engagementWords {
		if keyword != "" && strings.Contains(lowered, strings.ToLower(keyword)) {
			f.EngagementKeywordCount++
		}
	}

	f.LengthCategory = lengthCategory(f.WordCount)

	return f
}

func countEmoji(text string) int {
	count := 0
	for _, r := range text {
		if unicode.Is(emojiRanges, r) {
			count++
		}
	}
	return count
}

// countParagraphs counts blocks separated by one or more blank lines.
func countParagraphs(text string) int {
	count := 0
	for _, block := range paragraphRe.Split(text, -1) {
		if strings.TrimSpace(block) != "" {
			count++
		}
	}
	return count
}

func countAllCapsWords(text string) int {
	count := 0
	for _, word := range strings.Fields(text) {
		if strings.HasPrefix(word, "#") || len([]rune(word)) <= 2 {
			continue
		}
		if word == strings.ToUpper(word) && word != strings.ToLower(word) {
			count++
		}
	}
	return count
}

func lengthCategory(wordCount int) string {
	switch {
	case wordCount < 50:
		return LengthShort
	case wordCount < 150:
		return LengthMedium
	case wordCount < 300:
		return LengthLong
	default:
		return LengthVeryLong
	}
}
