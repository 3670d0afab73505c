package post

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/audience-scout/internal/dictionary"
)

const samplePost = "Exciting news! 🌍 We just published our climate risk report.\n\n" +
	"What does carbon resilience mean for YOUR business? Check out the findings " +
	"at https://example.com/report and share your thoughts.\n\n" +
	"#climate #sustainability #fintech"

func sampleLists(t *testing.T) (cta, engagement []string) {
	t.Helper()
	store, err := dictionary.New(nil)
	require.NoError(t, err)
	return store.CTAPhrases(), store.EngagementWords()
}

func TestExtractFeatures(t *testing.T) {
	cta, engagement := sampleLists(t)

	f := ExtractFeatures(samplePost, cta, engagement)

	assert.Equal(t, 31, f.WordCount)
	assert.Equal(t, LengthShort, f.LengthCategory)
	assert.True(t, f.HasQuestion)
	assert.Equal(t, 1, f.QuestionCount)
	assert.Equal(t, 3, f.HashtagCount)
	assert.Equal(t, 1, f.EmojiCount)
	assert.True(t, f.HasLink)
	assert.Equal(t, 1, f.LinkCount)
	assert.True(t, f.HasLineBreaks)
	assert.Equal(t, 3, f.ParagraphCount)
	assert.True(t, f.HasCTA)
	assert.Equal(t, 0, f.MentionsCount)
	// "YOUR"; short words and hashtags do not count.
	assert.Equal(t, 1, f.AllCapsWords)
	assert.Equal(t, 1, f.ExclamationCount)
	// "?", "what", "share", "thoughts".
	assert.Equal(t, 4, f.EngagementKeywordCount)
}

func TestExtractFeaturesEmptyPost(t *testing.T) {
	cta, engagement := sampleLists(t)

	f := ExtractFeatures("", cta, engagement)

	assert.Equal(t, Features{LengthCategory: LengthShort}, f)
}

func TestExtractFeaturesSingleParagraph(t *testing.T) {
	f := ExtractFeatures("one line\nanother line", nil, nil)

	assert.True(t, f.HasLineBreaks)
	assert.Equal(t, 1, f.ParagraphCount, "a lone newline does not split paragraphs")
}

func TestExtractFeaturesMentions(t *testing.T) {
	f := ExtractFeatures("Huge thanks to @klarna and @northvolt!", nil, nil)

	assert.Equal(t, 2, f.MentionsCount)
}

func TestExtractFeaturesWWWLink(t *testing.T) {
	f := ExtractFeatures("Details at www.example.org/report today", nil, nil)

	assert.True(t, f.HasLink)
	assert.Equal(t, 1, f.LinkCount)
}

func TestLengthCategoryBoundaries(t *testing.T) {
	tests := []struct {
		words int
		want  string
	}{
		{0, LengthShort},
		{49, LengthShort},
		{50, LengthMedium},
		{149, LengthMedium},
		{150, LengthLong},
		{299, LengthLong},
		{300, LengthVeryLong},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, lengthCategory(tt.words), "words=%d", tt.words)
	}
}
