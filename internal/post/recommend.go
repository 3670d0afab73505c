package post

// Recommendations derives improvement bullets from the extracted
// features. An empty slice means the post is already well optimized.
func Recommendations(f Features) []string {
	recommendations := make([]string, 0)

	if f.WordCount < optimalWordsMin {
		recommendations = append(recommendations, "Expand content to 100-200 words for optimal engagement")
	} else if f.WordCount > 300 {
		recommendations = append(recommendations, "Consider shortening to under 300 words (attention span)")
	}

	if f.HashtagCount == 0 {
		recommendations = append(recommendations, "Add 3-5 relevant hashtags to increase discoverability")
	} else if f.HashtagCount > 7 {
		recommendations = append(recommendations, "Reduce hashtags to 3-5 for better performance")
	}

	if !f.HasQuestion {
		recommendations = append(recommendations, "Add a question to boost engagement (e.g., 'What's your experience?')")
	}

	if !f.HasCTA {
		recommendations = append(recommendations, "Include a clear call-to-action (e.g., 'Learn more', 'Comment below')")
	}

	if f.ParagraphCount < optimalParagraphsMin {
		recommendations = append(recommendations, "Break text into 3-5 short paragraphs for readability")
	}

	if f.EmojiCount == 0 {
		recommendations = append(recommendations, "Add 1-2 relevant emojis to increase visual appeal")
	} else if f.EmojiCount > optimalEmojiMax {
		recommendations = append(recommendations, "Reduce emojis to 1-3 for professional tone")
	}

	return recommendations
}
