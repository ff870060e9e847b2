package services

import (
	"strings"

	"github.com/moodtune-labs/moodtune/internal/core/domain"
)

// fallbackResults holds the fixed tuple returned per label when the keyword
// classifier matches. The CALM entry doubles as the no-match default.
var fallbackResults = map[domain.Emotion]domain.ClassificationResult{
	domain.EmotionHappy: {
		Emotion:         domain.EmotionHappy,
		Confidence:      0.85,
		Intensity:       domain.IntensityHigh,
		Quote:           "Happiness is not something ready made. It comes from your own actions.",
		StyleSuggestion: "Upbeat pop music or your favorite feel-good songs",
	},
	domain.EmotionSad: {
		Emotion:         domain.EmotionSad,
		Confidence:      0.8,
		Intensity:       domain.IntensityMedium,
		Quote:           "It's okay to not be okay. Tomorrow is a new day with new possibilities.",
		StyleSuggestion: "Gentle acoustic music or calming classical pieces",
	},
	domain.EmotionAngry: {
		Emotion:         domain.EmotionAngry,
		Confidence:      0.75,
		Intensity:       domain.IntensityHigh,
		Quote:           "Anger is an acid that can do more harm to the vessel than to anything it's poured on.",
		StyleSuggestion: "Energetic rock music or intense workout songs",
	},
	domain.EmotionAnxious: {
		Emotion:         domain.EmotionAnxious,
		Confidence:      0.8,
		Intensity:       domain.IntensityMedium,
		Quote:           "Anxiety is the dizziness of freedom. Take one step at a time.",
		StyleSuggestion: "Calming nature sounds or meditation music",
	},
	domain.EmotionExcited: {
		Emotion:         domain.EmotionExcited,
		Confidence:      0.9,
		Intensity:       domain.IntensityHigh,
		Quote:           "The way to get started is to quit talking and begin doing.",
		StyleSuggestion: "Energetic dance music or motivational songs",
	},
	domain.EmotionCalm: {
		Emotion:         domain.EmotionCalm,
		Confidence:      0.7,
		Intensity:       domain.IntensityMedium,
		Quote:           "Every moment is a fresh beginning.",
		StyleSuggestion: "Peaceful ambient music",
	},
}

// fallbackKeywords pairs each label with its emotion-indicative substrings,
// English and German. Order matters: the first matching label wins.
var fallbackKeywords = []struct {
	emotion domain.Emotion
	words   []string
}{
	{domain.EmotionHappy, []string{"happy", "joy", "excited", "glücklich", "freude", "aufgeregt"}},
	{domain.EmotionSad, []string{"sad", "depressed", "down", "traurig", "deprimiert"}},
	{domain.EmotionAngry, []string{"angry", "mad", "frustrated", "wütend", "sauer", "frustriert"}},
	{domain.EmotionAnxious, []string{"anxious", "worried", "nervous", "ängstlich", "besorgt", "nervös"}},
	{domain.EmotionExcited, []string{"excited", "thrilled", "energetic", "aufgeregt", "begeistert"}},
}

// FallbackClassification is the deterministic keyword classifier used when
// the remote model is unavailable. It is a pure function of the lowercased
// input text, which keeps it reproducible in tests.
func FallbackClassification(text string) domain.ClassificationResult {
	lower := strings.ToLower(text)
	for _, entry := range fallbackKeywords {
		for _, word := range entry.words {
			if strings.Contains(lower, word) {
				return fallbackResults[entry.emotion]
			}
		}
	}
	return fallbackResults[domain.EmotionCalm]
}

// FallbackQuote is the locally curated supportive quote for an emotion.
func FallbackQuote(emotion domain.Emotion) string {
	if result, ok := fallbackResults[emotion]; ok {
		return result.Quote
	}
	return fallbackResults[domain.EmotionCalm].Quote
}
