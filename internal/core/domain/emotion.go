package domain

import "strings"

// Emotion is the closed set of classification outcomes.
type Emotion string

const (
	EmotionHappy   Emotion = "HAPPY"
	EmotionSad     Emotion = "SAD"
	EmotionAngry   Emotion = "ANGRY"
	EmotionAnxious Emotion = "ANXIOUS"
	EmotionExcited Emotion = "EXCITED"
	EmotionCalm    Emotion = "CALM"
)

// Emotions lists every label in canonical order.
var Emotions = []Emotion{
	EmotionHappy,
	EmotionSad,
	EmotionAngry,
	EmotionAnxious,
	EmotionExcited,
	EmotionCalm,
}

// ParseEmotion maps a raw label onto the closed set. Unknown or empty input
// resolves to CALM so a sloppy upstream response can never leak an
// out-of-set label into a record.
func ParseEmotion(raw string) Emotion {
	switch Emotion(strings.ToUpper(strings.TrimSpace(raw))) {
	case EmotionHappy:
		return EmotionHappy
	case EmotionSad:
		return EmotionSad
	case EmotionAngry:
		return EmotionAngry
	case EmotionAnxious:
		return EmotionAnxious
	case EmotionExcited:
		return EmotionExcited
	default:
		return EmotionCalm
	}
}

// Intensity is the coarse severity bucket attached to a classification.
type Intensity string

const (
	IntensityLow    Intensity = "Low"
	IntensityMedium Intensity = "Medium"
	IntensityHigh   Intensity = "High"
)

// ParseIntensity maps a raw tier onto the known buckets, defaulting to Medium.
func ParseIntensity(raw string) Intensity {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "low":
		return IntensityLow
	case "high":
		return IntensityHigh
	default:
		return IntensityMedium
	}
}

// ClassificationResult is the immutable outcome of classifying one piece of
// text. Confidence is always within [0,1].
type ClassificationResult struct {
	Emotion         Emotion   `json:"emotion"`
	Confidence      float64   `json:"confidence"`
	Intensity       Intensity `json:"intensity"`
	Quote           string    `json:"quote"`
	StyleSuggestion string    `json:"musicRecommendation"`
}

// ClampConfidence forces a confidence score into [0,1]. Out-of-range values
// are clamped rather than rejected.
func ClampConfidence(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
