package ports

import (
	"context"

	"github.com/moodtune-labs/moodtune/internal/core/domain"
)

// EmotionModel is the remote structured-output classification endpoint.
// Implementations return transport or decode errors as-is; absorbing them
// into a fallback result is the classifier service's job.
type EmotionModel interface {
	Classify(ctx context.Context, text string, language string) (domain.ClassificationResult, error)
	MotivationalQuote(ctx context.Context, emotion domain.Emotion) (string, error)
}
