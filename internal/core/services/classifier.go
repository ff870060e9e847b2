package services

import (
	"context"
	"log/slog"

	"github.com/moodtune-labs/moodtune/internal/core/domain"
	"github.com/moodtune-labs/moodtune/internal/core/ports"
)

// Classifier resolves text to a ClassificationResult. It prefers the remote
// model and degrades to the deterministic keyword heuristic, so Classify
// never fails.
type Classifier struct {
	model  ports.EmotionModel
	logger *slog.Logger
}

// NewClassifier constructs a Classifier. A nil model is allowed and routes
// every request to the keyword fallback.
func NewClassifier(model ports.EmotionModel, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{model: model, logger: logger}
}

// Classify returns a classification for non-empty text. Remote failures are
// absorbed here and never reach the caller.
func (c *Classifier) Classify(ctx context.Context, text string, language string) domain.ClassificationResult {
	if c.model == nil {
		return FallbackClassification(text)
	}
	result, err := c.model.Classify(ctx, text, language)
	if err != nil {
		c.logger.Warn("remote classification failed, using keyword fallback", "error", err)
		return FallbackClassification(text)
	}
	return result
}

// MotivationalQuote returns a supportive quote for an emotion, falling back
// to the locally curated quote when the model is unavailable.
func (c *Classifier) MotivationalQuote(ctx context.Context, emotion domain.Emotion) string {
	if c.model == nil {
		return FallbackQuote(emotion)
	}
	quote, err := c.model.MotivationalQuote(ctx, emotion)
	if err != nil {
		c.logger.Warn("remote quote generation failed, using fallback quote", "emotion", emotion, "error", err)
		return FallbackQuote(emotion)
	}
	return quote
}
