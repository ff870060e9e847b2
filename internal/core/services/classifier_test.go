package services

import (
	"context"
	"errors"
	"testing"

	"github.com/moodtune-labs/moodtune/internal/core/domain"
)

// --- Mocks ---

type mockModel struct {
	result domain.ClassificationResult
	quote  string
	err    error

	classifyCalls int
	lastText      string
	lastLanguage  string
}

func (m *mockModel) Classify(ctx context.Context, text, language string) (domain.ClassificationResult, error) {
	m.classifyCalls++
	m.lastText = text
	m.lastLanguage = language
	if m.err != nil {
		return domain.ClassificationResult{}, m.err
	}
	return m.result, nil
}

func (m *mockModel) MotivationalQuote(ctx context.Context, emotion domain.Emotion) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.quote, nil
}

func TestClassifier_Classify(t *testing.T) {
	remote := domain.ClassificationResult{
		Emotion:         domain.EmotionExcited,
		Confidence:      0.93,
		Intensity:       domain.IntensityHigh,
		Quote:           "Go for it.",
		StyleSuggestion: "Drum and bass",
	}

	tests := []struct {
		name  string
		model *mockModel
		text  string
		want  domain.ClassificationResult
	}{
		{
			name:  "remote result wins when model succeeds",
			model: &mockModel{result: remote},
			text:  "I can't wait for the concert",
			want:  remote,
		},
		{
			name:  "remote failure falls back to keywords",
			model: &mockModel{err: errors.New("model unavailable")},
			text:  "I feel happy",
			want:  FallbackClassification("I feel happy"),
		},
		{
			name:  "nil model falls back to keywords",
			model: nil,
			text:  "so worried right now",
			want:  FallbackClassification("so worried right now"),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var c *Classifier
			if tc.model == nil {
				c = NewClassifier(nil, testLogger())
			} else {
				c = NewClassifier(tc.model, testLogger())
			}
			got := c.Classify(context.Background(), tc.text, "en")
			if got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestClassifier_ClassifyPassesLanguage(t *testing.T) {
	model := &mockModel{result: domain.ClassificationResult{Emotion: domain.EmotionCalm}}
	c := NewClassifier(model, testLogger())

	c.Classify(context.Background(), "alles gut", "de")

	if model.classifyCalls != 1 {
		t.Fatalf("expected 1 call, got %d", model.classifyCalls)
	}
	if model.lastText != "alles gut" || model.lastLanguage != "de" {
		t.Fatalf("model saw text=%q language=%q", model.lastText, model.lastLanguage)
	}
}

func TestClassifier_MotivationalQuote(t *testing.T) {
	t.Run("remote quote wins", func(t *testing.T) {
		c := NewClassifier(&mockModel{quote: "Keep going."}, testLogger())
		if got := c.MotivationalQuote(context.Background(), domain.EmotionSad); got != "Keep going." {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("remote failure falls back to curated quote", func(t *testing.T) {
		c := NewClassifier(&mockModel{err: errors.New("boom")}, testLogger())
		if got := c.MotivationalQuote(context.Background(), domain.EmotionSad); got != FallbackQuote(domain.EmotionSad) {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("nil model falls back to curated quote", func(t *testing.T) {
		c := NewClassifier(nil, testLogger())
		if got := c.MotivationalQuote(context.Background(), domain.EmotionHappy); got != FallbackQuote(domain.EmotionHappy) {
			t.Fatalf("got %q", got)
		}
	})
}
