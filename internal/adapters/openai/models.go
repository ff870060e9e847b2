package openai

import "github.com/moodtune-labs/moodtune/internal/core/domain"

const (
	defaultConfidence = 0.5
	defaultQuote      = "Every moment is a fresh beginning."
	defaultStyle      = "Peaceful ambient music"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	ResponseFormat responseFormat `json:"response_format"`
	Temperature    float64        `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// classificationPayload is the JSON shape the system prompt asks the model
// to produce.
type classificationPayload struct {
	Emotion             string  `json:"emotion"`
	Confidence          float64 `json:"confidence"`
	Intensity           string  `json:"intensity"`
	Quote               string  `json:"quote"`
	MusicRecommendation string  `json:"musicRecommendation"`
}

// toDomain applies field-level defaults for anything the model left out,
// then clamps confidence into [0,1].
func (p classificationPayload) toDomain() domain.ClassificationResult {
	confidence := p.Confidence
	if confidence == 0 {
		confidence = defaultConfidence
	}
	quote := p.Quote
	if quote == "" {
		quote = defaultQuote
	}
	style := p.MusicRecommendation
	if style == "" {
		style = defaultStyle
	}
	return domain.ClassificationResult{
		Emotion:         domain.ParseEmotion(p.Emotion),
		Confidence:      domain.ClampConfidence(confidence),
		Intensity:       domain.ParseIntensity(p.Intensity),
		Quote:           quote,
		StyleSuggestion: style,
	}
}
