// Package openai provides an adapter for the OpenAI chat completions API.
// It implements emotion classification by requesting a structured JSON
// response and mapping it onto the domain's closed label set.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/moodtune-labs/moodtune/internal/core/domain"
	"github.com/moodtune-labs/moodtune/internal/core/ports"
	"github.com/moodtune-labs/moodtune/internal/resilience"
)

const (
	defaultBaseURL = "https://api.openai.com"
	defaultModel   = "gpt-4o"
	defaultTimeout = 5 * time.Second
)

const classifySystemPrompt = `You are an expert emotion analysis AI. Analyze the emotional content of text and provide detailed insights.

Respond with JSON in this exact format:
{
  "emotion": "one of: HAPPY, SAD, ANGRY, ANXIOUS, EXCITED, CALM",
  "confidence": "number between 0 and 1",
  "intensity": "Low, Medium, or High",
  "quote": "a relevant motivational or supportive quote",
  "musicRecommendation": "suggest a specific song or music genre that would help with this emotion"
}

Consider context, word choice, and emotional indicators to determine the primary emotion.`

const quoteSystemPrompt = "You are a supportive therapist. Provide a single, meaningful motivational quote that would help someone feeling this emotion. Respond with just the quote in JSON format."

type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	breaker    *resilience.Breaker
}

// compile-time interface assertion
var _ ports.EmotionModel = (*Client)(nil)

// NewClient constructs a new OpenAI client. Empty baseURL, model, or
// timeout fall back to production defaults.
func NewClient(baseURL, apiKey, model string, timeout time.Duration) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if model == "" {
		model = defaultModel
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
		breaker:    resilience.NewBreaker("openai"),
	}
}

// ValidKey reports whether key looks like a usable API key. Malformed keys
// route straight to the fallback classifier instead of burning a request.
func ValidKey(key string) bool {
	return strings.HasPrefix(key, "sk-") && len(key) >= 40
}

// Classify submits text to the model and parses the structured response.
func (c *Client) Classify(ctx context.Context, text string, language string) (domain.ClassificationResult, error) {
	userMessage := fmt.Sprintf("Analyze the emotion in this text: \"%s\"", text)
	content, err := c.complete(ctx, classifySystemPrompt, userMessage, 0.7)
	if err != nil {
		return domain.ClassificationResult{}, err
	}

	var payload classificationPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return domain.ClassificationResult{}, fmt.Errorf("openai: decode classification: %w", err)
	}
	return payload.toDomain(), nil
}

// MotivationalQuote asks the model for a single supportive quote.
func (c *Client) MotivationalQuote(ctx context.Context, emotion domain.Emotion) (string, error) {
	userMessage := fmt.Sprintf("Provide a motivational quote for someone feeling %s", emotion)
	content, err := c.complete(ctx, quoteSystemPrompt, userMessage, 0.8)
	if err != nil {
		return "", err
	}

	var payload struct {
		Quote string `json:"quote"`
	}
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return "", fmt.Errorf("openai: decode quote: %w", err)
	}
	if strings.TrimSpace(payload.Quote) == "" {
		return "You are stronger than you think.", nil
	}
	return payload.Quote, nil
}

func (c *Client) complete(ctx context.Context, system, user string, temperature float64) (string, error) {
	payload := chatRequest{
		Model:          c.model,
		Temperature:    temperature,
		ResponseFormat: responseFormat{Type: "json_object"},
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("openai: marshal request: %w", err)
	}

	var content string
	err = c.breaker.Do(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("openai: build request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("openai: request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return fmt.Errorf("openai: unexpected status %d", resp.StatusCode)
		}

		var parsed chatResponse
		if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
			return fmt.Errorf("openai: decode response: %w", err)
		}
		if parsed.Error != nil {
			return fmt.Errorf("openai: %s", parsed.Error.Message)
		}
		if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
			return fmt.Errorf("openai: empty response")
		}

		content = parsed.Choices[0].Message.Content
		return nil
	})
	return content, err
}
