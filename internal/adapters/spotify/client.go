// Package spotify provides the music catalog adapter: client-credentials
// authentication and track search against the Spotify Web API.
package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/moodtune-labs/moodtune/internal/core/domain"
	"github.com/moodtune-labs/moodtune/internal/core/ports"
	"github.com/moodtune-labs/moodtune/internal/resilience"
)

const defaultBaseURL = "https://api.spotify.com/v1"

// Config carries everything the catalog client needs. Zero values fall back
// to production defaults.
type Config struct {
	ClientID     string
	ClientSecret string
	BaseURL      string
	AuthURL      string
	Timeout      time.Duration
	MaxRetries   int
	BaseBackoff  time.Duration
}

// Client is the HTTP client for the catalog adapter.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	auth        *tokenCache
	breaker     *resilience.Breaker
	maxRetries  int
	baseBackoff time.Duration
	logger      *slog.Logger
}

// compile-time interface assertion
var _ ports.TrackCatalog = (*Client)(nil)

// NewClient constructs a new catalog client.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient:  &http.Client{Timeout: timeout},
		baseURL:     baseURL,
		auth:        newTokenCache(cfg.ClientID, cfg.ClientSecret, cfg.AuthURL),
		breaker:     resilience.NewBreaker("spotify"),
		maxRetries:  cfg.MaxRetries,
		baseBackoff: cfg.BaseBackoff,
		logger:      logger,
	}
}

// SearchTracks runs one text search against the catalog and maps the raw
// items to domain recommendations.
func (c *Client) SearchTracks(ctx context.Context, query string, market string, limit int) ([]domain.TrackRecommendation, error) {
	var tracks []domain.TrackRecommendation
	err := c.breaker.Do(func() error {
		token, err := c.auth.Token(ctx)
		if err != nil {
			return err
		}

		searchURL, err := url.Parse(c.baseURL + "/search")
		if err != nil {
			return fmt.Errorf("spotify adapter: invalid search url: %w", err)
		}
		params := searchURL.Query()
		params.Set("q", query)
		params.Set("type", "track")
		params.Set("limit", strconv.Itoa(limit))
		params.Set("market", market)
		searchURL.RawQuery = params.Encode()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL.String(), nil)
		if err != nil {
			return fmt.Errorf("spotify adapter: failed to create search request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := c.doRequestWithRetry(req)
		if err != nil {
			return fmt.Errorf("spotify adapter: search request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("spotify adapter: search status %d", resp.StatusCode)
		}

		var body searchResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return fmt.Errorf("spotify adapter: search decode error: %w", err)
		}

		tracks = make([]domain.TrackRecommendation, 0, len(body.Tracks.Items))
		for _, item := range body.Tracks.Items {
			tracks = append(tracks, item.toDomain())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tracks, nil
}
