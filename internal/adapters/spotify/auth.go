package spotify

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const defaultAuthURL = "https://accounts.spotify.com"

// tokenExpirySlack refreshes the cached token one minute before the
// provider's stated expiry.
const tokenExpirySlack = time.Minute

// tokenCache holds the process-wide client-credentials token. Token and
// expiry are written together under one mutex, so concurrent callers either
// reuse a valid token or wait for the single in-flight exchange.
type tokenCache struct {
	conf clientcredentials.Config
	now  func() time.Time

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func newTokenCache(clientID, clientSecret, authURL string) *tokenCache {
	authURL = strings.TrimRight(authURL, "/")
	if authURL == "" {
		authURL = defaultAuthURL
	}
	return &tokenCache{
		conf: clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     authURL + "/api/token",
			AuthStyle:    oauth2.AuthStyleInHeader,
		},
		now: time.Now,
	}
}

// Token returns the cached bearer token, exchanging client credentials for
// a fresh one when the cache is empty or inside the expiry slack.
func (t *tokenCache) Token(ctx context.Context) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.token != "" && t.now().Before(t.expiresAt) {
		return t.token, nil
	}

	tok, err := t.conf.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("spotify adapter: token exchange failed: %w", err)
	}

	expiry := tok.Expiry
	if expiry.IsZero() {
		expiry = t.now().Add(time.Hour)
	}
	t.token = tok.AccessToken
	t.expiresAt = expiry.Add(-tokenExpirySlack)
	return t.token, nil
}
