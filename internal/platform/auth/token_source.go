// Package auth covers the two authentication concerns of the onboarding
// API: validating inbound bearer tokens at the route level, and acquiring
// the service token attached to upstream Station calls.
package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// expirySkew is subtracted from the token lifetime so a token is never
// presented moments before it lapses.
const expirySkew = 60 * time.Second

// ClientCredentials identifies this service to the token endpoint.
type ClientCredentials struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
	Audience     string
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// CachedTokenSource fetches a bearer token via the OAuth client
// credentials grant and reuses it until shortly before expiry.
type CachedTokenSource struct {
	creds  ClientCredentials
	http   *resty.Client
	logger zerolog.Logger

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

// NewCachedTokenSource builds a token source for the given credentials.
func NewCachedTokenSource(creds ClientCredentials, logger zerolog.Logger) *CachedTokenSource {
	return &CachedTokenSource{
		creds: creds,
		http: resty.New().
			SetTimeout(10 * time.Second).
			SetHeader("Content-Type", "application/json"),
		logger: logger,
	}
}

// Token returns a valid bearer token, refreshing it when the cached one
// has expired. Concurrent callers share a single refresh.
func (s *CachedTokenSource) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" && time.Now().Before(s.expiresAt) {
		return s.token, nil
	}

	var tr tokenResponse
	resp, err := s.http.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"grant_type":    "client_credentials",
			"client_id":     s.creds.ClientID,
			"client_secret": s.creds.ClientSecret,
			"audience":      s.creds.Audience,
		}).
		SetResult(&tr).
		Post(s.creds.TokenURL)
	if err != nil {
		return "", fmt.Errorf("auth: token request: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("auth: token endpoint returned %d", resp.StatusCode())
	}
	if tr.AccessToken == "" {
		return "", fmt.Errorf("auth: token endpoint returned empty access_token")
	}

	s.token = tr.AccessToken
	lifetime := time.Duration(tr.ExpiresIn) * time.Second
	if lifetime > expirySkew {
		lifetime -= expirySkew
	}
	s.expiresAt = time.Now().Add(lifetime)
	s.logger.Debug().Time("expires_at", s.expiresAt).Msg("refreshed service token")

	return s.token, nil
}

// StaticTokenSource returns a fixed token; used in development mode and
// in tests.
type StaticTokenSource string

// Token implements station.TokenSource.
func (s StaticTokenSource) Token(ctx context.Context) (string, error) {
	return string(s), nil
}
