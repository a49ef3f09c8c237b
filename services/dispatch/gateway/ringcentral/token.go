package ringcentral

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/trucklink/fleetcall/internal/pkg/apperrors"
	"github.com/trucklink/fleetcall/internal/pkg/constants"
	"github.com/trucklink/fleetcall/internal/pkg/database"
	"github.com/trucklink/fleetcall/internal/pkg/logger"
	"github.com/trucklink/fleetcall/internal/pkg/models"
)

// tokenPayload is the persisted token state. Rotated refresh tokens
// must survive restarts, so the whole payload lives in Redis.
type tokenPayload struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	TokenType    string `json:"token_type"`
}

// expirySlack refreshes tokens slightly early so an in-flight request
// never races expiry.
const expirySlack = 60 * time.Second

// TokenStore manages the provider OAuth access token, refreshing it
// on demand and persisting rotations in Redis.
type TokenStore struct {
	cfg        models.TelephonyConfig
	redis      *database.RedisClient
	httpClient *http.Client
}

// NewTokenStore creates a token store backed by the given Redis client
func NewTokenStore(cfg models.TelephonyConfig, redisClient *database.RedisClient) *TokenStore {
	return &TokenStore{
		cfg:        cfg,
		redis:      redisClient,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// AccessToken returns a valid access token, refreshing if the cached
// one is missing or about to expire.
func (s *TokenStore) AccessToken(ctx context.Context) (string, error) {
	payload, err := s.load(ctx)
	if err == nil && payload.AccessToken != "" && time.Until(payload.ExpiresAt) > expirySlack {
		return payload.AccessToken, nil
	}

	return s.Refresh(ctx)
}

// Refresh exchanges the stored refresh token for a new access token
// and persists the rotated pair.
func (s *TokenStore) Refresh(ctx context.Context) (string, error) {
	refreshToken := s.cfg.RefreshToken
	if payload, err := s.load(ctx); err == nil && payload.RefreshToken != "" {
		refreshToken = payload.RefreshToken
	}
	if refreshToken == "" {
		return "", apperrors.ConfigurationError("telephony refresh token is not configured")
	}

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)

	endpoint := s.cfg.ServerURL + "/restapi/oauth/token"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	req.SetBasicAuth(s.cfg.ClientID, s.cfg.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", apperrors.NetworkError("RingCentral", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", apperrors.ProviderAPIError("RingCentral", resp.StatusCode, string(body))
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return "", fmt.Errorf("failed to parse token response: %w", err)
	}

	payload := tokenPayload{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(token.ExpiresIn) * time.Second),
	}
	if payload.RefreshToken == "" {
		payload.RefreshToken = refreshToken
	}
	if err := s.store(ctx, payload); err != nil {
		// A failed cache write is not fatal; the next call refreshes again.
		logger.Warn("Failed to persist telephony token", logger.Err(err))
	}

	return payload.AccessToken, nil
}

func (s *TokenStore) load(ctx context.Context) (tokenPayload, error) {
	var payload tokenPayload
	if s.redis == nil {
		return payload, fmt.Errorf("no token cache configured")
	}

	raw, err := s.redis.Get(ctx, constants.KeyTelephonyToken)
	if err != nil {
		return payload, err
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return payload, fmt.Errorf("failed to parse cached token: %w", err)
	}

	return payload, nil
}

func (s *TokenStore) store(ctx context.Context, payload tokenPayload) error {
	if s.redis == nil {
		return nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal token payload: %w", err)
	}

	// Refresh tokens outlive access tokens; keep the payload around for
	// a week so restarts can still rotate.
	return s.redis.Set(ctx, constants.KeyTelephonyToken, raw, 7*24*time.Hour)
}
