// Package rbxapi is a client for the remote RbxServers access-code API.
// Every call is retried with exponential backoff; the per-request timeout
// bounds a single attempt, not the whole retry loop.
package rbxapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/RbxServers/rbxservers-api/pkg/logger"
	"github.com/cenkalti/backoff/v4"
	"github.com/goccy/go-json"
)

// Remote endpoints of the access-code service
const (
	endpointGenerate       = "/api/user-access/generate"
	endpointVerify         = "/api/user-access/verify"
	endpointUserInfo       = "/api/user-access/info"
	endpointVerifiedUsers  = "/api/verified-users"
	endpointBotStatus      = "/api/bot-status"
	endpointUserStats      = "/api/user-stats"
	endpointServerStats    = "/api/server-stats"
	endpointEconomyStats   = "/api/economy-stats"
	endpointLeaderboard    = "/api/leaderboard"
	endpointRecentActivity = "/api/recent-activity"
)

// Defaults applied by New when a Config field is zero
const (
	DefaultBaseURL = "https://api.rbxservers.xyz"
	DefaultTimeout = 30 * time.Second
	DefaultRetries = 3
)

// Config holds the client configuration. All fields are read-only after
// construction, so a single Client is safe for concurrent use.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	Retries int
	Debug   bool
}

// Client talks to the remote RbxServers API
type Client struct {
	cfg  Config
	http *http.Client
}

// New creates a Client, filling unset config fields with defaults
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Retries <= 0 {
		cfg.Retries = DefaultRetries
	}

	return &Client{
		cfg:  cfg,
		http: &http.Client{},
	}
}

// debugf logs a debug line when the client was built with Debug enabled
func (c *Client) debugf(format string, args ...any) {
	if c.cfg.Debug {
		logger.Debug(fmt.Sprintf(format, args...), "RbxAPI")
	}
}

// makeRequest performs one HTTP call with up to cfg.Retries attempts. Waits
// between attempts grow as 2s, 4s, 8s... and the last failure is returned
// once attempts run out.
func (c *Client) makeRequest(ctx context.Context, method, path string, payload any) ([]byte, error) {
	url := c.cfg.BaseURL + path

	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("serializando payload: %w", err)
		}
	}

	attempt := 0
	var result []byte

	operation := func() error {
		attempt++
		c.debugf("Intento %d/%d: %s %s", attempt, c.cfg.Retries, method, url)

		data, err := c.attempt(ctx, method, url, body)
		if err != nil {
			c.debugf("Error en intento %d: %v", attempt, err)
			return err
		}

		result = data
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(2*time.Second),
		backoff.WithMultiplier(2),
		backoff.WithRandomizationFactor(0),
		backoff.WithMaxElapsedTime(0),
	), uint64(c.cfg.Retries-1)), ctx)

	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}

	return result, nil
}

// attempt performs a single HTTP attempt bounded by the configured timeout
func (c *Client) attempt(ctx context.Context, method, url string, body []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	return data, nil
}

// getJSON issues a GET and decodes the response into a generic map
func (c *Client) getJSON(ctx context.Context, path string) (map[string]any, error) {
	data, err := c.makeRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decodificando respuesta: %w", err)
	}
	return out, nil
}

// GenerateResult is the remote response to an access-code generation
type GenerateResult struct {
	Success     bool   `json:"success"`
	AccessCode  string `json:"access_code"`
	GeneratedAt any    `json:"generated_at"`
	Error       string `json:"error,omitempty"`
}

// VerifyResult is the remote response to an access-code verification
type VerifyResult struct {
	Success  bool           `json:"success"`
	Error    string         `json:"error,omitempty"`
	UserID   string         `json:"user_id,omitempty"`
	CodeInfo map[string]any `json:"code_info,omitempty"`
}

// GenerateAccessCode mints a new access code for a Discord user
func (c *Client) GenerateAccessCode(ctx context.Context, userID string) (*GenerateResult, error) {
	if userID == "" {
		return nil, errors.New("userId es requerido")
	}

	data, err := c.makeRequest(ctx, http.MethodPost, endpointGenerate, map[string]string{
		"user_id": userID,
	})
	if err != nil {
		return nil, err
	}

	var result GenerateResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("decodificando respuesta: %w", err)
	}
	return &result, nil
}

// VerifyAccessCode checks whether a 12-character access code is valid
func (c *Client) VerifyAccessCode(ctx context.Context, accessCode string) (*VerifyResult, error) {
	if len(accessCode) != 12 {
		return nil, errors.New("Código de acceso debe tener 12 caracteres")
	}

	data, err := c.makeRequest(ctx, http.MethodPost, endpointVerify, map[string]string{
		"access_code": strings.TrimSpace(accessCode),
	})
	if err != nil {
		return nil, err
	}

	var result VerifyResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("decodificando respuesta: %w", err)
	}
	return &result, nil
}

// GetUserInfo exchanges a valid access code for the user's full record
func (c *Client) GetUserInfo(ctx context.Context, accessCode string) (map[string]any, error) {
	if accessCode == "" {
		return nil, errors.New("Código de acceso es requerido")
	}

	return c.getJSON(ctx, endpointUserInfo+"/"+strings.TrimSpace(accessCode))
}

// GetVerifiedUsers returns the remote verified-users listing
func (c *Client) GetVerifiedUsers(ctx context.Context) (map[string]any, error) {
	return c.getJSON(ctx, endpointVerifiedUsers)
}

// GetBotStatus returns the remote bot status
func (c *Client) GetBotStatus(ctx context.Context) (map[string]any, error) {
	return c.getJSON(ctx, endpointBotStatus)
}

// GetUserStats returns the remote user statistics
func (c *Client) GetUserStats(ctx context.Context) (map[string]any, error) {
	return c.getJSON(ctx, endpointUserStats)
}

// GetServerStats returns the remote server statistics
func (c *Client) GetServerStats(ctx context.Context) (map[string]any, error) {
	return c.getJSON(ctx, endpointServerStats)
}

// GetEconomyStats returns the remote economy statistics
func (c *Client) GetEconomyStats(ctx context.Context) (map[string]any, error) {
	return c.getJSON(ctx, endpointEconomyStats)
}

// GetLeaderboard returns the remote leaderboard limited to the given size
func (c *Client) GetLeaderboard(ctx context.Context, limit int) (map[string]any, error) {
	if limit <= 0 {
		limit = 10
	}
	return c.getJSON(ctx, fmt.Sprintf("%s?limit=%d", endpointLeaderboard, limit))
}

// GetRecentActivity returns the remote recent-activity feed
func (c *Client) GetRecentActivity(ctx context.Context) (map[string]any, error) {
	return c.getJSON(ctx, endpointRecentActivity)
}
