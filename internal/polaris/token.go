package polaris

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	clierrors "github.com/salmonumbrella/polaris-cli/internal/errors"
)

// Token is the OAuth token response from the organization's token endpoint.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
	ExpiresIn   int    `json:"expires_in,omitempty"`
}

func (c *Client) tokenEndpoint() string {
	if c.tokenURL != "" {
		return c.tokenURL
	}
	return fmt.Sprintf("https://id.%s%s/auth/realms/%s/protocol/openid-connect/token",
		c.envPrefix, apiDomain, c.org)
}

// RenewToken obtains a fresh access token with the client-credentials
// grant. It runs automatically before the first request and again after a
// 401 response; callers rarely need it directly.
func (c *Client) RenewToken(ctx context.Context) error {
	form := url.Values{
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
		"grant_type":    {"client_credentials"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenEndpoint(),
		strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &clierrors.AuthError{Reason: "token request failed", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return &clierrors.AuthError{
			Reason:     fmt.Sprintf("token endpoint returned status %d", resp.StatusCode),
			Suggestion: "Check the organization name, client ID and secret (pol auth status)",
		}
	}

	var token Token
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return &clierrors.AuthError{Reason: "invalid token response", Err: err}
	}
	c.token = &token
	return nil
}
