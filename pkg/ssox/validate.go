package ssox

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// IsJWTValid reports whether the access token is currently accepted by the
// realm. A false result with a nil error means the token was checked and
// rejected; a non-nil error means the check itself could not be made.
func (c *Client) IsJWTValid(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}

	if c.verifier != nil {
		if _, err := c.verifier.Verify(c.httpContext(ctx), token); err != nil {
			return false, nil
		}
		return true, nil
	}

	return c.introspect(ctx, token)
}

type introspectionResponse struct {
	Active bool `json:"active"`
}

// introspect asks the RFC 7662 endpoint whether the token is active.
func (c *Client) introspect(ctx context.Context, token string) (bool, error) {
	form := url.Values{"token": {token}}
	form.Set("token_type_hint", "access_token")

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.introspectionURL(),
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return false, newError(KindInternal, err, "ssox: failed to create introspection request: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(url.QueryEscape(c.cfg.ClientID), url.QueryEscape(c.cfg.ClientSecret))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, newError(KindUpstream, err, "ssox: introspection call failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return false, newError(KindUpstream, nil,
			"ssox: introspection failed with status %d: %s", resp.StatusCode, string(body))
	}

	var ir introspectionResponse
	if err := json.NewDecoder(resp.Body).Decode(&ir); err != nil {
		return false, newError(KindUpstream, err, "ssox: failed to decode introspection response: %v", err)
	}

	return ir.Active, nil
}
