package ssosdk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/sso/pkg/cookiex"
	"github.com/aussiebroadwan/sso/pkg/ssox"
)

// Client talks to one SSO service instance.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a Client that does not follow redirects.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (c *Client) do(ctx context.Context, method, path string, headers map[string]string) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return resp, body, nil
}

// getJSON decodes a 200 response into target.
func (c *Client) getJSON(ctx context.Context, method, path string, headers map[string]string, target any) error {
	resp, body, err := c.do(ctx, method, path, headers)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return parseErrorResponse(resp, body)
	}
	if apiErr := handlerFailure(resp, body); apiErr != nil {
		return apiErr
	}
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) redirect(ctx context.Context, path string, headers map[string]string) (*Redirect, error) {
	resp, body, err := c.do(ctx, http.MethodGet, path, headers)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusFound {
		if apiErr := handlerFailure(resp, body); apiErr != nil {
			return nil, apiErr
		}
		return nil, parseErrorResponse(resp, body)
	}
	return &Redirect{
		Location: resp.Header.Get("Location"),
		Cookies:  resp.Header.Values("Set-Cookie"),
	}, nil
}

// GetLiveness calls /livez.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	var h HealthResponse
	if err := c.getJSON(ctx, http.MethodGet, "/livez", nil, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// GetReadiness calls /readyz.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	var h HealthResponse
	if err := c.getJSON(ctx, http.MethodGet, "/readyz", nil, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// StartLogin requests /auth/login and returns the redirect the browser
// would follow.
func (c *Client) StartLogin(ctx context.Context, idp, postLoginRedirect string) (*Redirect, error) {
	q := url.Values{}
	if idp != "" {
		q.Set("idp", idp)
	}
	if postLoginRedirect != "" {
		q.Set("post_login_redirect_url", postLoginRedirect)
	}
	path := "/auth/login"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	return c.redirect(ctx, path, nil)
}

// StartLogout requests /auth/logout for idToken.
func (c *Client) StartLogout(ctx context.Context, idToken string) (*Redirect, error) {
	path := "/auth/logout"
	if idToken != "" {
		path += "?" + url.Values{"id_token": {idToken}}.Encode()
	}
	return c.redirect(ctx, path, nil)
}

// FinishLogout requests /auth/logout/callback.
func (c *Client) FinishLogout(ctx context.Context) (*Redirect, error) {
	return c.redirect(ctx, "/auth/logout/callback", nil)
}

// RefreshTokens posts refreshToken as the refresh_token cookie to /auth/token.
func (c *Client) RefreshTokens(ctx context.Context, refreshToken string) (*ssox.TokenSet, error) {
	headers := map[string]string{}
	if refreshToken != "" {
		headers["Cookie"] = cookiex.Serialize(cookiex.RefreshTokenCookie, refreshToken, cookiex.Options{})
	}

	var ts ssox.TokenSet
	if err := c.getJSON(ctx, http.MethodPost, "/auth/token", headers, &ts); err != nil {
		return nil, err
	}
	return &ts, nil
}

// GetUserInfo calls the protected /auth/userinfo route.
func (c *Client) GetUserInfo(ctx context.Context, accessToken string) (*UserInfoResponse, error) {
	var info UserInfoResponse
	if err := c.getJSON(ctx, http.MethodGet, "/auth/userinfo", bearer(accessToken), &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// ListActivity calls the admin /auth/activity route. Zero limit and empty
// userGUID use the service defaults.
func (c *Client) ListActivity(ctx context.Context, accessToken, userGUID string, limit int) (*ActivityResponse, error) {
	q := url.Values{}
	if userGUID != "" {
		q.Set("user", userGUID)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	path := "/auth/activity"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out ActivityResponse
	if err := c.getJSON(ctx, http.MethodGet, path, bearer(accessToken), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func bearer(token string) map[string]string {
	if token == "" {
		return nil
	}
	return map[string]string{"Authorization": "Bearer " + token}
}

// IsStatus reports whether err is an *APIError with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}
