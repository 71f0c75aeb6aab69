package ssosdk_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/sso/pkg/ssosdk"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, h http.HandlerFunc) *ssosdk.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return ssosdk.NewClient(srv.URL + "/")
}

func TestRefreshTokens(t *testing.T) {
	t.Run("sends the cookie and decodes the token set", func(t *testing.T) {
		c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/auth/token", r.URL.Path)
			require.Equal(t, "refresh_token=r1", r.Header.Get("Cookie"))
			_, _ = w.Write([]byte(`{"access_token":"a2","refresh_token":"r2","expires_in":300}`))
		})

		ts, err := c.RefreshTokens(t.Context(), "r1")
		require.NoError(t, err)
		require.Equal(t, "a2", ts.AccessToken)
		require.Equal(t, int64(300), ts.ExpiresIn)
	})

	t.Run("plain text 401", func(t *testing.T) {
		c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte("Cookies must include refresh_token."))
		})

		_, err := c.RefreshTokens(t.Context(), "")
		require.True(t, ssosdk.IsStatus(err, http.StatusUnauthorized))
		require.Contains(t, err.Error(), "Cookies must include refresh_token.")
	})

	t.Run("handler failure at 200", func(t *testing.T) {
		c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"success":false,"error":"invalid_grant: Token is not active"}`))
		})

		_, err := c.RefreshTokens(t.Context(), "r1")
		var apiErr *ssosdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusOK, apiErr.StatusCode)
		require.Equal(t, "invalid_grant: Token is not active", apiErr.Message)
	})
}

func TestStartLogin(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "idir", r.URL.Query().Get("idp"))
		require.Equal(t, "/home", r.URL.Query().Get("post_login_redirect_url"))
		w.Header().Add("Set-Cookie", "post_login_redirect_url=%2Fhome; Domain=localhost")
		w.Header().Set("Location", "https://kc.example/auth")
		w.WriteHeader(http.StatusFound)
	})

	redirect, err := c.StartLogin(t.Context(), "idir", "/home")
	require.NoError(t, err)
	require.Equal(t, "https://kc.example/auth", redirect.Location)
	require.Equal(t, []string{"post_login_redirect_url=%2Fhome; Domain=localhost"}, redirect.Cookies)
}

func TestGetUserInfoGuardError(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"User must have all of the following roles: [Admin]"}`))
	})

	_, err := c.GetUserInfo(t.Context(), "tok")
	require.True(t, ssosdk.IsStatus(err, http.StatusForbidden))

	var apiErr *ssosdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "User must have all of the following roles: [Admin]", apiErr.Message)
}

func TestListActivityQuery(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "u1", r.URL.Query().Get("user"))
		require.Equal(t, "5", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{"items":[{"id":"01","event":"login","user_guid":"u1","occurred_at":"2026-10-19T09:00:00Z"}]}`))
	})

	out, err := c.ListActivity(t.Context(), "tok", "u1", 5)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	require.Equal(t, "login", out.Items[0].Event)
}
