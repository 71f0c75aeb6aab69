package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	ssohttp "github.com/aussiebroadwan/sso/internal/sso/http"
	"github.com/aussiebroadwan/sso/internal/sso/service"
	"github.com/aussiebroadwan/sso/internal/sso/store/drivers/sqlite"
	"github.com/aussiebroadwan/sso/pkg/ssosdk"
	"github.com/aussiebroadwan/sso/pkg/ssox"
	"github.com/stretchr/testify/require"
)

// tokenVerifier accepts tokens of the form "<guid>:<role>,<role>".
type tokenVerifier struct{}

func (tokenVerifier) IsJWTValid(_ context.Context, token string) (bool, error) {
	return strings.Contains(token, ":"), nil
}

func (tokenVerifier) DecodeJWT(token string) (*ssox.OriginalUser, error) {
	guid, roles, _ := strings.Cut(token, ":")
	u := &ssox.OriginalUser{
		PreferredUsername: guid + "@idir",
		IDIRUserGUID:      guid,
		IDIRUsername:      strings.ToUpper(guid),
		IdentityProvider:  "idir",
	}
	if roles != "" {
		u.ClientRoles = strings.Split(roles, ",")
	}
	return u, nil
}

func newTestRouter(t *testing.T, idp *fakeIDP) *ssohttp.Router {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "sso.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := ssohttp.NewRouter(testConfig, idp, tokenVerifier{}, []string{"Admin"}, st, "test", logger)
	r.ActivityService = &service.ActivityService{Store: st}
	r.ApplyRoutes()
	return r
}

func send(r http.Handler, method, target, authz, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	req.RemoteAddr = "10.1.2.3:4567"
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRouterSkipsActivityWithoutAdminRoles(t *testing.T) {
	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "sso.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := ssohttp.NewRouter(testConfig, &fakeIDP{}, tokenVerifier{}, nil, st, "test", logger)
	r.ActivityService = &service.ActivityService{Store: st}
	r.ApplyRoutes()

	rec := send(r, http.MethodGet, "/auth/activity", "Bearer bob:User", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = send(r, http.MethodGet, "/auth/userinfo", "Bearer bob:User", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterHealth(t *testing.T) {
	r := newTestRouter(t, &fakeIDP{})

	rec := send(r, http.MethodGet, "/livez", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = send(r, http.MethodGet, "/readyz", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var health ssosdk.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	require.Equal(t, "ok", health.Checks.Database)
	require.Equal(t, "test", health.Version)
}

func TestRouterMethods(t *testing.T) {
	r := newTestRouter(t, &fakeIDP{})

	require.Equal(t, http.StatusMethodNotAllowed, send(r, http.MethodGet, "/auth/token", "", "").Code)
	require.Equal(t, http.StatusMethodNotAllowed, send(r, http.MethodPost, "/auth/login", "", "").Code)
	require.Equal(t, http.StatusUnauthorized, send(r, http.MethodPost, "/auth/token", "", "").Code)
}

func TestRouterLoginRecordsActivity(t *testing.T) {
	idp := &fakeIDP{
		tokens:    &ssox.TokenSet{AccessToken: "a1", RefreshToken: "r1", RefreshExpiresIn: 1800},
		user:      &ssox.User{GUID: "alice", Username: "ALICE", IdentityProvider: "idir"},
		logoutURL: "http://logout.url",
	}
	r := newTestRouter(t, idp)

	require.Equal(t, http.StatusFound, send(r, http.MethodGet, "/auth/login/callback?code=c1", "", "").Code)
	require.Equal(t, http.StatusFound, send(r, http.MethodGet, "/auth/logout?id_token=i1", "", "").Code)

	t.Run("userinfo includes last login", func(t *testing.T) {
		rec := send(r, http.MethodGet, "/auth/userinfo", "Bearer alice:", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var info ssosdk.UserInfoResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
		require.Equal(t, "alice", info.User.GUID)
		require.NotNil(t, info.LastLoginAt)
	})

	t.Run("userinfo without a token", func(t *testing.T) {
		rec := send(r, http.MethodGet, "/auth/userinfo", "", "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.JSONEq(t, `{"error":"No authorization header found."}`, rec.Body.String())
	})

	t.Run("activity requires an admin role", func(t *testing.T) {
		rec := send(r, http.MethodGet, "/auth/activity", "Bearer bob:User", "")
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.JSONEq(t, `{"error":"User must have at least one of the following roles: [Admin]"}`, rec.Body.String())
	})

	t.Run("activity for an admin", func(t *testing.T) {
		rec := send(r, http.MethodGet, "/auth/activity?user=alice", "Bearer root:User,Admin", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var out ssosdk.ActivityResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		require.Len(t, out.Items, 2)
		require.Equal(t, "logout", out.Items[0].Event)
		require.Equal(t, "login", out.Items[1].Event)
		require.Equal(t, "ALICE", out.Items[1].Username)
	})

	t.Run("activity rejects a bad limit", func(t *testing.T) {
		rec := send(r, http.MethodGet, "/auth/activity?limit=-1", "Bearer root:Admin", "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
