package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T, frontend string) {
	t.Helper()
	t.Setenv("FRONTEND_URL", frontend)
	t.Setenv("BACKEND_URL", "http://localhost:8080/")
	t.Setenv("SSO_CLIENT_ID", "my-client")
	t.Setenv("SSO_CLIENT_SECRET", "s3cret")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequired(t, "http://localhost:3000")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "http://localhost:3000", cfg.FrontendURL)
	require.Equal(t, "http://localhost:8080", cfg.BackendURL, "trailing slash is trimmed")
	require.Equal(t, "localhost", cfg.CookieDomain)
	require.Equal(t, "dev", cfg.SSOEnvironment)
	require.Equal(t, "standard", cfg.SSORealm)
	require.Equal(t, "oidc", cfg.SSOProtocol)
	require.Equal(t, "introspect", cfg.SSOTokenValidation)
	require.Equal(t, []string{"Admin"}, cfg.AdminRoles)
	require.Equal(t, "sso.db", cfg.DatabaseFile)
	require.Equal(t, 30*24*time.Hour, cfg.ActivityRetention)
	require.Equal(t, time.Hour, cfg.HousekeepingInterval)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
}

func TestLoadConfigCookieDomainForGovSites(t *testing.T) {
	setRequired(t, "https://app.apps.gov.bc.ca")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, ".gov.bc.ca", cfg.CookieDomain)

	t.Setenv("COOKIE_DOMAIN", ".example.org")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	require.Equal(t, ".example.org", cfg.CookieDomain)
}

func TestLoadConfigOverrides(t *testing.T) {
	setRequired(t, "http://localhost:3000")
	t.Setenv("SSO_ENVIRONMENT", "prod")
	t.Setenv("SSO_ADMIN_ROLES", " Admin , Auditor,,")
	t.Setenv("ACTIVITY_RETENTION", "48h")
	t.Setenv("HOUSEKEEPING_INTERVAL", "15")
	t.Setenv("PORT", "not-a-port")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "prod", cfg.SSOEnvironment)
	require.Equal(t, []string{"Admin", "Auditor"}, cfg.AdminRoles)
	require.Equal(t, 48*time.Hour, cfg.ActivityRetention)
	require.Equal(t, 15*time.Minute, cfg.HousekeepingInterval, "bare integers are minutes")
	require.Equal(t, 8080, cfg.Port, "unparseable values fall back to the default")
}

func TestLoadConfigNamesMissingVariables(t *testing.T) {
	t.Setenv("FRONTEND_URL", "http://localhost:3000")
	t.Setenv("BACKEND_URL", "")
	t.Setenv("SSO_CLIENT_ID", "")
	t.Setenv("SSO_CLIENT_SECRET", "s3cret")

	_, err := LoadConfig()
	require.Error(t, err)
	require.Contains(t, err.Error(), "BACKEND_URL")
	require.Contains(t, err.Error(), "SSO_CLIENT_ID")
	require.NotContains(t, err.Error(), "FRONTEND_URL")
	require.NotContains(t, err.Error(), "SSO_CLIENT_SECRET")
}

func TestLoadConfigRejectsBlankAdminRoles(t *testing.T) {
	setRequired(t, "http://localhost:3000")
	t.Setenv("SSO_ADMIN_ROLES", " , ")

	_, err := LoadConfig()
	require.Error(t, err)
	require.Contains(t, err.Error(), "SSO_ADMIN_ROLES")
}

func TestNewWiresApplication(t *testing.T) {
	cfg := Config{
		FrontendURL:          "http://localhost:3000",
		BackendURL:           "http://localhost:8080",
		ClientID:             "my-client",
		ClientSecret:         "s3cret",
		CookieDomain:         "localhost",
		SSOEnvironment:       "dev",
		SSORealm:             "standard",
		SSOProtocol:          "oidc",
		SSOTokenValidation:   "introspect",
		AdminRoles:           []string{"Admin"},
		DatabaseFile:         t.TempDir() + "/sso.db",
		ActivityRetention:    time.Hour,
		HousekeepingInterval: time.Hour,
		Env:                  "test",
		LogLevel:             "error",
		LogFormat:            "text",
		Port:                 0,
		ShutdownGracePeriod:  time.Second,
	}

	application, err := New(cfg)
	require.NoError(t, err)
	require.NotNil(t, application.Handler())
	require.NoError(t, application.db.Close())

	cfg.SSOProtocol = "ws-fed"
	_, err = New(cfg)
	require.Error(t, err)
}
