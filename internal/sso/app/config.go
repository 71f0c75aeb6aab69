package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	FrontendURL  string // Required: where the browser lands after login and logout
	BackendURL   string // Required: public base URL of this service, used for callbacks
	ClientID     string // Required: Keycloak client id
	ClientSecret string // Required: Keycloak client secret
	CookieDomain string // Optional: Domain attribute of every cookie (default: localhost or .gov.bc.ca)

	SSOEnvironment      string   // Optional: dev, test or prod (default: dev)
	SSORealm            string   // Optional: Keycloak realm (default: standard)
	SSOProtocol         string   // Optional: oidc or saml (default: oidc)
	SSOTokenValidation  string   // Optional: introspect or jwks (default: introspect)
	SSOBaseURL          string   // Optional: self-hosted Keycloak base URL
	SSOSiteMinderLogout string   // Optional: SiteMinder logoff URL override
	AdminRoles          []string // Optional: roles allowed to read the activity log (default: Admin)

	DatabaseFile         string        // Optional: path to SQLite database file (default: ./sso.db)
	ActivityRetention    time.Duration // Optional: how long login and logout events are kept (default: 30 days)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// LoadConfig reads the configuration from the environment. A .env file in the
// working directory is loaded first when present; variables already set in
// the environment win.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		FrontendURL:  strings.TrimSuffix(os.Getenv("FRONTEND_URL"), "/"),
		BackendURL:   strings.TrimSuffix(os.Getenv("BACKEND_URL"), "/"),
		ClientID:     os.Getenv("SSO_CLIENT_ID"),
		ClientSecret: os.Getenv("SSO_CLIENT_SECRET"),
		CookieDomain: os.Getenv("COOKIE_DOMAIN"),

		SSOEnvironment:      getEnvOrDefault("SSO_ENVIRONMENT", "dev"),
		SSORealm:            getEnvOrDefault("SSO_REALM", "standard"),
		SSOProtocol:         getEnvOrDefault("SSO_PROTOCOL", "oidc"),
		SSOTokenValidation:  getEnvOrDefault("SSO_TOKEN_VALIDATION", "introspect"),
		SSOBaseURL:          os.Getenv("SSO_BASE_URL"),
		SSOSiteMinderLogout: os.Getenv("SSO_SITEMINDER_LOGOUT_URL"),
		AdminRoles:          splitList(getEnvOrDefault("SSO_ADMIN_ROLES", "Admin")),

		DatabaseFile:         getEnvOrDefault("SSO_DATABASE_FILE", "sso.db"),
		ActivityRetention:    getEnvDurationOrDefault("ACTIVITY_RETENTION", 30*24*time.Hour),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	if cfg.CookieDomain == "" {
		cfg.CookieDomain = defaultCookieDomain(cfg.FrontendURL)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every missing required variable at once.
func (c Config) Validate() error {
	var missing []string
	for _, req := range []struct{ key, value string }{
		{"FRONTEND_URL", c.FrontendURL},
		{"BACKEND_URL", c.BackendURL},
		{"SSO_CLIENT_ID", c.ClientID},
		{"SSO_CLIENT_SECRET", c.ClientSecret},
	} {
		if req.value == "" {
			missing = append(missing, req.key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	if len(c.AdminRoles) == 0 {
		return fmt.Errorf("SSO_ADMIN_ROLES must name at least one role")
	}
	return nil
}

func defaultCookieDomain(frontendURL string) string {
	if strings.Contains(frontendURL, "localhost") {
		return "localhost"
	}
	return ".gov.bc.ca"
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// "1h", "30m", "90s"
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
