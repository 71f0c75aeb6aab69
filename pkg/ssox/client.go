// Package ssox is a client for the BC Gov Common Hosted Single Sign-On
// (Keycloak) identity provider. It builds login and logout URLs, exchanges and
// refreshes tokens, validates access tokens and turns token claims into a
// provider-agnostic User.
package ssox

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// Environment selects the hosted Keycloak instance.
type Environment string

const (
	EnvDev  Environment = "dev"
	EnvTest Environment = "test"
	EnvProd Environment = "prod"
)

// Protocol is the Keycloak client protocol.
type Protocol string

const (
	ProtocolOIDC Protocol = "oidc"
	ProtocolSAML Protocol = "saml"
)

// ValidationMode controls how IsJWTValid checks a token.
type ValidationMode string

const (
	// ValidateIntrospect asks the token introspection endpoint (RFC 7662).
	ValidateIntrospect ValidationMode = "introspect"
	// ValidateJWKS verifies the signature locally against the realm's keys.
	ValidateJWKS ValidationMode = "jwks"
)

const defaultHTTPTimeout = 10 * time.Second

var (
	baseURLs = map[Environment]string{
		EnvDev:  "https://dev.loginproxy.gov.bc.ca/auth",
		EnvTest: "https://test.loginproxy.gov.bc.ca/auth",
		EnvProd: "https://loginproxy.gov.bc.ca/auth",
	}
	siteMinderLogoutURLs = map[Environment]string{
		EnvDev:  "https://logontest7.gov.bc.ca/clp-cgi/logoff.cgi",
		EnvTest: "https://logontest7.gov.bc.ca/clp-cgi/logoff.cgi",
		EnvProd: "https://logon7.gov.bc.ca/clp-cgi/logoff.cgi",
	}
)

// Config configures a Client.
type Config struct {
	ClientID     string
	ClientSecret string
	Environment  Environment // default dev
	Realm        string      // default "standard"
	Protocol     Protocol    // default oidc

	// BaseURL overrides the hosted Keycloak URL derived from Environment,
	// e.g. "http://localhost:8081" for a self-hosted instance. When set,
	// logout URLs are not wrapped in the SiteMinder logoff URL unless
	// SiteMinderLogoutURL is also set.
	BaseURL             string
	SiteMinderLogoutURL string

	TokenValidation ValidationMode // default introspect
	HTTPClient      *http.Client
}

// Client talks to one Keycloak realm on behalf of one confidential client.
type Client struct {
	cfg        Config
	baseURL    string
	siteMinder string
	httpClient *http.Client
	verifier   *oidc.IDTokenVerifier
}

// NewClient validates cfg, fills in defaults and returns a ready Client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, fmt.Errorf("ssox: client id and secret are required")
	}
	if cfg.Environment == "" {
		cfg.Environment = EnvDev
	}
	if cfg.Realm == "" {
		cfg.Realm = "standard"
	}
	if cfg.Protocol == "" {
		cfg.Protocol = ProtocolOIDC
	}
	if cfg.TokenValidation == "" {
		cfg.TokenValidation = ValidateIntrospect
	}

	switch cfg.Protocol {
	case ProtocolOIDC, ProtocolSAML:
	default:
		return nil, fmt.Errorf("ssox: unsupported protocol %q", cfg.Protocol)
	}

	c := &Client{
		cfg:        cfg,
		httpClient: cfg.HTTPClient,
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}

	if cfg.BaseURL != "" {
		c.baseURL = strings.TrimSuffix(cfg.BaseURL, "/")
		c.siteMinder = cfg.SiteMinderLogoutURL
	} else {
		base, ok := baseURLs[cfg.Environment]
		if !ok {
			return nil, fmt.Errorf("ssox: unsupported environment %q", cfg.Environment)
		}
		c.baseURL = base
		c.siteMinder = siteMinderLogoutURLs[cfg.Environment]
		if cfg.SiteMinderLogoutURL != "" {
			c.siteMinder = cfg.SiteMinderLogoutURL
		}
	}

	switch cfg.TokenValidation {
	case ValidateIntrospect:
	case ValidateJWKS:
		// The key set outlives any single request, so it gets its own context.
		keyCtx := oidc.ClientContext(context.Background(), c.httpClient)
		keySet := oidc.NewRemoteKeySet(keyCtx, c.JWKSURL())
		c.verifier = oidc.NewVerifier(c.Issuer(), keySet, &oidc.Config{SkipClientIDCheck: true})
	default:
		return nil, fmt.Errorf("ssox: unsupported token validation mode %q", cfg.TokenValidation)
	}

	return c, nil
}

// Environment reports the configured environment.
func (c *Client) Environment() Environment { return c.cfg.Environment }

// Realm reports the configured realm.
func (c *Client) Realm() string { return c.cfg.Realm }

// Issuer is the realm issuer, "{base}/realms/{realm}".
func (c *Client) Issuer() string {
	return c.baseURL + "/realms/" + c.cfg.Realm
}

// JWKSURL is the realm certificate endpoint.
func (c *Client) JWKSURL() string {
	return c.Issuer() + "/protocol/openid-connect/certs"
}

func (c *Client) protocolURL(suffix string) string {
	return c.Issuer() + "/protocol/" + string(c.cfg.Protocol) + suffix
}

func (c *Client) tokenURL() string {
	return c.Issuer() + "/protocol/openid-connect/token"
}

func (c *Client) introspectionURL() string {
	return c.tokenURL() + "/introspect"
}

// oauthConfig returns the oauth2 view of this client for one redirect URI.
func (c *Client) oauthConfig(redirectURI string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.cfg.ClientID,
		ClientSecret: c.cfg.ClientSecret,
		RedirectURL:  redirectURI,
		Scopes:       []string{"openid", "email"},
		Endpoint: oauth2.Endpoint{
			AuthURL:   c.protocolURL("/auth"),
			TokenURL:  c.tokenURL(),
			AuthStyle: oauth2.AuthStyleInHeader,
		},
	}
}

// httpContext makes x/oauth2 and go-oidc use the client's http.Client.
func (c *Client) httpContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
}
