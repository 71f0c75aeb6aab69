package http

import (
	"context"

	"github.com/aussiebroadwan/sso/pkg/ssox"
)

// Paths of the auth routes. The callback paths are also sent to Keycloak as
// redirect URIs, so they must match the client's registered redirects.
const (
	RouteLogin          = "/auth/login"
	RouteLoginCallback  = "/auth/login/callback"
	RouteLogout         = "/auth/logout"
	RouteLogoutCallback = "/auth/logout/callback"
	RouteToken          = "/auth/token"
	RouteUserInfo       = "/auth/userinfo"
	RouteActivity       = "/auth/activity"
)

// RouteConfig is the deployment-specific input of the auth routes.
type RouteConfig struct {
	// FrontendURL receives the browser after login and logout.
	FrontendURL string
	// BackendURL is this service's public base URL, used to build callbacks.
	BackendURL string
	// CookieDomain is written as the Domain attribute of every cookie.
	CookieDomain string
}

func (c RouteConfig) loginCallbackURL() string  { return c.BackendURL + RouteLoginCallback }
func (c RouteConfig) logoutCallbackURL() string { return c.BackendURL + RouteLogoutCallback }

// IdentityProvider is what the route handlers need from the SSO client.
// *ssox.Client satisfies it.
type IdentityProvider interface {
	LoginURL(p ssox.LoginParams) (string, error)
	LogoutURL(p ssox.LogoutParams) (string, error)
	Tokens(ctx context.Context, code, redirectURI string) (*ssox.TokenSet, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*ssox.TokenSet, error)
	DecodeUser(token string) (*ssox.User, error)
}

// UserHook observes a user passing through a route.
type UserHook func(ctx context.Context, user *ssox.User) error

// Hooks are optional callbacks run after the redirect has been sent. Their
// errors are logged and never change the response.
type Hooks struct {
	AfterUserLogin  UserHook
	AfterUserLogout UserHook
}
