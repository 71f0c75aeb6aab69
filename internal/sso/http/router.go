package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/sso/internal/sso/service"
	"github.com/aussiebroadwan/sso/pkg/httpx"
	"github.com/aussiebroadwan/sso/pkg/slogx"

	_ "github.com/aussiebroadwan/sso/api/sso" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	config       RouteConfig
	idp          IdentityProvider
	verifier     httpx.TokenVerifier
	adminRoles   []string
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	db           Pinger

	// Optional. When set, logins and logouts are recorded and the activity
	// routes are mounted.
	ActivityService *service.ActivityService
}

func NewRouter(
	cfg RouteConfig,
	idp IdentityProvider,
	verifier httpx.TokenVerifier,
	adminRoles []string,
	db Pinger,
	buildVersion string,
	logger *slog.Logger,
) *Router {
	return &Router{
		Mux:          http.NewServeMux(),
		middlewares:  []httpx.Middleware{slogx.HTTPMiddleware(logger)},
		config:       cfg,
		idp:          idp,
		verifier:     verifier,
		adminRoles:   adminRoles,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		db:           db,
	}
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			SSO Service API
//	@version		0.1.0
//	@description	Backend half of the BC Gov Common Hosted Single Sign-On (Keycloak) flow.
//	@description
//	@description				The /auth routes drive the browser through login and logout and refresh tokens
//	@description				from the refresh_token cookie. Protected routes take the Keycloak access token.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/sso
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Keycloak access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) hooks() Hooks {
	if r.ActivityService == nil {
		return Hooks{}
	}
	return Hooks{
		AfterUserLogin:  r.ActivityService.RecordLogin,
		AfterUserLogout: r.ActivityService.RecordLogout,
	}
}

func (r *Router) registerAuth() {
	hooks := r.hooks()

	// Login and logout each cost a Keycloak round trip - moderate limit by IP
	r.Mux.Handle("GET "+RouteLogin,
		httpx.Chain(&LoginHandler{Config: r.config, IDP: r.idp},
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET "+RouteLoginCallback,
		httpx.Chain(&LoginCallbackHandler{Config: r.config, IDP: r.idp, Hooks: hooks},
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET "+RouteLogout,
		httpx.Chain(&LogoutHandler{Config: r.config, IDP: r.idp, Hooks: hooks},
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// Logout callback only writes a cookie
	r.Mux.Handle("GET "+RouteLogoutCallback,
		httpx.Chain(&LogoutCallbackHandler{Config: r.config},
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// Token refresh - strict limit, a leaked refresh cookie should not be hammered
	r.Mux.Handle("POST "+RouteToken,
		httpx.Chain(&TokenHandler{IDP: r.idp},
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerUsers() {
	r.Mux.Handle("GET "+RouteUserInfo,
		httpx.Chain(&UserInfoHandler{Activity: r.ActivityService},
			httpx.ProtectedRoute(r.verifier, nil),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	if r.ActivityService == nil {
		return
	}
	// An empty role list would let any signed-in user through.
	if len(r.adminRoles) == 0 {
		r.logger.Warn("activity route not mounted: no admin roles configured")
		return
	}

	r.Mux.Handle("GET "+RouteActivity,
		httpx.Chain(&ActivityHandler{Activity: r.ActivityService},
			httpx.ProtectedRoute(r.verifier, r.adminRoles, httpx.RequireAllRoles(false)),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.db),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
