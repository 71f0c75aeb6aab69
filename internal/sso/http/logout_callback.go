package http

import (
	"net/http"

	"github.com/aussiebroadwan/sso/pkg/cookiex"
)

type LogoutCallbackHandler struct {
	Config RouteConfig
}

// ServeHTTP finishes a logout.
//
//	@Summary		Logout callback
//	@Description	Clears the refresh_token cookie and redirects to the frontend.
//	@Tags			Auth
//	@Success		302	{string}	string	"Redirect"
//	@Header			302	{string}	Location	"Redirect target"
//	@Router			/auth/logout/callback [get].
func (h *LogoutCallbackHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cookiex.Set(w, cookiex.RefreshTokenCookie, "", cookiex.Options{
		Domain:   h.Config.CookieDomain,
		HttpOnly: true,
		Secure:   true,
		SameSite: "None",
	})
	w.Header().Set("Location", h.Config.FrontendURL)
	w.WriteHeader(http.StatusFound)
}
