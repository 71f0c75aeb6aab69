package http

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/sso/pkg/cookiex"
	"github.com/aussiebroadwan/sso/pkg/ssox"
)

type LoginHandler struct {
	Config RouteConfig
	IDP    IdentityProvider
}

// ServeHTTP starts a login.
//
//	@Summary		Start login
//	@Description	Redirects the browser to the Keycloak login page. Remembers post_login_redirect_url in a cookie.
//	@Description	If the request already carries a token cookie, responds 302 with an empty Location.
//	@Tags			Auth
//	@Param			idp						query	string	false	"Identity provider hint (idir, bceidbasic, githubpublic, ...)"
//	@Param			post_login_redirect_url	query	string	false	"Where the frontend should go after login"
//	@Success		302	{string}	string	"Redirect"
//	@Header			302	{string}	Location	"Redirect target"
//	@Success		200	{object}	ssosdk.HandlerErrorResponse	"Login URL could not be built"
//	@Router			/auth/login [get].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	loginURL, err := h.IDP.LoginURL(ssox.LoginParams{
		IDPHint:     q.Get("idp"),
		RedirectURI: h.Config.loginCallbackURL(),
	})
	if err != nil {
		writeHandlerError(w, r, err)
		return
	}

	if hasSessionToken(cookiex.Jar(r)) {
		w.Header().Set("Location", "")
		w.WriteHeader(http.StatusFound)
		return
	}

	cookiex.Set(w, cookiex.PostLoginRedirectCookie, q.Get("post_login_redirect_url"), cookiex.Options{
		Domain: h.Config.CookieDomain,
	})
	w.Header().Set("Location", loginURL)
	w.WriteHeader(http.StatusFound)
}

// hasSessionToken reports whether any cookie named like a token is set.
func hasSessionToken(jar map[string]string) bool {
	for name, value := range jar {
		if value != "" && strings.Contains(name, "token") {
			return true
		}
	}
	return false
}
