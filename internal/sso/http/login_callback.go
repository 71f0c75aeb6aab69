package http

import (
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/sso/pkg/cookiex"
)

type LoginCallbackHandler struct {
	Config RouteConfig
	IDP    IdentityProvider
	Hooks  Hooks
}

// ServeHTTP completes a login.
//
//	@Summary		Login callback
//	@Description	Exchanges the authorization code for tokens, stores the refresh token in a cookie and
//	@Description	redirects to the frontend with refresh_expires_in and post_login_redirect_url.
//	@Tags			Auth
//	@Param			code	query	string	true	"Authorization code from Keycloak"
//	@Success		302	{string}	string	"Redirect"
//	@Header			302	{string}	Location	"Redirect target"
//	@Success		200	{object}	ssosdk.HandlerErrorResponse	"Code exchange failed"
//	@Router			/auth/login/callback [get].
func (h *LoginCallbackHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	postLoginRedirect := cookiex.Jar(r)[cookiex.PostLoginRedirectCookie]

	tokens, err := h.IDP.Tokens(r.Context(), code, h.Config.loginCallbackURL())
	if err != nil {
		writeHandlerError(w, r, err)
		return
	}

	redirect := h.Config.FrontendURL +
		"?refresh_expires_in=" + strconv.FormatInt(tokens.RefreshExpiresIn, 10) +
		"&post_login_redirect_url=" + cookiex.EncodeURIComponent(postLoginRedirect)

	cookiex.Set(w, cookiex.RefreshTokenCookie, tokens.RefreshToken, cookiex.Options{
		Domain: h.Config.CookieDomain,
	})
	w.Header().Set("Location", redirect)
	w.WriteHeader(http.StatusFound)

	runHook(w, r, h.IDP, h.Hooks.AfterUserLogin, tokens.AccessToken, "after_user_login")
}
