package http

import (
	"net/http"

	"github.com/aussiebroadwan/sso/pkg/httpx"
	"github.com/aussiebroadwan/sso/pkg/ssox"
)

const msgIDTokenRequired = "id_token query param required"

type LogoutHandler struct {
	Config RouteConfig
	IDP    IdentityProvider
	Hooks  Hooks
}

// ServeHTTP starts a logout.
//
//	@Summary		Start logout
//	@Description	Redirects the browser to the Keycloak (and SiteMinder) logout, returning to /auth/logout/callback.
//	@Tags			Auth
//	@Param			id_token	query	string	true	"ID token of the session to end"
//	@Produce		plain
//	@Success		302	{string}	string	"Redirect"
//	@Header			302	{string}	Location	"Redirect target"
//	@Success		200	{object}	ssosdk.HandlerErrorResponse	"Logout URL could not be built"
//	@Failure		401	{string}	string						"id_token query param required"
//	@Router			/auth/logout [get].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idToken := r.URL.Query().Get("id_token")
	if idToken == "" {
		httpx.WriteText(w, http.StatusUnauthorized, msgIDTokenRequired)
		return
	}

	logoutURL, err := h.IDP.LogoutURL(ssox.LogoutParams{
		IDToken:               idToken,
		PostLogoutRedirectURI: h.Config.logoutCallbackURL(),
	})
	if err != nil {
		writeHandlerError(w, r, err)
		return
	}

	w.Header().Set("Location", logoutURL)
	w.WriteHeader(http.StatusFound)

	runHook(w, r, h.IDP, h.Hooks.AfterUserLogout, idToken, "after_user_logout")
}
