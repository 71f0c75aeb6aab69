package http

import (
	"net/http"

	"github.com/aussiebroadwan/sso/pkg/cookiex"
	"github.com/aussiebroadwan/sso/pkg/httpx"
)

const msgRefreshTokenRequired = "Cookies must include refresh_token."

type TokenHandler struct {
	IDP IdentityProvider
}

// ServeHTTP refreshes the caller's tokens.
//
//	@Summary		Refresh tokens
//	@Description	Uses the refresh_token cookie to obtain a new token set from Keycloak.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	ssox.TokenSet				"New token set, or {success:false} if the refresh failed"
//	@Failure		401	{string}	string						"Cookies must include refresh_token."
//	@Router			/auth/token [post].
func (h *TokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	refreshToken := cookiex.Jar(r)[cookiex.RefreshTokenCookie]
	if refreshToken == "" {
		httpx.WriteText(w, http.StatusUnauthorized, msgRefreshTokenRequired)
		return
	}

	tokens, err := h.IDP.RefreshTokens(r.Context(), refreshToken)
	if err != nil {
		writeHandlerError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tokens)
}
