package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/sso/internal/sso/service"
	"github.com/aussiebroadwan/sso/internal/sso/store"
	"github.com/aussiebroadwan/sso/pkg/httpx"
	"github.com/aussiebroadwan/sso/pkg/slogx"
	"github.com/aussiebroadwan/sso/pkg/ssosdk"
)

type UserInfoHandler struct {
	Activity *service.ActivityService
}

// ServeHTTP returns the authenticated user.
//
//	@Summary		Get user information
//	@Description	Returns the normalized user from the access token, plus when this service first and last saw them log in.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	ssosdk.UserInfoResponse
//	@Failure		401	{object}	ssosdk.ErrorResponse	"Missing or invalid access token"
//	@Failure		404	{object}	ssosdk.ErrorResponse	"Token does not identify a user"
//	@Router			/auth/userinfo [get].
func (h *UserInfoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	info, ok := httpx.AuthFromContext(ctx)
	if !ok {
		httpx.WriteJSON(w, http.StatusUnauthorized, ssosdk.ErrorResponse{Error: "No authorization header found."})
		return
	}

	resp := ssosdk.UserInfoResponse{User: info.User}

	if h.Activity != nil {
		profile, err := h.Activity.Profile(ctx, info.User.GUID)
		switch {
		case err == nil:
			resp.FirstSeenAt = &profile.FirstSeenAt
			resp.LastLoginAt = &profile.LastLoginAt
		case errors.Is(err, store.ErrNotFound):
		default:
			slogx.FromContext(ctx).Warn("failed to load user profile", "user_guid", info.User.GUID, "err", err)
		}
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}
