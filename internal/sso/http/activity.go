package http

import (
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/sso/internal/sso/service"
	"github.com/aussiebroadwan/sso/pkg/httpx"
	"github.com/aussiebroadwan/sso/pkg/slogx"
	"github.com/aussiebroadwan/sso/pkg/ssosdk"
)

type ActivityHandler struct {
	Activity *service.ActivityService
}

// ServeHTTP lists recent logins and logouts.
//
//	@Summary		List user activity
//	@Description	Recent login and logout events, newest first. Requires one of the configured admin client roles.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			user	query		string	false	"Only this user GUID"
//	@Param			limit	query		int		false	"Maximum records (default 50, max 500)"
//	@Success		200		{object}	ssosdk.ActivityResponse
//	@Failure		400		{object}	ssosdk.ErrorResponse	"Invalid limit"
//	@Failure		401		{object}	ssosdk.ErrorResponse	"Missing or invalid access token"
//	@Failure		403		{object}	ssosdk.ErrorResponse	"Missing admin role"
//	@Failure		500		{object}	ssosdk.ErrorResponse	"Internal server error"
//	@Router			/auth/activity [get].
func (h *ActivityHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	limit := 0
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			httpx.WriteJSON(w, http.StatusBadRequest, ssosdk.ErrorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = n
	}

	records, err := h.Activity.ListRecent(ctx, q.Get("user"), limit)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list activity", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, ssosdk.ErrorResponse{Error: "Internal server error."})
		return
	}

	resp := ssosdk.ActivityResponse{Items: make([]ssosdk.ActivityItem, 0, len(records))}
	for _, a := range records {
		resp.Items = append(resp.Items, ssosdk.ActivityItem{
			ID:               a.ID,
			Event:            string(a.Event),
			UserGUID:         a.UserGUID,
			Username:         a.Username,
			IdentityProvider: a.IdentityProvider,
			SessionID:        a.SessionID,
			OccurredAt:       a.OccurredAt,
		})
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}
