package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aussiebroadwan/sso/pkg/slogx"
	"github.com/aussiebroadwan/sso/pkg/ssosdk"
	"github.com/aussiebroadwan/sso/pkg/ssox"
)

// writeHandlerError reports a failed auth route. The status is left at the
// implicit 200 and the body is {"success":false,"error":"..."}.
func writeHandlerError(w http.ResponseWriter, r *http.Request, err error) {
	e := ssox.AsError(err)
	slogx.FromContext(r.Context()).Warn("auth route failed", "kind", e.Kind, "err", e.Message)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ssosdk.HandlerErrorResponse{Success: false, Error: e.Message})
}

// runHook sends the response on its way, then runs hook for the user in token.
func runHook(w http.ResponseWriter, r *http.Request, idp IdentityProvider, hook UserHook, token, name string) {
	if hook == nil {
		return
	}
	log := slogx.FromContext(r.Context())

	_ = http.NewResponseController(w).Flush()

	user, err := idp.DecodeUser(token)
	if err != nil {
		log.Warn("hook skipped: token does not identify a user", "hook", name, "err", err)
		return
	}
	// The browser has its redirect and may hang up; the hook still has to finish.
	if err := hook(context.WithoutCancel(r.Context()), user); err != nil {
		log.Warn("hook failed", "hook", name, "user_guid", user.GUID, "err", err)
	}
}
