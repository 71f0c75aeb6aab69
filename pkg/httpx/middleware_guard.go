package httpx

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/aussiebroadwan/sso/pkg/slogx"
	"github.com/aussiebroadwan/sso/pkg/ssox"
)

// ErrInvalidRoles is the panic value of a guard configured with a blank role name.
var ErrInvalidRoles = errors.New("Error: protectedRoute middleware. Pass roles as an array of strings.")

// TokenVerifier is the part of the identity provider client the guard needs.
// *ssox.Client satisfies it.
type TokenVerifier interface {
	IsJWTValid(ctx context.Context, token string) (bool, error)
	DecodeJWT(token string) (*ssox.OriginalUser, error)
}

type guardOptions struct {
	requireAllRoles bool
}

// GuardOption tunes ProtectedRoute.
type GuardOption func(*guardOptions)

// RequireAllRoles selects between "every role" (true, the default) and
// "at least one role" (false) matching.
func RequireAllRoles(all bool) GuardOption {
	return func(o *guardOptions) { o.requireAllRoles = all }
}

const (
	msgNoAuthHeader  = "No authorization header found."
	msgInvalidToken  = "Unauthorized: Invalid token, re-log to get a new one."
	msgUserNotFound  = "User not found."
	msgInternalError = "Internal server error."
)

// ProtectedRoute only lets requests through that carry a valid bearer token
// for a user holding the configured client roles. On success the caller's
// AuthInfo is stored in the request context; on failure a JSON
// {"error": "..."} body is written and next is not called.
//
// A nil or empty roles slice skips the role check.
func ProtectedRoute(v TokenVerifier, roles []string, opts ...GuardOption) Middleware {
	o := guardOptions{requireAllRoles: true}
	for _, opt := range opts {
		opt(&o)
	}

	badRoles := slices.ContainsFunc(roles, func(r string) bool {
		return strings.TrimSpace(r) == ""
	})

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			// 1. Header present.
			authz := r.Header.Get("Authorization")
			if authz == "" {
				writeGuardError(w, http.StatusUnauthorized, msgNoAuthHeader)
				return
			}

			// 2. Token accepted by the realm. The scheme word is not checked.
			_, token, _ := strings.Cut(authz, " ")
			ok, err := v.IsJWTValid(ctx, token)
			if err != nil {
				log.Error("token validation failed", "err", err)
				WriteJSON(w, http.StatusInternalServerError, errorBody{Error: msgInternalError})
				return
			}
			if !ok {
				writeGuardError(w, http.StatusUnauthorized, msgInvalidToken)
				return
			}

			// 3. Token describes a user.
			claims, err := v.DecodeJWT(token)
			if err != nil {
				log.Warn("token decode failed", "err", err)
			}
			user := ssox.NormalizeUser(claims)
			if user == nil {
				WriteJSON(w, http.StatusNotFound, errorBody{Error: msgUserNotFound})
				return
			}

			// 4. Misconfigured guard.
			if badRoles {
				panic(ErrInvalidRoles)
			}

			// 5. Roles.
			if len(roles) > 0 {
				if o.requireAllRoles && !ssox.HasAllRoles(user.ClientRoles, roles) {
					WriteJSON(w, http.StatusForbidden, errorBody{
						Error: "User must have all of the following roles: [" + strings.Join(roles, ",") + "]",
					})
					return
				}
				if !o.requireAllRoles && !ssox.HasAtLeastOneRole(user.ClientRoles, roles) {
					WriteJSON(w, http.StatusForbidden, errorBody{
						Error: "User must have at least one of the following roles: [" + strings.Join(roles, ",") + "]",
					})
					return
				}
			}

			// 6. Hand over.
			ctx = WithAuth(ctx, AuthInfo{Token: token, User: user})
			ctx = slogx.WithContext(ctx, log.With("user_guid", user.GUID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// writeGuardError writes a 401 with an RFC 6750 challenge alongside the JSON body.
func writeGuardError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+msg+`"`)
	WriteJSON(w, code, errorBody{Error: msg})
}
