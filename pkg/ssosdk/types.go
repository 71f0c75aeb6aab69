package ssosdk

import (
	"time"

	"github.com/aussiebroadwan/sso/pkg/ssox"
)

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of each dependency checked by /readyz.
type HealthChecks struct {
	Database string `json:"database"`
}

// ErrorResponse is the body written by the protected-route guard and the
// rate limiter.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HandlerErrorResponse is the body written when one of the auth route
// handlers fails. It is sent with status 200.
type HandlerErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// UserInfoResponse is returned by GET /auth/userinfo.
type UserInfoResponse struct {
	User *ssox.User `json:"user"`

	// Set once the user has logged in through this service.
	FirstSeenAt *time.Time `json:"first_seen_at,omitempty"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// ActivityItem is one login or logout.
type ActivityItem struct {
	ID               string    `json:"id"`
	Event            string    `json:"event"`
	UserGUID         string    `json:"user_guid"`
	Username         string    `json:"username,omitempty"`
	IdentityProvider string    `json:"identity_provider,omitempty"`
	SessionID        string    `json:"session_id,omitempty"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// ActivityResponse is returned by GET /auth/activity.
type ActivityResponse struct {
	Items []ActivityItem `json:"items"`
}

// Redirect describes a 302 issued by the service.
type Redirect struct {
	Location string
	Cookies  []string // raw Set-Cookie values
}
