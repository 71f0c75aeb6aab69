package domain

import "time"

type ActivityEvent string

const (
	EventLogin  ActivityEvent = "login"
	EventLogout ActivityEvent = "logout"
)

// Activity is one login or logout seen by the service.
type Activity struct {
	ID               string
	Event            ActivityEvent
	UserGUID         string
	Username         string // joined from users, empty if the user was never seen logging in
	IdentityProvider string
	SessionID        string
	OccurredAt       time.Time
}
