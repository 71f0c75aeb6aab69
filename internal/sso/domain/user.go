package domain

import "time"

// User is the service's record of a person who has logged in through it.
// Identity itself lives in Keycloak; this only tracks what we have seen.
type User struct {
	GUID             string
	Username         string
	DisplayName      string
	Email            string
	IdentityProvider string
	FirstSeenAt      time.Time
	LastLoginAt      time.Time
}
