package ssox

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// OriginalUser is the claim set Keycloak puts in access and id tokens for the
// standard realm. Identity-provider specific fields are only present for
// users of that provider.
type OriginalUser struct {
	jwt.RegisteredClaims

	IdentityProvider  string   `json:"identity_provider,omitempty"`
	PreferredUsername string   `json:"preferred_username,omitempty"`
	Email             string   `json:"email,omitempty"`
	EmailVerified     bool     `json:"email_verified,omitempty"`
	Name              string   `json:"name,omitempty"`
	DisplayName       string   `json:"display_name,omitempty"`
	GivenName         string   `json:"given_name,omitempty"`
	FamilyName        string   `json:"family_name,omitempty"`
	ClientRoles       []string `json:"client_roles,omitempty"`
	Scope             string   `json:"scope,omitempty"`
	SessionID         string   `json:"sid,omitempty"`

	IDIRUserGUID      string `json:"idir_user_guid,omitempty"`
	IDIRUsername      string `json:"idir_username,omitempty"`
	BCeIDUserGUID     string `json:"bceid_user_guid,omitempty"`
	BCeIDUsername     string `json:"bceid_username,omitempty"`
	BCeIDBusinessGUID string `json:"bceid_business_guid,omitempty"`
	BCeIDBusinessName string `json:"bceid_business_name,omitempty"`
	GitHubID          string `json:"github_id,omitempty"`
	GitHubUsername    string `json:"github_username,omitempty"`
}

// User is the provider-agnostic view of an authenticated person.
type User struct {
	GUID              string        `json:"guid"`
	Username          string        `json:"username"`
	PreferredUsername string        `json:"preferred_username"`
	Email             string        `json:"email"`
	DisplayName       string        `json:"display_name"`
	FirstName         string        `json:"first_name"`
	LastName          string        `json:"last_name"`
	IdentityProvider  string        `json:"identity_provider"`
	ClientRoles       []string      `json:"client_roles"`
	Scope             string        `json:"scope"`
	OriginalData      *OriginalUser `json:"original_data,omitempty"`
}

// DecodeJWT reads the claims of token without verifying its signature. Only
// use it on tokens that were validated or came straight from the token
// endpoint.
func (c *Client) DecodeJWT(token string) (*OriginalUser, error) {
	return DecodeJWT(token)
}

// DecodeJWT reads the claims of token without verifying its signature.
func DecodeJWT(token string) (*OriginalUser, error) {
	claims := &OriginalUser{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, newError(KindInvalidToken, err, "ssox: failed to decode token: %v", err)
	}
	return claims, nil
}

// DecodeUser decodes token and normalises its claims. It fails when the token
// does not describe a user.
func (c *Client) DecodeUser(token string) (*User, error) {
	claims, err := DecodeJWT(token)
	if err != nil {
		return nil, err
	}
	user := NormalizeUser(claims)
	if user == nil {
		return nil, newError(KindInvalidToken, nil, "ssox: token does not identify a user")
	}
	return user, nil
}

// NormalizeUser maps raw claims onto a User. It returns nil when the claims
// carry neither a preferred username nor a subject.
func NormalizeUser(u *OriginalUser) *User {
	if u == nil || (u.PreferredUsername == "" && u.Subject == "") {
		return nil
	}

	guid := firstNonEmpty(u.IDIRUserGUID, u.BCeIDUserGUID, u.GitHubID, localPart(u.PreferredUsername), u.Subject)
	username := firstNonEmpty(u.IDIRUsername, u.BCeIDUsername, u.GitHubUsername)

	displayName := firstNonEmpty(u.DisplayName, u.Name)
	if displayName == "" {
		displayName = strings.TrimSpace(u.GivenName + " " + u.FamilyName)
	}

	roles := u.ClientRoles
	if roles == nil {
		roles = []string{}
	}

	return &User{
		GUID:              guid,
		Username:          username,
		PreferredUsername: u.PreferredUsername,
		Email:             u.Email,
		DisplayName:       displayName,
		FirstName:         u.GivenName,
		LastName:          u.FamilyName,
		IdentityProvider:  u.IdentityProvider,
		ClientRoles:       roles,
		Scope:             u.Scope,
		OriginalData:      u,
	}
}

// localPart strips the "@idp" suffix Keycloak appends to preferred_username.
func localPart(s string) string {
	local, _, _ := strings.Cut(s, "@")
	return local
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
