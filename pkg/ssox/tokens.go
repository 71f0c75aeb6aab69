package ssox

import (
	"context"
	"errors"
	"strconv"

	"golang.org/x/oauth2"
)

// TokenSet is the token response handed back to the browser. Fields are
// passed through untouched.
type TokenSet struct {
	AccessToken      string `json:"access_token"`
	RefreshToken     string `json:"refresh_token,omitempty"`
	IDToken          string `json:"id_token,omitempty"`
	TokenType        string `json:"token_type,omitempty"`
	ExpiresIn        int64  `json:"expires_in"`
	RefreshExpiresIn int64  `json:"refresh_expires_in,omitempty"`
}

// Tokens exchanges an authorization code for a token set. redirectURI must
// match the one used to build the login URL.
func (c *Client) Tokens(ctx context.Context, code, redirectURI string) (*TokenSet, error) {
	if code == "" {
		return nil, newError(KindInvalidRequest, nil, "ssox: authorization code is required")
	}

	tok, err := c.oauthConfig(redirectURI).Exchange(c.httpContext(ctx), code)
	if err != nil {
		return nil, upstreamError("code exchange", err)
	}

	return tokenSetFrom(tok), nil
}

// RefreshTokens trades a refresh token for a fresh token set.
func (c *Client) RefreshTokens(ctx context.Context, refreshToken string) (*TokenSet, error) {
	if refreshToken == "" {
		return nil, newError(KindInvalidRequest, nil, "ssox: refresh token is required")
	}

	src := c.oauthConfig("").TokenSource(c.httpContext(ctx), &oauth2.Token{RefreshToken: refreshToken})
	tok, err := src.Token()
	if err != nil {
		return nil, upstreamError("token refresh", err)
	}

	return tokenSetFrom(tok), nil
}

func tokenSetFrom(tok *oauth2.Token) *TokenSet {
	ts := &TokenSet{
		AccessToken:      tok.AccessToken,
		RefreshToken:     tok.RefreshToken,
		TokenType:        tok.TokenType,
		ExpiresIn:        tok.ExpiresIn,
		RefreshExpiresIn: extraInt(tok, "refresh_expires_in"),
	}
	if ts.ExpiresIn == 0 {
		ts.ExpiresIn = extraInt(tok, "expires_in")
	}
	if idToken, ok := tok.Extra("id_token").(string); ok {
		ts.IDToken = idToken
	}
	return ts
}

// extraInt reads a numeric field that x/oauth2 did not map onto Token.
func extraInt(tok *oauth2.Token, key string) int64 {
	switch v := tok.Extra(key).(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case string:
		n, _ := strconv.ParseInt(v, 10, 64)
		return n
	default:
		return 0
	}
}

func upstreamError(op string, err error) *Error {
	var re *oauth2.RetrieveError
	if errors.As(err, &re) {
		msg := re.ErrorCode
		if re.ErrorDescription != "" {
			msg += ": " + re.ErrorDescription
		}
		if msg == "" {
			msg = re.Response.Status
		}
		return newError(KindUpstream, err, "ssox: %s failed: %s", op, msg)
	}
	return newError(KindUpstream, err, "ssox: %s failed: %v", op, err)
}
