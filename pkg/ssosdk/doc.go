/*
Package ssosdk is a client for the SSO service's HTTP surface.

Browser flows (login, logout) are redirects, so the client never follows
redirects and instead hands back the Location and any cookies that were set:

	client := ssosdk.NewClient("http://localhost:8080")

	// Where would the browser be sent to log in with IDIR?
	redirect, err := client.StartLogin(ctx, "idir", "/dashboard")

	// Trade the refresh_token cookie for a new token set.
	tokens, err := client.RefreshTokens(ctx, refreshToken)

	// Call a protected route with an access token.
	info, err := client.GetUserInfo(ctx, tokens.AccessToken)

Every failure the service reports comes back as an *APIError, whichever of
the service's error shapes it was written in.
*/
package ssosdk
