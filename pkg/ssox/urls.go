package ssox

import (
	"net/url"

	"golang.org/x/oauth2"
)

// LoginParams are the per-request inputs of a login redirect.
type LoginParams struct {
	// IDPHint preselects the identity provider (idir, bceidbasic, githubpublic, ...).
	IDPHint     string
	RedirectURI string
}

// LogoutParams are the per-request inputs of a logout redirect.
type LogoutParams struct {
	IDToken               string
	PostLogoutRedirectURI string
}

// LoginURL builds the Keycloak authorization URL for the code flow.
func (c *Client) LoginURL(p LoginParams) (string, error) {
	if p.RedirectURI == "" {
		return "", newError(KindInvalidRequest, nil, "ssox: redirect uri is required")
	}

	var opts []oauth2.AuthCodeOption
	if p.IDPHint != "" {
		opts = append(opts, oauth2.SetAuthURLParam("kc_idp_hint", p.IDPHint))
	}

	return c.oauthConfig(p.RedirectURI).AuthCodeURL("", opts...), nil
}

// LogoutURL builds the Keycloak end-session URL. For the hosted environments
// it is wrapped in the SiteMinder logoff URL so the government session is
// terminated as well.
func (c *Client) LogoutURL(p LogoutParams) (string, error) {
	if p.IDToken == "" {
		return "", newError(KindInvalidRequest, nil, "ssox: id token is required")
	}

	q := url.Values{}
	q.Set("id_token_hint", p.IDToken)
	if p.PostLogoutRedirectURI != "" {
		q.Set("post_logout_redirect_uri", p.PostLogoutRedirectURI)
	}
	keycloakLogout := c.protocolURL("/logout") + "?" + q.Encode()

	if c.siteMinder == "" {
		return keycloakLogout, nil
	}

	sm := url.Values{}
	sm.Set("retnow", "1")
	sm.Set("returl", keycloakLogout)
	return c.siteMinder + "?" + sm.Encode(), nil
}
