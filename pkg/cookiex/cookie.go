// Package cookiex reads and writes the cookies used by the SSO routes.
// Set-Cookie values are built by hand with a fixed attribute order and
// encodeURIComponent value encoding.
package cookiex

import (
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"
)

// Cookie names shared by the SSO routes.
const (
	PostLoginRedirectCookie = "post_login_redirect_url"
	RefreshTokenCookie      = "refresh_token"
)

// Options are the optional Set-Cookie attributes. Zero values are omitted.
type Options struct {
	Domain   string
	Path     string
	Expires  time.Time
	HttpOnly bool
	Secure   bool
	SameSite string // "Strict", "Lax" or "None"
}

// Parse turns a raw Cookie header into a name/value map.
//
// Segments are split on the first '='. Names and values are trimmed and values
// are URL-decoded. A segment without '=' maps to an empty value, an empty
// segment is skipped and a value that fails to decode, or decodes to invalid UTF-8, is kept as sent.
func Parse(header string) map[string]string {
	cookies := make(map[string]string)
	if header == "" {
		return cookies
	}

	for segment := range strings.SplitSeq(header, ";") {
		name, value, _ := strings.Cut(segment, "=")
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if name == "" && value == "" {
			continue
		}

		if decoded, err := url.PathUnescape(value); err == nil && utf8.ValidString(decoded) {
			value = decoded
		}
		cookies[name] = value
	}

	return cookies
}

// Jar parses the cookies on the request.
func Jar(r *http.Request) map[string]string {
	return Parse(r.Header.Get("Cookie"))
}

// Serialize renders a single Set-Cookie value. Attributes are always emitted
// in the order Domain, Path, Expires, HttpOnly, Secure, SameSite.
func Serialize(name, value string, opts Options) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('=')
	b.WriteString(EncodeURIComponent(value))

	if opts.Domain != "" {
		b.WriteString("; Domain=")
		b.WriteString(opts.Domain)
	}
	if opts.Path != "" {
		b.WriteString("; Path=")
		b.WriteString(opts.Path)
	}
	if !opts.Expires.IsZero() {
		b.WriteString("; Expires=")
		b.WriteString(opts.Expires.UTC().Format(http.TimeFormat))
	}
	if opts.HttpOnly {
		b.WriteString("; HttpOnly")
	}
	if opts.Secure {
		b.WriteString("; Secure")
	}
	if opts.SameSite != "" {
		b.WriteString("; SameSite=")
		b.WriteString(opts.SameSite)
	}

	return b.String()
}

// Set writes exactly one Set-Cookie header, replacing any previous value.
func Set(w http.ResponseWriter, name, value string, opts Options) {
	w.Header().Set("Set-Cookie", Serialize(name, value, opts))
}

// EncodeURIComponent escapes s the same way browsers' encodeURIComponent
// does: everything except A-Z a-z 0-9 - _ . ! ~ * ' ( ) is percent-encoded and
// spaces become %20.
func EncodeURIComponent(s string) string {
	escaped := url.QueryEscape(s)
	return uriComponentFixups.Replace(escaped)
}

var uriComponentFixups = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)
