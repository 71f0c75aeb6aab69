package slogx

import "net/url"

func redirectHost(location string) string {
	if location == "" {
		return ""
	}
	u, err := url.Parse(location)
	if err != nil {
		return "invalid"
	}
	return u.Host
}
