package ssox

import "slices"

// HasAllRoles reports whether userRoles contains every required role.
func HasAllRoles(userRoles, required []string) bool {
	for _, r := range required {
		if !slices.Contains(userRoles, r) {
			return false
		}
	}
	return true
}

// HasAtLeastOneRole reports whether userRoles contains any required role.
func HasAtLeastOneRole(userRoles, required []string) bool {
	for _, r := range required {
		if slices.Contains(userRoles, r) {
			return true
		}
	}
	return false
}
