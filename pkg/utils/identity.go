package utils

import "strings"

// NormalizeEmail lowercases and trims an email so StudioUser lookups match
// case-insensitively.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsURLSafeCode reports whether a portfolio/product code can appear in a URL
// path segment without escaping: lowercase letters, digits, and hyphens.
func IsURLSafeCode(code string) bool {
	if code == "" {
		return false
	}
	for _, r := range code {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '-':
		default:
			return false
		}
	}
	return true
}
