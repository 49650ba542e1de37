// Package util provides shared utility functions used across the application.
package util

import (
	"strings"
)

// StripHash removes the # prefix from a hex colour string.
// This is useful for formats that don't expect the hash prefix.
func StripHash(hex string) string {
	return strings.TrimPrefix(hex, "#")
}

// Identifier turns a slot or key name such as "oldButton-background-hovered"
// into an identifier safe for template and config formats by replacing every
// character other than letters, digits and underscores with an underscore.
func Identifier(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
