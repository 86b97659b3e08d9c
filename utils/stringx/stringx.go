// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements the small set of string operations that the
//              stampkit parsers and configuration layer need beyond the Go
//              standard library. Focuses on Unicode safety and predictable
//              case-insensitive matching.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with core utilities

package stringx

import (
	"strings"
	"unicode"
)

// IsEmpty returns true if the string is empty (length 0).
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
// This is more comprehensive than IsEmpty and commonly needed in validation.
func IsBlank(s string) bool {
	if len(s) == 0 {
		return true
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank returns true if the string is not empty and contains non-whitespace characters.
// Convenience function that's the inverse of IsBlank.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// EqualIgnoreCase reports whether two strings are equal under Unicode case-folding.
func EqualIgnoreCase(a, b string) bool {
	return strings.EqualFold(a, b)
}

// HasPrefixIgnoreCase reports whether s begins with prefix, ignoring case.
// The comparison uses Unicode case-folding, so it is safe for non-ASCII input.
func HasPrefixIgnoreCase(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	return strings.EqualFold(s[:len(prefix)], prefix)
}

// FirstNonBlank returns the first string from the arguments that is not blank.
// Returns an empty string if all arguments are blank.
func FirstNonBlank(values ...string) string {
	for _, v := range values {
		if IsNotBlank(v) {
			return v
		}
	}
	return ""
}
