package utils

import (
	"strings"
	"unicode/utf8"
)

// RuneLength returns the number of characters in s.
func RuneLength(s string) int {
	return utf8.RuneCountInString(s)
}

// IsLowercase reports whether lowercasing s leaves it unchanged.
// Strings without any cased letters count as lowercase.
func IsLowercase(s string) bool {
	return strings.ToLower(s) == s
}

// IsValidText reports whether s is well-formed UTF-8.
func IsValidText(s string) bool {
	return utf8.ValidString(s)
}

// TrimLineEnding strips a trailing "\n" or "\r\n".
func TrimLineEnding(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
