// Package extract turns uploaded raw bytes into bounded plain text.
package extract

import (
	"strings"
	"unicode/utf8"
)

// DefaultMaxChars caps extracted text when no explicit limit is given.
const DefaultMaxChars = 100_000

// Text decodes data as best-effort UTF-8, replacing invalid sequences with
// the Unicode replacement character, and truncates the result to maxChars
// characters. A non-positive maxChars falls back to DefaultMaxChars.
func Text(data []byte, maxChars int) string {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	s := strings.ToValidUTF8(string(data), string(utf8.RuneError))
	if r := []rune(s); len(r) > maxChars {
		return string(r[:maxChars])
	}
	return s
}
