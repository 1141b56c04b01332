package sanitization

import (
	"strings"
	"unicode/utf16"
)

// htmlReplacer escapes the five characters that matter inside HTML text and
// attribute values. Each character is rewritten exactly once, so "&lt;" in the
// input becomes "&amp;lt;" and "<" always becomes "&lt;".
var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML replaces & < > " ' with their entity equivalents
func EscapeHTML(input string) string {
	return htmlReplacer.Replace(input)
}

// Truncate caps input at max UTF-16 code units, the length a browser reports,
// so an emoji counts as two. A character that would straddle the cap is
// dropped whole instead of being split into a lone surrogate. A cap can split
// an entity produced by EscapeHTML; callers that escape first accept that.
func Truncate(input string, max int) string {
	if max <= 0 {
		return ""
	}
	units := 0
	for pos, r := range input {
		n := utf16.RuneLen(r)
		if n < 1 {
			n = 1
		}
		if units+n > max {
			return input[:pos]
		}
		units += n
	}
	return input
}

// SanitizeField trims, escapes and then caps a single form value
func SanitizeField(input string, max int) string {
	return Truncate(EscapeHTML(strings.TrimSpace(input)), max)
}
