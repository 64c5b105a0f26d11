// Package glob compiles the small wildcard language used by header queries.
//
// Only `*` is special. Everything else matches literally and comparison is
// case-insensitive across the whole string.
package glob

import (
	"regexp"
	"strings"
)

// Wildcard is the only special glob character.
const Wildcard = "*"

// Compile translates pattern into an anchored, case-insensitive regular
// expression. `*` becomes `.*` and may span line breaks.
func Compile(pattern string) *regexp.Regexp {
	return regexp.MustCompile(Translate(pattern))
}

// Translate returns the regular expression source for pattern.
func Translate(pattern string) string {
	parts := strings.Split(pattern, Wildcard)
	for i, part := range parts {
		parts[i] = regexp.QuoteMeta(part)
	}
	return `(?is)^` + strings.Join(parts, ".*") + `$`
}

// Wrap pads a non-empty pattern with a leading and trailing wildcard unless
// one is already there, so "python" behaves as "*python*".
func Wrap(pattern string) string {
	if pattern == "" {
		return ""
	}
	if !strings.HasPrefix(pattern, Wildcard) {
		pattern = Wildcard + pattern
	}
	if !strings.HasSuffix(pattern, Wildcard) {
		pattern += Wildcard
	}
	return pattern
}

// Literal strips wildcards from pattern, leaving the text it must contain.
func Literal(pattern string) string {
	return strings.ReplaceAll(pattern, Wildcard, "")
}

// SplitOnce splits s on the first sep. The remainder is returned intact, so
// a header such as "## Time: 10:30" survives a "file:header" round trip.
// found is false when sep does not occur; head is then all of s.
func SplitOnce(s, sep string) (head, tail string, found bool) {
	return strings.Cut(s, sep)
}
