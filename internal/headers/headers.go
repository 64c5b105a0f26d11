// Package headers locates Markdown section headers inside a single note and
// computes the line ranges they own.
//
// Two boundary rules live here and are intentionally kept apart. Index
// reports level-aware ranges where a parent spans its nested children.
// Resolve reports the insertion range of one header, which stops at the next
// header of any level and ignores trailing blank lines.
package headers

import (
	"errors"
	"regexp"
	"strings"
)

// ErrHeaderNotFound is returned when no line of a document equals the
// requested header text.
var ErrHeaderNotFound = errors.New("header not found")

const maxLevel = 6

var headerLine = regexp.MustCompile(`^#{1,6} .+$`)

// Section is a header and the span of lines it owns within a document.
type Section struct {
	Text  string
	Level int
	Start int
	End   int
}

// Lines splits a document on line feeds and drops the carriage return of
// CRLF line endings. A trailing newline yields a final empty line, matching
// how the note is written back.
func Lines(doc string) []string {
	lines := strings.Split(doc, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// LineEnding returns "\r\n" when doc uses CRLF line endings and "\n"
// otherwise.
func LineEnding(doc string) string {
	if strings.Contains(doc, "\r\n") {
		return "\r\n"
	}
	return "\n"
}

// IsHeader reports whether line is a Markdown header: one to six hashes, a
// single space, then text.
func IsHeader(line string) bool {
	return headerLine.MatchString(strings.TrimSuffix(line, "\r"))
}

// Level returns the number of leading hashes of a header line, or zero when
// the line is not a header.
func Level(line string) int {
	if !IsHeader(line) {
		return 0
	}
	n := 0
	for n < len(line) && n < maxLevel && line[n] == '#' {
		n++
	}
	return n
}

// HeaderStrings returns the trimmed header lines of doc in document order.
// Duplicates are kept.
func HeaderStrings(doc string) []string {
	var out []string
	for _, line := range Lines(doc) {
		if IsHeader(line) {
			out = append(out, trimHeader(line))
		}
	}
	return out
}

func trimHeader(line string) string {
	return strings.TrimSpace(line)
}
