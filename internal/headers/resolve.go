package headers

import (
	"fmt"
	"strings"
)

// Bounds is the insertion range owned by a header.
type Bounds struct {
	// Start is the line index of the header itself.
	Start int
	// LastContent is the last non-blank line before the next header of any
	// level, or -1 when the section holds no content.
	LastContent int
}

// HasContent reports whether the section has at least one non-blank line.
func (b Bounds) HasContent() bool {
	return b.LastContent >= 0
}

// Resolve finds the first line of doc equal to target and reports the range
// that header owns for insertion purposes. Matching is exact: level, case
// and the space after the hashes must all agree.
//
// Resolve never modifies doc.
func Resolve(doc, target string) (Bounds, error) {
	return resolveLines(Lines(doc), target)
}

func resolveLines(lines []string, target string) (Bounds, error) {
	start := -1
	for i, line := range lines {
		if line == target && IsHeader(line) {
			start = i
			break
		}
	}
	if start < 0 {
		return Bounds{}, fmt.Errorf("%w: %q", ErrHeaderNotFound, target)
	}

	b := Bounds{Start: start, LastContent: -1}
	for i := start + 1; i < len(lines); i++ {
		line := lines[i]
		if IsHeader(line) {
			break
		}
		if strings.TrimSpace(line) != "" {
			b.LastContent = i
		}
	}
	return b, nil
}
