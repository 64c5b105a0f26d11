package headers

import (
	"errors"
	"strings"
)

type insertOptions struct {
	create bool
}

// InsertOption configures Insert.
type InsertOption func(*insertOptions)

// WithCreate appends the header to the end of the document when it is
// missing instead of failing with ErrHeaderNotFound.
func WithCreate() InsertOption {
	return func(o *insertOptions) {
		o.create = true
	}
}

// Insert places content under header and returns the new document text.
//
// Content goes directly after the last non-blank line of the section. An
// empty section receives the content padded by one blank line on each side.
//
// The result is not written anywhere. Callers that read, insert and write
// back from several processes at once must coordinate themselves.
func Insert(doc, header, content string, opts ...InsertOption) (string, error) {
	var o insertOptions
	for _, opt := range opts {
		opt(&o)
	}

	eol := LineEnding(doc)
	content = strings.ReplaceAll(strings.ReplaceAll(content, "\r\n", "\n"), "\n", eol)

	lines := Lines(doc)
	b, err := resolveLines(lines, header)
	if err != nil {
		if !o.create || !errors.Is(err, ErrHeaderNotFound) {
			return "", err
		}
		lines = appendHeader(lines, header)
		if b, err = resolveLines(lines, header); err != nil {
			return "", err
		}
	}

	if b.HasContent() {
		lines = insertAt(lines, b.LastContent+1, content)
	} else {
		lines = ensureBlank(lines, b.Start+1)
		lines = insertAt(lines, b.Start+2, content)
		lines = ensureBlank(lines, b.Start+3)
	}
	return strings.Join(lines, eol), nil
}

// appendHeader adds header as the last line, separated from any preceding
// text by a blank line.
func appendHeader(lines []string, header string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) > 0 {
		lines = append(lines, "")
	}
	return append(lines, header)
}

func ensureBlank(lines []string, at int) []string {
	if at >= len(lines) || lines[at] != "" {
		return insertAt(lines, at, "")
	}
	return lines
}

func insertAt(lines []string, at int, value string) []string {
	if at >= len(lines) {
		return append(lines, value)
	}
	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:at]...)
	out = append(out, value)
	return append(out, lines[at:]...)
}
