// Package uri builds deep links into the note application through its
// advanced-uri handler.
package uri

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultScheme is the URI scheme registered by the note application.
const DefaultScheme = "obsidian"

// Locator addresses a note, and optionally a heading inside it, in a vault.
type Locator struct {
	Scheme  string
	Vault   string
	Path    string
	Heading string
}

// String renders the locator as
// scheme://advanced-uri?vault=..&filepath=..[&heading=..].
func (l Locator) String() string {
	scheme := l.Scheme
	if scheme == "" {
		scheme = DefaultScheme
	}

	var b strings.Builder
	b.WriteString(scheme)
	b.WriteString("://advanced-uri?vault=")
	b.WriteString(Escape(l.Vault))
	b.WriteString("&filepath=")
	b.WriteString(Escape(l.Path))
	if heading := CleanHeading(l.Heading); heading != "" {
		b.WriteString("&heading=")
		b.WriteString(Escape(heading))
	}
	return b.String()
}

// CleanHeading removes every '#' from a header line and trims it. The
// application rejects '#' inside the heading parameter.
func CleanHeading(header string) string {
	return strings.TrimSpace(strings.ReplaceAll(header, "#", ""))
}

// Escape percent-encodes s as a URL component. Spaces become %20.
func Escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// Parse reads a locator produced by String. The heading, when present, is
// the cleaned heading text.
func Parse(raw string) (Locator, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Locator{}, err
	}
	if u.Host != "advanced-uri" {
		return Locator{}, fmt.Errorf("uri: %q is not an advanced-uri locator", raw)
	}
	values := u.Query()
	return Locator{
		Scheme:  u.Scheme,
		Vault:   values.Get("vault"),
		Path:    values.Get("filepath"),
		Heading: values.Get("heading"),
	}, nil
}
