package search

// Config describes how results address notes.
type Config struct {
	// VaultName is the vault name reported to the note application.
	VaultName string
	// Scheme is the URI scheme of generated locators. Empty means the
	// application default.
	Scheme string
}

// Query is a parsed compound query of the form "pathGlob:headerGlob".
type Query struct {
	// PathGlob filters notes by vault-relative path. Only meaningful when
	// HasPath is set.
	PathGlob string
	HasPath  bool
	// HeaderGlob filters header text. When HasHeader is false every header
	// matches, including the empty header of a note without any.
	HeaderGlob string
	HasHeader  bool
	// Ambiguous is set when the raw query had no ':' and was read as a path
	// filter only.
	Ambiguous bool
}

// Item is one addressable search result.
type Item struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Arg      string `json:"arg"`
}

// Response holds the results of a search and any non-fatal diagnostics.
type Response struct {
	Items    []Item   `json:"items"`
	Warnings []string `json:"-"`
}
