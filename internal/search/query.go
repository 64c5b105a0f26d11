package search

import (
	"github.com/Paintersrp/notehead/internal/glob"
)

const querySep = ":"

// ParseQuery splits raw on its first ':' into a path glob and a header glob.
// Non-empty globs are wrapped in wildcards. Without a ':' the whole string is
// a path glob and the query is flagged as ambiguous.
func ParseQuery(raw string) Query {
	pathPart, headerPart, found := glob.SplitOnce(raw, querySep)

	q := Query{Ambiguous: !found}
	if pathPart != "" {
		q.PathGlob = glob.Wrap(pathPart)
		q.HasPath = true
	}
	if headerPart != "" {
		q.HeaderGlob = glob.Wrap(headerPart)
		q.HasHeader = true
	}
	return q
}
