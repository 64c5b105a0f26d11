package search

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/Paintersrp/notehead/internal/glob"
	"github.com/Paintersrp/notehead/internal/uri"
)

// Engine answers compound header queries against a vault header index.
type Engine struct {
	cfg    Config
	fsys   fs.FS
	logger *slog.Logger
}

// NewEngine returns an engine that expands path globs against fsys. A nil
// fsys matches path globs against the indexed paths instead of listing the
// filesystem.
func NewEngine(cfg Config, fsys fs.FS, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{cfg: cfg, fsys: fsys, logger: logger}
}

// Search evaluates raw against idx. Anomalies such as a missing ':' or a
// malformed path glob never abort the search; they are logged and reported
// in Response.Warnings.
func (e *Engine) Search(idx *Index, raw string) Response {
	q := ParseQuery(raw)

	var resp Response
	if q.Ambiguous {
		msg := fmt.Sprintf("query %q has no ':'; searching file paths only", raw)
		e.logger.Warn("ambiguous query syntax", "query", raw)
		resp.Warnings = append(resp.Warnings, msg)
	}

	files, warning := e.candidates(idx, q)
	if warning != "" {
		resp.Warnings = append(resp.Warnings, warning)
	}

	combined := flatten(idx, files)
	if q.HasHeader {
		re := glob.Compile(glob.Wildcard + querySep + q.HeaderGlob)
		kept := combined[:0]
		for _, c := range combined {
			if re.MatchString(c) {
				kept = append(kept, c)
			}
		}
		combined = kept
	}

	resp.Items = make([]Item, 0, len(combined))
	for _, c := range combined {
		file, header, _ := glob.SplitOnce(c, querySep)
		resp.Items = append(resp.Items, e.item(file, header))
	}

	e.logger.Debug("search complete",
		"query", raw,
		"indexed", idx.Len(),
		"candidates", len(files),
		"results", len(resp.Items),
	)
	return resp
}

// candidates applies the path stage and returns the surviving note paths in
// listing order.
func (e *Engine) candidates(idx *Index, q Query) ([]string, string) {
	if !q.HasPath {
		return idx.Files(), ""
	}

	listing, err := e.expand(idx, q.PathGlob)
	if err != nil {
		e.logger.Warn("malformed path glob, matching literally", "glob", q.PathGlob, "error", err)
		return literalMatches(idx, q.PathGlob),
			fmt.Sprintf("path glob %q is malformed; matched as literal text", q.PathGlob)
	}

	files := make([]string, 0, len(listing))
	for _, p := range listing {
		if _, ok := idx.Headers(p); ok {
			files = append(files, p)
		}
	}
	return files, ""
}

func (e *Engine) expand(idx *Index, pattern string) ([]string, error) {
	if e.fsys != nil {
		return doublestar.Glob(e.fsys, pattern,
			doublestar.WithFilesOnly(),
			doublestar.WithCaseInsensitive(),
		)
	}

	if !doublestar.ValidatePattern(pattern) {
		return nil, doublestar.ErrBadPattern
	}
	lowered := strings.ToLower(pattern)
	var out []string
	for _, p := range idx.Files() {
		ok, err := doublestar.Match(lowered, strings.ToLower(p))
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func literalMatches(idx *Index, pattern string) []string {
	needle := strings.ToLower(glob.Literal(pattern))
	var out []string
	for _, p := range idx.Files() {
		if strings.Contains(strings.ToLower(p), needle) {
			out = append(out, p)
		}
	}
	return out
}

// flatten emits one "file:header" string per header, and a bare "file:" for
// notes without headers so they stay searchable.
func flatten(idx *Index, files []string) []string {
	var out []string
	for _, f := range files {
		hs, _ := idx.Headers(f)
		if len(hs) == 0 {
			out = append(out, f+querySep)
			continue
		}
		for _, h := range hs {
			out = append(out, f+querySep+h)
		}
	}
	return out
}

func (e *Engine) item(file, header string) Item {
	name := path.Base(file)
	loc := uri.Locator{
		Scheme: e.cfg.Scheme,
		Vault:  e.cfg.VaultName,
		Path:   file,
	}

	title := name
	// len > 1 rather than != "": a one character header counts as absent.
	if len(header) > 1 {
		title = name + querySep + header
		loc.Heading = header
	}

	return Item{
		Title:    title,
		Subtitle: name,
		Arg:      loc.String(),
	}
}
