package fzf

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/muesli/termenv"

	"github.com/Paintersrp/notehead/internal/headers"
	"github.com/Paintersrp/notehead/internal/search"
	"github.com/Paintersrp/notehead/internal/uri"
	"github.com/Paintersrp/notehead/internal/vault"
)

// ErrNoSelection is returned when the picker is closed without a choice.
var ErrNoSelection = errors.New("no result selected")

// FuzzyFinder picks one search result, previewing the section it points at.
type FuzzyFinder struct {
	vault  *vault.Vault
	Header string
	items  []search.Item
}

func NewFuzzyFinder(v *vault.Vault, header string) *FuzzyFinder {
	return &FuzzyFinder{vault: v, Header: header}
}

// Pick runs the finder over items and returns the chosen one.
func (f *FuzzyFinder) Pick(items []search.Item, query string) (search.Item, error) {
	if len(items) == 0 {
		return search.Item{}, ErrNoSelection
	}
	f.items = items

	options := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(f.renderPreview),
	}
	if query != "" {
		options = append(options, fuzzyfinder.WithQuery(query))
	}
	if f.Header != "" {
		options = append(options, fuzzyfinder.WithHeader(f.Header))
	}

	idx, err := fuzzyfinder.Find(items, func(i int) string {
		return items[i].Title
	}, options...)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return search.Item{}, ErrNoSelection
		}
		return search.Item{}, fmt.Errorf("error selecting result: %w", err)
	}
	return items[idx], nil
}

func (f *FuzzyFinder) renderPreview(i, w, h int) string {
	if i == -1 {
		return ""
	}

	source, err := f.previewSource(f.items[i])
	if err != nil {
		return "Error reading note"
	}

	wrap := w - 4
	if wrap < 20 {
		wrap = 20
	}
	return RenderMarkdown(source, wrap)
}

// previewSource returns the text of the section an item points at, or the
// whole note when the item carries no heading.
func (f *FuzzyFinder) previewSource(item search.Item) (string, error) {
	loc, err := uri.Parse(item.Arg)
	if err != nil {
		return "", err
	}
	text, err := f.vault.Read(loc.Path)
	if err != nil {
		return "", err
	}
	if loc.Heading == "" {
		return text, nil
	}

	lines := headers.Lines(text)
	for _, s := range headers.Index(text) {
		if uri.CleanHeading(s.Text) == loc.Heading {
			return strings.Join(lines[s.Start:s.End+1], "\n"), nil
		}
	}
	return text, nil
}

// RenderMarkdown renders markdown for the terminal. Rendering failures fall
// back to the raw text.
func RenderMarkdown(content string, wrap int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dracula"),
		glamour.WithWordWrap(wrap),
		glamour.WithColorProfile(termenv.ANSI256),
	)
	if err != nil {
		return content
	}

	markdown, err := r.Render(content)
	if err != nil {
		return content
	}
	return markdown
}
