// Package vault reads and writes notes inside a vault directory and builds the
// header index used by search.
package vault

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Paintersrp/notehead/internal/headers"
	"github.com/Paintersrp/notehead/internal/pathutil"
	"github.com/Paintersrp/notehead/internal/search"
)

// ErrOutsideVault is returned for paths that resolve outside the vault root.
var ErrOutsideVault = errors.New("path is outside the vault")

const noteExt = ".md"

// Vault is a directory tree of Markdown notes.
type Vault struct {
	root    string
	name    string
	ignored []string
}

// New returns a vault rooted at root. An empty name defaults to the base name
// of root. Folders named in ignored are skipped when listing notes.
func New(root, name string, ignored []string) *Vault {
	root = pathutil.NormalizePath(root)
	if strings.TrimSpace(name) == "" {
		name = filepath.Base(root)
	}
	return &Vault{
		root:    root,
		name:    name,
		ignored: append([]string(nil), ignored...),
	}
}

// Root returns the vault directory.
func (v *Vault) Root() string { return v.root }

// Name returns the vault name used in locators.
func (v *Vault) Name() string { return v.name }

// FS returns the vault as a filesystem for glob expansion.
func (v *Vault) FS() fs.FS { return os.DirFS(v.root) }

// Abs resolves a vault-relative path to an absolute one.
func (v *Vault) Abs(rel string) (string, error) {
	if !pathutil.Within(rel) {
		return "", fmt.Errorf("vault: %q: %w", rel, ErrOutsideVault)
	}
	return filepath.Join(v.root, pathutil.NormalizePath(rel)), nil
}

// Notes lists every Markdown note as a forward-slash vault-relative path in
// lexical order. Hidden folders such as .obsidian and configured ignored
// folders are skipped.
func (v *Vault) Notes(ctx context.Context) ([]string, error) {
	var notes []string
	err := filepath.WalkDir(v.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to access path %s: %w", path, err)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if d.IsDir() {
			if path != v.root && v.skipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != noteExt || pathutil.IsHidden(d.Name()) {
			return nil
		}

		rel, err := pathutil.VaultRelative(v.root, path)
		if err != nil {
			return fmt.Errorf("failed to compute relative path for %s: %w", path, err)
		}
		notes = append(notes, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("vault: scanning %s: %w", v.root, err)
	}
	return notes, nil
}

func (v *Vault) skipDir(name string) bool {
	if pathutil.IsHidden(name) {
		return true
	}
	for _, ignored := range v.ignored {
		if ignored != "" && strings.EqualFold(name, ignored) {
			return true
		}
	}
	return false
}

// HeaderIndex reads every note and records its headers. The index is built
// fresh on each call.
func (v *Vault) HeaderIndex(ctx context.Context) (*search.Index, error) {
	notes, err := v.Notes(ctx)
	if err != nil {
		return nil, err
	}

	idx := search.NewIndex()
	for _, rel := range notes {
		text, err := v.Read(rel)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		idx.Add(rel, headers.HeaderStrings(text))
	}
	return idx, nil
}

// Read returns the contents of a note.
func (v *Vault) Read(rel string) (string, error) {
	path, err := v.Abs(rel)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("vault: reading %s: %w", rel, err)
	}
	return string(data), nil
}

// Exists reports whether a note exists.
func (v *Vault) Exists(rel string) (bool, error) {
	path, err := v.Abs(rel)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("vault: checking %s: %w", rel, err)
}

// Write replaces the contents of a note, creating parent folders as needed.
func (v *Vault) Write(rel, text string) error {
	path, err := v.Abs(rel)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("vault: creating folder for %s: %w", rel, err)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("vault: writing %s: %w", rel, err)
	}
	return nil
}

// InsertUnder reads a note, places content under header and writes the note
// back. With create set a missing header is appended first.
//
// Read and write are not atomic together; concurrent writers to the same
// note can lose updates.
func (v *Vault) InsertUnder(rel, header, content string, create bool) error {
	text, err := v.Read(rel)
	if err != nil {
		return err
	}

	var opts []headers.InsertOption
	if create {
		opts = append(opts, headers.WithCreate())
	}
	updated, err := headers.Insert(text, header, content, opts...)
	if err != nil {
		return fmt.Errorf("vault: %s: %w", rel, err)
	}
	return v.Write(rel, updated)
}
