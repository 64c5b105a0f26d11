package cmd

import (
	"fmt"
	"path"
	"path/filepath"

	"github.com/Paintersrp/notehead/internal/pathutil"
	"github.com/Paintersrp/notehead/internal/state"
)

const noteExt = ".md"

// ResolveNotePath turns a note argument into a vault-relative path. Absolute
// paths must point inside the vault; ".md" is added when the argument has no
// extension.
func ResolveNotePath(s *state.State, arg string) (string, error) {
	if s == nil || s.Vault == nil {
		return "", fmt.Errorf("state is not initialized")
	}
	if arg == "" {
		return "", fmt.Errorf("a note path is required")
	}

	rel := arg
	if filepath.IsAbs(arg) {
		var err error
		rel, err = pathutil.VaultRelative(s.Vault.Root(), arg)
		if err != nil {
			return "", fmt.Errorf("failed to resolve path %q relative to vault %q: %w", arg, s.Vault.Root(), err)
		}
	}

	rel = filepath.ToSlash(pathutil.NormalizePath(rel))
	if !pathutil.Within(rel) {
		return "", fmt.Errorf("path %q is outside the vault %q", arg, s.Vault.Root())
	}
	if path.Ext(rel) == "" {
		rel += noteExt
	}
	return rel, nil
}
