package pathutil

import (
	"path/filepath"
	"strings"
)

// NormalizePath converts Windows-style separators to the current platform's separator
// and cleans the resulting path.
func NormalizePath(p string) string {
	if p == "" {
		return ""
	}

	replaced := strings.ReplaceAll(p, "\\", "/")
	return filepath.Clean(filepath.FromSlash(replaced))
}

// VaultRelative returns the path to target relative to the provided vault directory.
// The returned path always uses forward slashes, which is the form notes are
// indexed and addressed by.
func VaultRelative(vaultDir, target string) (string, error) {
	base := NormalizePath(vaultDir)
	cleanedTarget := NormalizePath(target)

	rel, err := filepath.Rel(base, cleanedTarget)
	if err != nil {
		return "", err
	}

	return filepath.ToSlash(rel), nil
}

// Within reports whether the vault-relative path rel stays inside the vault
// once joined and cleaned.
func Within(rel string) bool {
	cleaned := filepath.ToSlash(NormalizePath(rel))
	if cleaned == "" || cleaned == "." || filepath.IsAbs(cleaned) || strings.HasPrefix(cleaned, "/") {
		return false
	}
	return cleaned != ".." && !strings.HasPrefix(cleaned, "../")
}

// IsHidden reports whether a path segment is a dot-file or dot-directory,
// such as the application's .obsidian settings folder.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}
