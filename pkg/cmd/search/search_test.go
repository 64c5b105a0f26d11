package search

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	searchsvc "github.com/Paintersrp/notehead/internal/search"
	"github.com/Paintersrp/notehead/internal/state"
	"github.com/Paintersrp/notehead/internal/vault"
)

func setupSearchTest(t *testing.T, notes map[string]string) *state.Loader {
	t.Helper()

	vaultDir := t.TempDir()
	for name, content := range notes {
		path := filepath.Join(vaultDir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create note dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write note: %v", err)
		}
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	v := vault.New(vaultDir, "test_notes", nil)
	st := &state.State{
		Vault:  v,
		Search: searchsvc.NewEngine(searchsvc.Config{VaultName: v.Name()}, v.FS(), logger),
		Logger: logger,
	}

	l := state.NewLoader(viper.New(), io.Discard)
	l.Set(st)
	return l
}

func execute(t *testing.T, l *state.Loader, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewCmdSearch(l)
	cmd.SetArgs(append([]string{}, args...))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

var testNotes = map[string]string{
	"code.python.md":           "## Datetime\n\n## Random\n",
	"code.python.lib.numpy.md": "## Make a random array\n",
	"nothing.md":               "No headers here",
}

func TestSearchPrintsItems(t *testing.T) {
	l := setupSearchTest(t, testNotes)

	stdout, _, err := execute(t, l, "python:datetime")
	if err != nil {
		t.Fatalf("search returned error: %v", err)
	}

	var resp searchsvc.Response
	if err := json.Unmarshal([]byte(stdout), &resp); err != nil {
		t.Fatalf("failed to decode output %q: %v", stdout, err)
	}
	if len(resp.Items) != 1 {
		t.Fatalf("expected 1 item, got %+v", resp.Items)
	}
	want := searchsvc.Item{
		Title:    "code.python.md:## Datetime",
		Subtitle: "code.python.md",
		Arg:      "obsidian://advanced-uri?vault=test_notes&filepath=code.python.md&heading=Datetime",
	}
	if resp.Items[0] != want {
		t.Fatalf("unexpected item %+v, want %+v", resp.Items[0], want)
	}
}

func TestSearchEmptyResultIsArray(t *testing.T) {
	l := setupSearchTest(t, testNotes)

	stdout, _, err := execute(t, l, ":no such header")
	if err != nil {
		t.Fatalf("search returned error: %v", err)
	}
	if !strings.Contains(stdout, `"items": []`) {
		t.Fatalf("expected empty items array, got %q", stdout)
	}
}

func TestSearchAmbiguousQueryWarns(t *testing.T) {
	l := setupSearchTest(t, testNotes)

	stdout, stderr, err := execute(t, l, "nothing")
	if err != nil {
		t.Fatalf("search returned error: %v", err)
	}
	if !strings.Contains(stderr, "warning:") {
		t.Fatalf("expected warning on stderr, got %q", stderr)
	}
	if !strings.Contains(stdout, `"title": "nothing.md"`) {
		t.Fatalf("expected header-less note in output, got %q", stdout)
	}
}

func TestSearchCopiesFirstLocator(t *testing.T) {
	l := setupSearchTest(t, testNotes)

	orig := writeClipboard
	var copied string
	writeClipboard = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	if _, _, err := execute(t, l, ":random", "--copy"); err != nil {
		t.Fatalf("search returned error: %v", err)
	}
	if !strings.HasPrefix(copied, "obsidian://advanced-uri?vault=test_notes&filepath=code.python") {
		t.Fatalf("unexpected copied locator %q", copied)
	}
}

func TestSearchPickPrintsChosenLocator(t *testing.T) {
	l := setupSearchTest(t, testNotes)

	origTerminal, origPick := isTerminal, pickItem
	t.Cleanup(func() { isTerminal, pickItem = origTerminal, origPick })

	isTerminal = func() bool { return true }
	var offered []searchsvc.Item
	pickItem = func(_ *state.State, items []searchsvc.Item, _ string) (searchsvc.Item, error) {
		offered = items
		return items[len(items)-1], nil
	}

	stdout, _, err := execute(t, l, ":random", "--pick")
	if err != nil {
		t.Fatalf("search returned error: %v", err)
	}
	if len(offered) != 2 {
		t.Fatalf("expected 2 items offered, got %+v", offered)
	}
	if strings.TrimSpace(stdout) != offered[1].Arg {
		t.Fatalf("expected chosen locator, got %q", stdout)
	}
}

func TestSearchPickRequiresTerminal(t *testing.T) {
	l := setupSearchTest(t, testNotes)

	orig := isTerminal
	t.Cleanup(func() { isTerminal = orig })
	isTerminal = func() bool { return false }

	if _, _, err := execute(t, l, ":random", "--pick"); err == nil {
		t.Fatalf("expected error without a terminal")
	}
}

func TestSearchWithoutQueryListsEverything(t *testing.T) {
	l := setupSearchTest(t, testNotes)

	stdout, stderr, err := execute(t, l)
	if err != nil {
		t.Fatalf("search returned error: %v", err)
	}
	if stderr != "" {
		t.Fatalf("expected no warnings, got %q", stderr)
	}

	var resp searchsvc.Response
	if err := json.Unmarshal([]byte(stdout), &resp); err != nil {
		t.Fatalf("failed to decode output %q: %v", stdout, err)
	}
	if len(resp.Items) != 4 {
		t.Fatalf("expected 4 items, got %+v", resp.Items)
	}
}
