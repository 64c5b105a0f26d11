package insert

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/Paintersrp/notehead/internal/headers"
	"github.com/Paintersrp/notehead/internal/state"
	"github.com/Paintersrp/notehead/internal/vault"
)

func setupInsertTest(t *testing.T, content string) (*state.Loader, string) {
	t.Helper()
	vaultDir := t.TempDir()
	notePath := filepath.Join(vaultDir, "daily.md")
	if err := os.WriteFile(notePath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write note: %v", err)
	}

	origTerminal := isTerminal
	t.Cleanup(func() { isTerminal = origTerminal })
	isTerminal = func() bool { return false }

	l := state.NewLoader(viper.New(), io.Discard)
	l.Set(&state.State{
		Vault:  vault.New(vaultDir, "", nil),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	return l, notePath
}

func execute(t *testing.T, l *state.Loader, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewCmdInsert(l)
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	return out.String(), err
}

func readNote(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read note: %v", err)
	}
	return string(data)
}

func TestInsertJoinsContentArgs(t *testing.T) {
	l, notePath := setupInsertTest(t, "## Todo\n\n## Notes\n")

	if _, err := execute(t, l, "daily", "## Todo", "--", "- buy", "milk"); err != nil {
		t.Fatalf("insert returned error: %v", err)
	}
	if _, err := execute(t, l, "daily", "## Todo", "--", "- call mom"); err != nil {
		t.Fatalf("insert returned error: %v", err)
	}

	want := "## Todo\n\n- buy milk\n- call mom\n\n## Notes\n"
	if got := readNote(t, notePath); got != want {
		t.Fatalf("unexpected note:\n%q\nwant:\n%q", got, want)
	}
}

func TestInsertListItemAfterFlags(t *testing.T) {
	l, notePath := setupInsertTest(t, "## Todo\n\n- foobar\n\n## Notes\n")

	if _, err := execute(t, l, "daily", "## Todo", "--create", "--", "- call mom"); err != nil {
		t.Fatalf("insert returned error: %v", err)
	}

	want := "## Todo\n\n- foobar\n- call mom\n\n## Notes\n"
	if got := readNote(t, notePath); got != want {
		t.Fatalf("unexpected note:\n%q\nwant:\n%q", got, want)
	}
}

func TestInsertDashContentWithoutSeparator(t *testing.T) {
	l, notePath := setupInsertTest(t, "## Todo\n")

	_, err := execute(t, l, "daily", "## Todo", "- call mom")
	if err == nil {
		t.Fatal("expected a flag error for content starting with a dash")
	}
	if !strings.Contains(err.Error(), `must follow "--"`) {
		t.Fatalf("expected error to mention the separator, got %v", err)
	}
	if got := readNote(t, notePath); got != "## Todo\n" {
		t.Fatalf("note changed on error: %q", got)
	}
}

func TestInsertPaste(t *testing.T) {
	l, notePath := setupInsertTest(t, "## Links\n")

	orig := readClipboard
	t.Cleanup(func() { readClipboard = orig })
	readClipboard = func() (string, error) { return "https://example.com\n", nil }

	if _, err := execute(t, l, "daily.md", "## Links", "--paste"); err != nil {
		t.Fatalf("insert returned error: %v", err)
	}
	if got := readNote(t, notePath); got != "## Links\n\nhttps://example.com\n" {
		t.Fatalf("unexpected note %q", got)
	}
}

func TestInsertRequiresContent(t *testing.T) {
	l, _ := setupInsertTest(t, "## Todo\n")

	if _, err := execute(t, l, "daily", "## Todo"); !errors.Is(err, ErrNoContent) {
		t.Fatalf("expected ErrNoContent, got %v", err)
	}
}

func TestInsertMissingHeader(t *testing.T) {
	l, notePath := setupInsertTest(t, "## Todo\n")

	if _, err := execute(t, l, "daily", "## Ideas", "x"); !errors.Is(err, headers.ErrHeaderNotFound) {
		t.Fatalf("expected ErrHeaderNotFound, got %v", err)
	}

	if _, err := execute(t, l, "daily", "## Ideas", "x", "--create"); err != nil {
		t.Fatalf("insert with --create returned error: %v", err)
	}
	if got := readNote(t, notePath); got != "## Todo\n\n## Ideas\n\nx\n" {
		t.Fatalf("unexpected note %q", got)
	}
}

func TestInsertConfirmsOnTerminal(t *testing.T) {
	l, notePath := setupInsertTest(t, "## Todo\n")
	isTerminal = func() bool { return true }

	origConfirm := confirmCreate
	t.Cleanup(func() { confirmCreate = origConfirm })

	asked := 0
	confirmCreate = func(header, rel string) (bool, error) {
		asked++
		return false, nil
	}
	if _, err := execute(t, l, "daily", "## Ideas", "x"); !errors.Is(err, headers.ErrHeaderNotFound) {
		t.Fatalf("expected declined prompt to keep ErrHeaderNotFound, got %v", err)
	}

	confirmCreate = func(header, rel string) (bool, error) {
		asked++
		return true, nil
	}
	if _, err := execute(t, l, "daily", "## Ideas", "x"); err != nil {
		t.Fatalf("insert returned error after confirmation: %v", err)
	}

	if asked != 2 {
		t.Fatalf("expected 2 prompts, got %d", asked)
	}
	if got := readNote(t, notePath); got != "## Todo\n\n## Ideas\n\nx\n" {
		t.Fatalf("unexpected note %q", got)
	}
}
