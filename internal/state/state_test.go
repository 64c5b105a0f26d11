package state

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/notehead/internal/config"
)

func writeConfig(t *testing.T, home string, cfgData map[string]any) {
	t.Helper()
	path := config.GetConfigPath(home)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create config directory: %v", err)
	}
	data, err := yaml.Marshal(cfgData)
	if err != nil {
		t.Fatalf("failed to marshal config data: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
}

func TestNewStateRequiresVault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("NOTEHEAD_VAULTDIR", "")

	_, err := NewState(config.NewViper(), &bytes.Buffer{})
	var initErr *config.ConfigInitError
	if !errors.As(err, &initErr) {
		t.Fatalf("expected ConfigInitError, got %v", err)
	}
}

func TestNewStateFromConfigFile(t *testing.T) {
	home := t.TempDir()
	vaultDir := filepath.Join(t.TempDir(), "My Vault")
	t.Setenv("HOME", home)
	t.Setenv("NOTEHEAD_VAULTDIR", "")

	writeConfig(t, home, map[string]any{
		"current_workspace": "default",
		"workspaces": map[string]any{
			"default": map[string]any{"vaultdir": "/unused"},
			"notes": map[string]any{
				"vaultdir":          vaultDir,
				"daily_note_format": "daily/%Y-%m-%d",
			},
		},
	})

	v := config.NewViper()
	v.Set(KeyWorkspace, "notes")

	s, err := NewState(v, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("NewState returned error: %v", err)
	}
	if s.WorkspaceName != "notes" {
		t.Fatalf("expected notes workspace, got %q", s.WorkspaceName)
	}
	if s.Vault.Root() != vaultDir || s.Vault.Name() != "My Vault" {
		t.Fatalf("unexpected vault root=%q name=%q", s.Vault.Root(), s.Vault.Name())
	}
	if s.Search == nil || s.Daily == nil || s.Logger == nil {
		t.Fatalf("expected services to be wired: %+v", s)
	}
}

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, false).Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected debug to be suppressed, got %q", buf.String())
	}

	NewLogger(&buf, true).Debug("shown", "k", "v")
	if !strings.Contains(buf.String(), "msg=shown") {
		t.Fatalf("expected debug record, got %q", buf.String())
	}
}

func TestLoaderCachesState(t *testing.T) {
	l := NewLoader(config.NewViper(), nil)
	want := &State{WorkspaceName: "cached"}
	l.Set(want)

	got, err := l.State()
	if err != nil {
		t.Fatalf("State returned error: %v", err)
	}
	if got != want {
		t.Fatalf("expected cached state")
	}
}
