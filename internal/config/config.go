package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/notehead/internal/constants"
)

// Workspace is the configuration of one vault.
type Workspace struct {
	VaultDir        string   `yaml:"vaultdir"          json:"vault_dir"`
	VaultName       string   `yaml:"vault_name"        json:"vault_name"`
	URIScheme       string   `yaml:"uri_scheme"        json:"uri_scheme"`
	DailyNoteFormat string   `yaml:"daily_note_format" json:"daily_note_format"`
	IgnoredFolders  []string `yaml:"ignored_folders"   json:"ignored_folders"`
}

type Config struct {
	Workspaces       map[string]*Workspace `yaml:"workspaces"         json:"workspaces"`
	CurrentWorkspace string                `yaml:"current_workspace" json:"current_workspace"`

	path   string     `yaml:"-"`
	active *Workspace `yaml:"-"`
}

const (
	defaultWorkspaceName = "default"
	defaultDailyFormat   = "%Y-%m-%d"
	defaultURIScheme     = "obsidian"
)

// Keys that can be overridden from the environment or command line flags.
const (
	KeyVaultDir        = "vaultdir"
	KeyVaultName       = "vault_name"
	KeyURIScheme       = "uri_scheme"
	KeyDailyNoteFormat = "daily_note_format"
)

func newWorkspace() *Workspace {
	return &Workspace{
		URIScheme:       defaultURIScheme,
		DailyNoteFormat: defaultDailyFormat,
	}
}

func (ws *Workspace) ensureDefaults() {
	ws.VaultDir = strings.TrimSpace(ws.VaultDir)
	if strings.TrimSpace(ws.URIScheme) == "" {
		ws.URIScheme = defaultURIScheme
	}
	if strings.TrimSpace(ws.DailyNoteFormat) == "" {
		ws.DailyNoteFormat = defaultDailyFormat
	}
}

// Validate reports configuration that commands cannot run without.
func (ws *Workspace) Validate() error {
	if strings.TrimSpace(ws.VaultDir) == "" {
		return &ConfigInitError{
			msg: fmt.Sprintf("required config variable %q is not set", KeyVaultDir),
		}
	}
	return nil
}

// Load reads the configuration below home. A missing or empty file yields a
// default configuration with a single workspace.
func Load(home string) (*Config, error) {
	path := GetConfigPath(home)
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{path: path}
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := cfg.ensureInitialized(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) ensureInitialized() error {
	if cfg.Workspaces == nil {
		cfg.Workspaces = make(map[string]*Workspace)
	}

	if cfg.CurrentWorkspace == "" {
		if len(cfg.Workspaces) == 0 {
			cfg.Workspaces[defaultWorkspaceName] = newWorkspace()
			cfg.CurrentWorkspace = defaultWorkspaceName
		} else {
			cfg.CurrentWorkspace = cfg.WorkspaceNames()[0]
		}
	}

	return cfg.setActiveWorkspace(cfg.CurrentWorkspace)
}

func (cfg *Config) setActiveWorkspace(name string) error {
	if name == "" {
		return fmt.Errorf("workspace name cannot be empty")
	}
	ws, ok := cfg.Workspaces[name]
	if !ok {
		return fmt.Errorf("workspace %q does not exist", name)
	}
	if ws == nil {
		ws = newWorkspace()
		cfg.Workspaces[name] = ws
	}

	ws.ensureDefaults()
	cfg.CurrentWorkspace = name
	cfg.active = ws
	return nil
}

// ActiveWorkspace returns the currently selected workspace.
func (cfg *Config) ActiveWorkspace() (*Workspace, error) {
	if cfg.active != nil {
		return cfg.active, nil
	}

	if cfg.CurrentWorkspace == "" {
		return nil, fmt.Errorf("no workspace is currently selected")
	}

	if err := cfg.setActiveWorkspace(cfg.CurrentWorkspace); err != nil {
		return nil, err
	}

	return cfg.active, nil
}

// ActivateWorkspace selects a workspace for this run without saving.
func (cfg *Config) ActivateWorkspace(name string) error {
	return cfg.setActiveWorkspace(name)
}

func (cfg *Config) WorkspaceNames() []string {
	names := make([]string, 0, len(cfg.Workspaces))
	for name := range cfg.Workspaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyOverrides overlays values from v onto the active workspace. Only
// non-empty values are applied, so unset environment variables and flags
// leave the file configuration alone.
func (cfg *Config) ApplyOverrides(v *viper.Viper) error {
	ws, err := cfg.ActiveWorkspace()
	if err != nil {
		return err
	}

	overrides := map[string]*string{
		KeyVaultDir:        &ws.VaultDir,
		KeyVaultName:       &ws.VaultName,
		KeyURIScheme:       &ws.URIScheme,
		KeyDailyNoteFormat: &ws.DailyNoteFormat,
	}
	for key, target := range overrides {
		if value := strings.TrimSpace(v.GetString(key)); value != "" {
			*target = value
		}
	}

	if dir := ws.VaultDir; strings.HasPrefix(dir, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to expand vault directory: %w", err)
		}
		ws.VaultDir = filepath.Join(home, strings.TrimPrefix(dir, "~"))
	}
	return nil
}

// Save writes the configuration back to the file it was loaded from.
func (cfg *Config) Save() error {
	if cfg.path == "" {
		return fmt.Errorf("config has no file location")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(cfg.path, data, 0o644)
}

// Path returns the location of the configuration file.
func (cfg *Config) Path() string {
	return cfg.path
}

// NewViper returns a viper instance that reads NOTEHEAD_* environment
// variables for the override keys.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}
