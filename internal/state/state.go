package state

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/viper"

	"github.com/Paintersrp/notehead/internal/config"
	"github.com/Paintersrp/notehead/internal/constants"
	"github.com/Paintersrp/notehead/internal/daily"
	"github.com/Paintersrp/notehead/internal/search"
	"github.com/Paintersrp/notehead/internal/vault"
)

// Viper keys bound to persistent flags.
const (
	KeyWorkspace = "workspace"
	KeyVerbose   = "verbose"
)

type State struct {
	Config        *config.Config
	Workspace     *config.Workspace
	WorkspaceName string
	Home          string
	Vault         *vault.Vault
	Search        *search.Engine
	Daily         *daily.Service
	Logger        *slog.Logger
}

// NewState loads the configuration for the selected workspace and builds the
// services commands operate on. Values in v override the config file.
func NewState(v *viper.Viper, stderr io.Writer) (*State, error) {
	home, err := GetHomeDir()
	if err != nil {
		return nil, err
	}

	if err := config.LoadEnvFiles(constants.DefaultEnvFile); err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(home, v)
	if err != nil {
		return nil, err
	}

	ws, err := cfg.ActiveWorkspace()
	if err != nil {
		return nil, err
	}
	if err := ws.Validate(); err != nil {
		return nil, err
	}

	logger := NewLogger(stderr, v.GetBool(KeyVerbose))
	vlt := vault.New(ws.VaultDir, ws.VaultName, ws.IgnoredFolders)
	engine := search.NewEngine(search.Config{
		VaultName: vlt.Name(),
		Scheme:    ws.URIScheme,
	}, vlt.FS(), logger)

	logger.Debug("workspace loaded",
		"workspace", cfg.CurrentWorkspace,
		"vault", vlt.Root(),
		"config", cfg.Path(),
	)

	return &State{
		Config:        cfg,
		Workspace:     ws,
		WorkspaceName: cfg.CurrentWorkspace,
		Home:          home,
		Vault:         vlt,
		Search:        engine,
		Daily:         daily.NewService(vlt, ws.DailyNoteFormat),
		Logger:        logger,
	}, nil
}

func GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory. err: %s", err)
	}

	return home, nil
}

// LoadConfig reads the config file below home, selects the workspace named in
// v and applies the remaining overrides from v.
func LoadConfig(home string, v *viper.Viper) (*config.Config, error) {
	cfg, err := config.Load(home)
	if err != nil {
		return nil, err
	}

	if name := v.GetString(KeyWorkspace); name != "" {
		if err := cfg.ActivateWorkspace(name); err != nil {
			return nil, err
		}
	}

	if err := cfg.ApplyOverrides(v); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewLogger returns a text logger on w. Debug records are only written when
// verbose is set.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Loader builds the State on first use so persistent flags are parsed before
// the configuration is read.
type Loader struct {
	Viper  *viper.Viper
	Stderr io.Writer

	state *State
}

func NewLoader(v *viper.Viper, stderr io.Writer) *Loader {
	return &Loader{Viper: v, Stderr: stderr}
}

// State returns the cached state, loading it on the first call.
func (l *Loader) State() (*State, error) {
	if l.state != nil {
		return l.state, nil
	}
	s, err := NewState(l.Viper, l.Stderr)
	if err != nil {
		return nil, err
	}
	l.state = s
	return s, nil
}

// Set installs a prebuilt state.
func (l *Loader) Set(s *State) {
	l.state = s
}
