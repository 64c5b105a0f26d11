package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Paintersrp/notehead/internal/constants"
)

func GetConfigPath(homeDir string) string {
	return filepath.Join(
		homeDir,
		constants.ConfigDir,
		constants.ConfigFile+"."+constants.ConfigFileType,
	)
}

// LoadEnvFiles loads .env style files into the process environment. Missing
// files are ignored; variables already set are not overwritten.
func LoadEnvFiles(paths ...string) error {
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load env file %s: %w", path, err)
		}
	}
	return nil
}

// Init writes a configuration for vaultDir below home and returns it. An
// existing configuration is updated rather than replaced. A non-empty
// workspace is created when missing and becomes the current workspace;
// otherwise the current workspace is updated.
func Init(home, workspace, vaultDir string) (*Config, error) {
	cfg, err := Load(home)
	if err != nil {
		return nil, err
	}

	if workspace = strings.TrimSpace(workspace); workspace != "" {
		if _, ok := cfg.Workspaces[workspace]; !ok {
			cfg.Workspaces[workspace] = newWorkspace()
		}
		if err := cfg.ActivateWorkspace(workspace); err != nil {
			return nil, err
		}
	}

	ws, err := cfg.ActiveWorkspace()
	if err != nil {
		return nil, err
	}
	ws.VaultDir = strings.TrimSpace(vaultDir)

	if err := ws.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(); err != nil {
		return nil, fmt.Errorf("failed to write config: %w", err)
	}
	return cfg, nil
}
